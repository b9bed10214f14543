package config

import (
	"fmt"
	"os"
	"time"
)

const (
	defaultPort          = "8080"
	defaultSessionTTL    = 24 * time.Hour
	defaultPaymentTarget = "tinytreasures@upi"
	devSessionSecret     = "dev_secret_change_me"
)

// Configはアプリ全体の設定
type Config struct {
	Port  string // サーバーポート（8080）
	GoEnv string // dev/prod

	SessionSecret string        // セッショントークン署名シークレット
	SessionTTL    time.Duration // 放置セッションの寿命

	UPIID string // 支払先UPI ID
	FEURL string // フロントURL（CORS）

	//カタログDB（未設定ならメモリのカタログを使う）
	DatabaseURL      string
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
}

// Loadは環境変数
func Load() (Config, error) {
	ttl, err := durationOr("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:  getenv("PORT", defaultPort),
		GoEnv: getenv("GO_ENV", "dev"),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    ttl,

		UPIID: getenv("UPI_ID", defaultPaymentTarget),
		FEURL: os.Getenv("FE_URL"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     getenv("POSTGRES_PORT", "5432"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "app"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),
	}

	//必須チェック
	if cfg.GoEnv != "dev" && cfg.GoEnv != "prod" {
		return Config{}, fmt.Errorf("GO_ENV must be dev or prod")
	}
	if cfg.SessionSecret == "" {
		if cfg.IsProd() {
			return Config{}, fmt.Errorf("SESSION_SECRET is required")
		}
		cfg.SessionSecret = devSessionSecret
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must be positive")
	}

	return cfg, nil
}

func (c Config) IsProd() bool {
	return c.GoEnv == "prod"
}

// listen用のアドレス（":8080"）
func (c Config) Addr() string {
	if c.Port != "" && c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}

// DBを使うか
func (c Config) UseDatabase() bool {
	return c.DatabaseURL != "" || c.PostgresHost != ""
}

// DATABASE_URL があれば最優先で使う
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func durationOr(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration: %w", key, err)
	}
	return d, nil
}
