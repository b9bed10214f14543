package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tinytreasures/internal/config"
	"tinytreasures/internal/handler"
	"tinytreasures/internal/infra/db"
	infraRepo "tinytreasures/internal/infra/repository"
	"tinytreasures/internal/infra/token"
	"tinytreasures/internal/logging"
	repo "tinytreasures/internal/repository"
	"tinytreasures/internal/server"
	"tinytreasures/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

// 放置セッションの掃除間隔
const sweepInterval = time.Minute

func main() {
	//.envは無くてもよい
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := logging.New(cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	products, err := newProductRepository(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("catalog init failed", zap.Error(err))
	}

	//Repository生成
	sessions := infraRepo.NewSessionMemoryRepository()

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	issuer := token.NewJWTIssuer(cfg.SessionSecret, cfg.SessionTTL)

	//Usecase生成
	sessionUC := usecase.NewSessionUsecase(sessions, issuer, idGen, clock, cfg.SessionTTL, logger)
	productUC := usecase.NewProductUsecase(products)
	cartUC := usecase.NewCartUsecase(sessions, products, clock)
	checkoutUC := usecase.NewCheckoutUsecase(sessions, idGen, clock, cfg.UPIID, logger)

	go runJanitor(ctx, sessionUC, logger)

	//Handler生成
	e := server.New(cfg, logger, issuer, server.Handlers{
		Session:  handler.NewSessionHandler(sessionUC),
		Product:  handler.NewProductHandler(productUC),
		Cart:     handler.NewCartHandler(cartUC),
		Checkout: handler.NewCheckoutHandler(checkoutUC),
	})

	//Server起動
	logger.Info("server starting", zap.String("addr", cfg.Addr()), zap.String("env", cfg.GoEnv))
	if err := server.Start(ctx, e, cfg.Addr()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
	logger.Info("server stopped")
}

// DB設定があればPostgresのカタログ、無ければメモリのカタログ
func newProductRepository(ctx context.Context, cfg config.Config, logger *zap.Logger) (repo.ProductRepository, error) {
	catalog := infraRepo.LaunchCatalog()

	if !cfg.UseDatabase() {
		logger.Info("using in-memory catalog", zap.Int("products", len(catalog)))
		return infraRepo.NewProductMemoryRepository(catalog), nil
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		return nil, err
	}

	r := infraRepo.NewProductGormRepository(gormDB)
	if err := r.Seed(ctx, catalog); err != nil {
		return nil, err
	}
	logger.Info("using postgres catalog", zap.Int("products", len(catalog)))
	return r, nil
}

func runJanitor(ctx context.Context, uc *usecase.SessionUsecase, logger *zap.Logger) {
	t := time.NewTicker(sweepInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if _, err := uc.Sweep(ctx); err != nil {
				logger.Warn("session sweep failed", zap.Error(err))
			}
		}
	}
}
