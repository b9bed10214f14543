package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tinytreasures/internal/config"
	"tinytreasures/internal/handler"
	infraRepo "tinytreasures/internal/infra/repository"
	"tinytreasures/internal/infra/token"
	"tinytreasures/internal/server"
	"tinytreasures/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type uuidGenerator struct{}

func (uuidGenerator) NewID() string { return uuid.NewString() }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type TestClient struct {
	BaseURL string
	HTTP    *http.Client
}

// NewTestClient はメモリのカタログでAPI一式を立てる
func NewTestClient(t *testing.T) *TestClient {
	t.Helper()

	cfg := config.Config{
		Port:          "0",
		GoEnv:         "dev",
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
		UPIID:         "tinytreasures@upi",
	}
	logger := zap.NewNop()

	sessions := infraRepo.NewSessionMemoryRepository()
	products := infraRepo.NewProductMemoryRepository(infraRepo.LaunchCatalog())
	issuer := token.NewJWTIssuer(cfg.SessionSecret, cfg.SessionTTL)
	ids := uuidGenerator{}
	clock := realClock{}

	e := server.New(cfg, logger, issuer, server.Handlers{
		Session:  handler.NewSessionHandler(usecase.NewSessionUsecase(sessions, issuer, ids, clock, cfg.SessionTTL, logger)),
		Product:  handler.NewProductHandler(usecase.NewProductUsecase(products)),
		Cart:     handler.NewCartHandler(usecase.NewCartUsecase(sessions, products, clock)),
		Checkout: handler.NewCheckoutHandler(usecase.NewCheckoutUsecase(sessions, ids, clock, cfg.UPIID, logger)),
	})

	ts := httptest.NewServer(e)
	t.Cleanup(ts.Close)

	return &TestClient{
		BaseURL: strings.TrimRight(ts.URL, "/"),
		HTTP:    ts.Client(),
	}
}

type ErrorResponse struct {
	Error       string            `json:"error"`
	FieldErrors map[string]string `json:"field_errors"`
}

type SessionResponse struct {
	SessionID   string `json:"session_id"`
	AccessToken string `json:"access_token"`
}

type CartItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"line_total"`
}

type CartResponse struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalPrice int64      `json:"total_price"`
}

type Address struct {
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
}

type Receipt struct {
	Reference  string     `json:"reference"`
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalPrice int64      `json:"total_price"`
	Address    Address    `json:"address"`
}

type CheckoutResponse struct {
	Step          string            `json:"step"`
	Address       Address           `json:"address"`
	FieldErrors   map[string]string `json:"field_errors"`
	Summary       CartResponse      `json:"summary"`
	PaymentTarget string            `json:"payment_target"`
	Receipt       *Receipt          `json:"receipt"`
}

func (c *TestClient) doJSON(
	ctx context.Context,
	t *testing.T,
	method string,
	path string,
	bearer string,
	body any,
) (*http.Response, []byte) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json.Marshal failed: %v", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("http.NewRequest failed: %v", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		t.Fatalf("HTTP.Do failed: %v", err)
	}

	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	return resp, data
}

func requireStatus(t *testing.T, resp *http.Response, want int, body []byte) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("status=%d want=%d body=%s", resp.StatusCode, want, string(body))
	}
}

func mustDecode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(%T) failed: %v body=%s", v, err, string(body))
	}
	return v
}

// セッションを作ってaccess_tokenを返す
func startSession(t *testing.T, c *TestClient, ctx context.Context) string {
	t.Helper()

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/session", "", nil)
	requireStatus(t, resp, http.StatusCreated, body)

	s := mustDecode[SessionResponse](t, body)
	if strings.TrimSpace(s.AccessToken) == "" {
		t.Fatalf("access token is empty: body=%s", string(body))
	}
	return s.AccessToken
}

func addToCart(t *testing.T, c *TestClient, ctx context.Context, access string, productID string) CartResponse {
	t.Helper()

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/cart", access, map[string]string{"product_id": productID})
	requireStatus(t, resp, http.StatusOK, body)
	return mustDecode[CartResponse](t, body)
}

func validAddress() Address {
	return Address{
		FullName:     "Ananya Rao",
		Phone:        "9876543210",
		AddressLine1: "12 MG Road",
		AddressLine2: "Flat 4B",
		City:         "Bengaluru",
		State:        "Karnataka",
		Pincode:      "560001",
	}
}
