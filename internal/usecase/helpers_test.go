package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"tinytreasures/internal/domain/model"
	infraRepo "tinytreasures/internal/infra/repository"
	repo "tinytreasures/internal/repository"
	"tinytreasures/internal/usecase"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// =====================
// Mocks / fakes
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type seqIDs struct{ n int }

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

type stubIssuer struct{}

func (stubIssuer) Issue(sessionID string, now time.Time) (string, time.Time, error) {
	return "token-" + sessionID, now.Add(time.Hour), nil
}

type fixture struct {
	sessions *infraRepo.SessionMemoryRepository
	clock    *fixedClock
	session  *usecase.SessionUsecase
	cart     *usecase.CartUsecase
	checkout *usecase.CheckoutUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	sessions := infraRepo.NewSessionMemoryRepository()
	products := infraRepo.NewProductMemoryRepository(infraRepo.LaunchCatalog())
	clock := &fixedClock{now: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)}
	ids := &seqIDs{}
	logger := zap.NewNop()

	return &fixture{
		sessions: sessions,
		clock:    clock,
		session:  usecase.NewSessionUsecase(sessions, stubIssuer{}, ids, clock, time.Hour, logger),
		cart:     usecase.NewCartUsecase(sessions, products, clock),
		checkout: usecase.NewCheckoutUsecase(sessions, ids, clock, "tinytreasures@upi", logger),
	}
}

func (f *fixture) newSession(t *testing.T) string {
	t.Helper()
	out, err := f.session.Start(context.Background())
	require.NoError(t, err)
	return out.SessionID
}

func assertHTTPStatus(t *testing.T, err error, status int) *usecase.HTTPError {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok, "expected HTTPError, got %v", err)
	require.Equal(t, status, he.Status, he.Message)
	return he
}

func validAddress() model.Address {
	return model.Address{
		FullName:     "Ananya Rao",
		Phone:        "9876543210",
		AddressLine1: "12 MG Road",
		City:         "Bengaluru",
		State:        "Karnataka",
		Pincode:      "560001",
	}
}
