package usecase

import (
	"context"
	"net/http"
	"time"

	"tinytreasures/internal/domain/cart"
	"tinytreasures/internal/domain/session"
	repo "tinytreasures/internal/repository"

	"go.uber.org/zap"
)

// SessionUsecase は買い物客セッションの開始と掃除
type SessionUsecase struct {
	sessions repo.SessionRepository
	issuer   TokenIssuer
	idGen    IDGenerator
	clock    Clock
	ttl      time.Duration
	logger   *zap.Logger
}

func NewSessionUsecase(
	sessions repo.SessionRepository,
	issuer TokenIssuer,
	idGen IDGenerator,
	clock Clock,
	ttl time.Duration,
	logger *zap.Logger,
) *SessionUsecase {
	return &SessionUsecase{
		sessions: sessions,
		issuer:   issuer,
		idGen:    idGen,
		clock:    clock,
		ttl:      ttl,
		logger:   logger,
	}
}

type SessionOutput struct {
	SessionID   string    `json:"session_id"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Start は空のカートを持つセッションを作ってトークンを返す
func (u *SessionUsecase) Start(ctx context.Context) (SessionOutput, error) {
	now := u.clock.Now()
	s := session.New(u.idGen.NewID(), now)

	sid := s.ID
	s.Cart.OnChange(func(ch cart.Change) {
		u.logger.Debug("cart changed",
			zap.String("session_id", sid),
			zap.String("op", string(ch.Op)),
			zap.String("product_id", ch.ProductID),
			zap.Int("quantity", ch.Quantity),
		)
	})

	if err := u.sessions.Save(ctx, s); err != nil {
		return SessionOutput{}, NewHTTPError(http.StatusInternalServerError, "session error")
	}

	tok, exp, err := u.issuer.Issue(s.ID, now)
	if err != nil {
		return SessionOutput{}, NewHTTPError(http.StatusInternalServerError, "token error")
	}

	u.logger.Info("session started", zap.String("session_id", s.ID))
	return SessionOutput{SessionID: s.ID, AccessToken: tok, ExpiresAt: exp}, nil
}

// Sweep は放置されたセッションを消す（チェックアウト途中の下書きも消える）
func (u *SessionUsecase) Sweep(ctx context.Context) (int, error) {
	n, err := u.sessions.DeleteIdleSince(ctx, u.clock.Now().Add(-u.ttl))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		u.logger.Info("idle sessions evicted", zap.Int("count", n))
	}
	return n, nil
}

func findSession(ctx context.Context, sessions repo.SessionRepository, sessionID string) (*session.Session, error) {
	if sessionID == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	s, err := sessions.FindByID(ctx, sessionID)
	if err == repo.ErrNotFound {
		return nil, NewHTTPError(http.StatusUnauthorized, "session expired")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "session error")
	}
	return s, nil
}
