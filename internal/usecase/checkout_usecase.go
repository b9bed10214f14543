package usecase

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	"tinytreasures/internal/domain/checkout"
	"tinytreasures/internal/domain/model"
	"tinytreasures/internal/domain/session"
	repo "tinytreasures/internal/repository"

	"go.uber.org/zap"
)

// CheckoutUsecase は /checkout（住所 → 支払い → 完了）の業務ロジック。
// 注文はサーバーに保存しない。控えはセッションにだけ残る。
type CheckoutUsecase struct {
	sessions      repo.SessionRepository
	idGen         IDGenerator
	clock         Clock
	paymentTarget string
	logger        *zap.Logger
}

func NewCheckoutUsecase(
	sessions repo.SessionRepository,
	idGen IDGenerator,
	clock Clock,
	paymentTarget string,
	logger *zap.Logger,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		sessions:      sessions,
		idGen:         idGen,
		clock:         clock,
		paymentTarget: paymentTarget,
		logger:        logger,
	}
}

type ReceiptResponse struct {
	Reference     string             `json:"reference"`
	Items         []CartItemResponse `json:"items"`
	TotalItems    int                `json:"total_items"`
	TotalPrice    int64              `json:"total_price"`
	Address       model.Address      `json:"address"`
	PaymentTarget string             `json:"payment_target"`
	PlacedAt      time.Time          `json:"placed_at"`
}

type CheckoutResponse struct {
	Step          string            `json:"step"`
	Address       model.Address     `json:"address"`
	FieldErrors   map[string]string `json:"field_errors"`
	Summary       CartResponse      `json:"summary"`
	PaymentTarget string            `json:"payment_target"`
	Receipt       *ReceiptResponse  `json:"receipt,omitempty"`
}

type EditFieldInput struct {
	Field string
	Value string
}

// Start は住所入力から新しく始める。前回の完了済みチェックアウトは捨てる。
func (u *CheckoutUsecase) Start(ctx context.Context, sessionID string) (CheckoutResponse, error) {
	s, err := findSession(ctx, u.sessions, sessionID)
	if err != nil {
		return CheckoutResponse{}, err
	}

	var out CheckoutResponse
	err = s.Do(u.clock.Now(), func() error {
		f, err := checkout.Start(s.Cart, u.paymentTarget,
			checkout.WithReference(u.idGen.NewID),
			checkout.WithClock(u.clock.Now),
		)
		if err != nil {
			return mapCheckoutError(err, nil)
		}

		s.Checkout = f
		out = buildCheckoutResponse(s)
		return nil
	})
	if err != nil {
		return CheckoutResponse{}, err
	}

	u.logger.Info("checkout started", zap.String("session_id", s.ID), zap.Int64("total_price", out.Summary.TotalPrice))
	return out, nil
}

func (u *CheckoutUsecase) Get(ctx context.Context, sessionID string) (CheckoutResponse, error) {
	return u.withFlow(ctx, sessionID, func(s *session.Session, f *checkout.Flow) error {
		return nil
	})
}

// EditField は住所の1項目を書き換える（その項目のエラーだけ消える）
func (u *CheckoutUsecase) EditField(ctx context.Context, sessionID string, in EditFieldInput) (CheckoutResponse, error) {
	return u.withFlow(ctx, sessionID, func(s *session.Session, f *checkout.Flow) error {
		return f.EditField(in.Field, in.Value)
	})
}

func (u *CheckoutUsecase) SubmitAddress(ctx context.Context, sessionID string, draft model.Address) (CheckoutResponse, error) {
	return u.withFlow(ctx, sessionID, func(s *session.Session, f *checkout.Flow) error {
		err := f.SubmitAddress(draft)
		if errors.Is(err, checkout.ErrAddressInvalid) {
			//住所の中身はログに出さない
			u.logger.Info("address rejected",
				zap.String("session_id", s.ID),
				zap.Strings("fields", sortedKeys(f.FieldErrors())),
			)
		}
		return err
	})
}

func (u *CheckoutUsecase) GoBackToAddress(ctx context.Context, sessionID string) (CheckoutResponse, error) {
	return u.withFlow(ctx, sessionID, func(s *session.Session, f *checkout.Flow) error {
		return f.GoBackToAddress()
	})
}

// ConfirmPayment は支払い申告で注文を確定し、カートを空にする
func (u *CheckoutUsecase) ConfirmPayment(ctx context.Context, sessionID string) (CheckoutResponse, error) {
	return u.withFlow(ctx, sessionID, func(s *session.Session, f *checkout.Flow) error {
		r, err := f.ConfirmPayment()
		if err != nil {
			return err
		}

		u.logger.Info("order placed",
			zap.String("session_id", s.ID),
			zap.String("reference", r.Reference),
			zap.Int("total_items", r.TotalItems),
			zap.Int64("total_price", r.TotalPrice),
		)
		return nil
	})
}

// Abandon はチェックアウトを捨てる（カートはそのまま）
func (u *CheckoutUsecase) Abandon(ctx context.Context, sessionID string) error {
	s, err := findSession(ctx, u.sessions, sessionID)
	if err != nil {
		return err
	}

	return s.Do(u.clock.Now(), func() error {
		s.Checkout = nil
		return nil
	})
}

// withFlow は進行中のチェックアウトに対してfnを実行する。
// カートが空になっていたらチェックアウトを捨てて409を返す。
func (u *CheckoutUsecase) withFlow(ctx context.Context, sessionID string, fn func(s *session.Session, f *checkout.Flow) error) (CheckoutResponse, error) {
	s, err := findSession(ctx, u.sessions, sessionID)
	if err != nil {
		return CheckoutResponse{}, err
	}

	var out CheckoutResponse
	err = s.Do(u.clock.Now(), func() error {
		f := s.Checkout
		if f == nil {
			return NewHTTPError(http.StatusNotFound, "checkout not started")
		}
		if err := f.Check(); err != nil {
			s.Checkout = nil
			return mapCheckoutError(err, nil)
		}

		if err := fn(s, f); err != nil {
			return mapCheckoutError(err, f)
		}

		out = buildCheckoutResponse(s)
		return nil
	})
	if err != nil {
		return CheckoutResponse{}, err
	}
	return out, nil
}

func mapCheckoutError(err error, f *checkout.Flow) error {
	if _, ok := AsHTTPError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		return NewHTTPError(http.StatusConflict, "cart empty")
	case errors.Is(err, checkout.ErrInvalidTransition):
		return NewHTTPError(http.StatusConflict, "invalid transition")
	case errors.Is(err, checkout.ErrUnknownField):
		return NewHTTPError(http.StatusBadRequest, "unknown field")
	case errors.Is(err, checkout.ErrAddressInvalid):
		he := &HTTPError{Status: http.StatusUnprocessableEntity, Message: "validation error"}
		if f != nil {
			he.Fields = f.FieldErrors()
		}
		return he
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

func buildCheckoutResponse(s *session.Session) CheckoutResponse {
	f := s.Checkout

	out := CheckoutResponse{
		Step:          string(f.Step()),
		Address:       f.Address(),
		FieldErrors:   f.FieldErrors(),
		Summary:       buildCartResponse(s.Cart),
		PaymentTarget: f.PaymentTarget(),
	}

	if r, ok := f.Receipt(); ok {
		out.Receipt = &ReceiptResponse{
			Reference:     r.Reference,
			Items:         toCartItems(r.Lines),
			TotalItems:    r.TotalItems,
			TotalPrice:    r.TotalPrice,
			Address:       r.Address,
			PaymentTarget: r.PaymentTarget,
			PlacedAt:      r.PlacedAt,
		}
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
