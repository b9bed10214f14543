package session

import (
	"sync"
	"time"

	"tinytreasures/internal/domain/cart"
	"tinytreasures/internal/domain/checkout"
)

// Session は買い物客1人分の状態。
// カートとチェックアウトはDoの中でだけ触る（1イベントずつ処理する）。
type Session struct {
	ID string

	Cart *cart.Store

	//チェックアウト中でなければnil
	Checkout *checkout.Flow

	mu       sync.Mutex
	lastSeen time.Time
}

func New(id string, now time.Time) *Session {
	return &Session{
		ID:       id,
		Cart:     cart.NewStore(),
		lastSeen: now,
	}
}

// Do はセッションを排他してfnを実行する
func (s *Session) Do(now time.Time, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = now
	return fn()
}

// tより前から触られていないか
func (s *Session) IdleSince(t time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen.Before(t)
}
