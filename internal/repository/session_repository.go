package repository

import (
	"context"
	"time"

	"tinytreasures/internal/domain/session"
)

// 買い物客のセッション置き場。永続化はしない。
type SessionRepository interface {
	Save(ctx context.Context, s *session.Session) error
	FindByID(ctx context.Context, id string) (*session.Session, error)
	Delete(ctx context.Context, id string) error

	// tより前から触られていないものを消して件数を返す
	DeleteIdleSince(ctx context.Context, t time.Time) (int, error)
}
