package usecase

import "time"

// usecaseに渡す部品

type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

// セッショントークンの発行
type TokenIssuer interface {
	Issue(sessionID string, now time.Time) (string, time.Time, error)
}
