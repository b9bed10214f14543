package repository

import (
	"context"
	"sync"
	"time"

	"tinytreasures/internal/domain/session"
	repo "tinytreasures/internal/repository"
)

type SessionMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
}

func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{sessions: make(map[string]*session.Session)}
}

func (r *SessionMemoryRepository) Save(ctx context.Context, s *session.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[s.ID] = s
	return nil
}

func (r *SessionMemoryRepository) FindByID(ctx context.Context, id string) (*session.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return s, nil
}

func (r *SessionMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *SessionMemoryRepository) DeleteIdleSince(ctx context.Context, t time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, s := range r.sessions {
		if s.IdleSince(t) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}
