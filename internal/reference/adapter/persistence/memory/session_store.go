package memory

import (
	"context"
	"sync"

	"favorites-conformance/internal/reference/domain/model"
	"favorites-conformance/internal/reference/domain/repository"
	"favorites-conformance/internal/reference/usecase"
)

// SessionStore is an in-memory SessionRepository keyed by raw token.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*model.Session),
	}
}

// Save stores a session under its token.
func (s *SessionStore) Save(ctx context.Context, session *model.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *session
	s.sessions[session.Token] = &stored
	return nil
}

// GetByToken looks up a session by its raw token.
func (s *SessionStore) GetByToken(ctx context.Context, token string) (*model.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, usecase.ErrSessionNotFound
	}

	found := *session
	return &found, nil
}

// Delete removes a session by token. Deleting an unknown token is a no-op.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}

// Reset drops all sessions.
func (s *SessionStore) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = make(map[string]*model.Session)
	return nil
}

// Ensure SessionStore implements SessionRepository
var _ repository.SessionRepository = (*SessionStore)(nil)
