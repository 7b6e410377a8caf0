package repository

import (
	"context"

	"favorites-conformance/internal/reference/domain/model"
)

// SessionRepository defines the interface for session storage.
type SessionRepository interface {
	Save(ctx context.Context, session *model.Session) error
	GetByToken(ctx context.Context, token string) (*model.Session, error)
	Delete(ctx context.Context, token string) error
	Reset(ctx context.Context) error
}
