package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"favorites-conformance/internal/reference/config"
	"favorites-conformance/internal/reference/domain/model"
	"favorites-conformance/internal/reference/domain/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
	ErrTokenInvalid    = errors.New("token is invalid")
)

// SessionUsecaseInterface defines the contract for session use cases.
type SessionUsecaseInterface interface {
	IssueSession(ctx context.Context) (*model.Session, error)
	ValidateSession(ctx context.Context, tokenString string) (*model.Session, error)
}

// SessionUsecase implements session issuance and validation. The JWT proves
// integrity; the store record is authoritative for expiry.
type SessionUsecase struct {
	sessions repository.SessionRepository
	tokenSvc repository.TokenService
	config   *config.Config
	logger   *zap.Logger
	now      func() time.Time
}

// NewSessionUsecase creates a new instance of SessionUsecase.
func NewSessionUsecase(
	sessions repository.SessionRepository,
	tokenSvc repository.TokenService,
	cfg *config.Config,
	log *zap.Logger,
) *SessionUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionUsecase{
		sessions: sessions,
		tokenSvc: tokenSvc,
		config:   cfg,
		logger:   log,
		now:      time.Now,
	}
}

// WithClock overrides the usecase clock. Tests use this to pin expiry.
func (uc *SessionUsecase) WithClock(now func() time.Time) *SessionUsecase {
	uc.now = now
	return uc
}

// IssueSession mints a fresh session credential with the configured TTL.
func (uc *SessionUsecase) IssueSession(ctx context.Context) (*model.Session, error) {
	now := uc.now()
	session := &model.Session{
		ID:        uuid.New().String(),
		IssuedAt:  now,
		ExpiresAt: now.Add(uc.config.TokenTTL),
	}

	token, err := uc.tokenSvc.GenerateToken(ctx, session.ID, session.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}
	session.Token = token

	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	uc.logger.Debug("session issued",
		zap.String("session_id", session.ID),
		zap.Time("expires_at", session.ExpiresAt),
	)
	return session, nil
}

// ValidateSession checks signature, existence, and freshness of a credential.
func (uc *SessionUsecase) ValidateSession(ctx context.Context, tokenString string) (*model.Session, error) {
	claims, err := uc.tokenSvc.ValidateToken(ctx, tokenString)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	session, err := uc.sessions.GetByToken(ctx, tokenString)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	if session.ID != claims.SessionID {
		return nil, ErrTokenInvalid
	}

	if session.Expired(uc.now()) {
		uc.logger.Debug("session rejected as expired",
			zap.String("session_id", session.ID),
			zap.Time("expires_at", session.ExpiresAt),
		)
		return nil, ErrSessionExpired
	}

	return session, nil
}

// Ensure SessionUsecase implements SessionUsecaseInterface
var _ SessionUsecaseInterface = (*SessionUsecase)(nil)
