package usecase_test

import (
	"context"
	"testing"
	"time"

	"favorites-conformance/internal/reference/adapter/persistence/memory"
	"favorites-conformance/internal/reference/adapter/security"
	"favorites-conformance/internal/reference/config"
	"favorites-conformance/internal/reference/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionUC(t *testing.T, ttl time.Duration) *usecase.SessionUsecase {
	t.Helper()

	cfg := &config.Config{
		TokenTTL:  ttl,
		JWTSecret: "test-secret-key-32-characters-long-12345",
		JWTIssuer: "test-issuer",
	}
	tokenSvc, err := security.NewJWTokenService(cfg)
	require.NoError(t, err)

	return usecase.NewSessionUsecase(memory.NewSessionStore(), tokenSvc, cfg, nil)
}

func TestIssueSession(t *testing.T) {
	uc := newSessionUC(t, 2*time.Second)

	session, err := uc.IssueSession(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, 2*time.Second, session.ExpiresAt.Sub(session.IssuedAt))
}

func TestIssueSession_TokensAreUnique(t *testing.T) {
	uc := newSessionUC(t, 2*time.Second)
	ctx := context.Background()

	first, err := uc.IssueSession(ctx)
	require.NoError(t, err)
	second, err := uc.IssueSession(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.Token, second.Token)
}

func TestValidateSession_Fresh(t *testing.T) {
	uc := newSessionUC(t, 2*time.Second)
	ctx := context.Background()

	issued, err := uc.IssueSession(ctx)
	require.NoError(t, err)

	session, err := uc.ValidateSession(ctx, issued.Token)

	require.NoError(t, err)
	assert.Equal(t, issued.ID, session.ID)
}

func TestValidateSession_ExpiredAfterTTL(t *testing.T) {
	uc := newSessionUC(t, 2*time.Second)
	ctx := context.Background()

	now := time.Now()
	uc.WithClock(func() time.Time { return now })

	issued, err := uc.IssueSession(ctx)
	require.NoError(t, err)

	// Just inside the window.
	uc.WithClock(func() time.Time { return now.Add(1999 * time.Millisecond) })
	_, err = uc.ValidateSession(ctx, issued.Token)
	require.NoError(t, err)

	// At and past the window.
	uc.WithClock(func() time.Time { return now.Add(2 * time.Second) })
	_, err = uc.ValidateSession(ctx, issued.Token)
	assert.ErrorIs(t, err, usecase.ErrSessionExpired)

	uc.WithClock(func() time.Time { return now.Add(3 * time.Second) })
	_, err = uc.ValidateSession(ctx, issued.Token)
	assert.ErrorIs(t, err, usecase.ErrSessionExpired)
}

func TestValidateSession_UnknownToken(t *testing.T) {
	uc := newSessionUC(t, 2*time.Second)

	_, err := uc.ValidateSession(context.Background(), "never-issued")

	assert.ErrorIs(t, err, usecase.ErrTokenInvalid)
}

func TestValidateSession_TokenSignedElsewhere(t *testing.T) {
	uc := newSessionUC(t, 2*time.Second)
	other := newSessionUC(t, 2*time.Second)
	ctx := context.Background()

	// Same signing config, but the session lives only in the other store.
	foreign, err := other.IssueSession(ctx)
	require.NoError(t, err)

	_, err = uc.ValidateSession(ctx, foreign.Token)
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
}
