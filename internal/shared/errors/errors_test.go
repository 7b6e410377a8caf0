package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Behavior(t *testing.T) {
	err := NewValidationError("invalid input").WithCode("VAL001").WithDetail("field", "title").WithComponent("test-component")
	assert.Equal(t, ErrorTypeValidation, err.Type)
	assert.Equal(t, "invalid input", err.Message)
	assert.Equal(t, "VAL001", err.Code)
	assert.Equal(t, "test-component", err.Component)
	assert.Equal(t, "title", err.Details["field"])
	assert.Equal(t, "invalid input", err.Error())
}

func TestAppError_WithCause_Unwrap(t *testing.T) {
	cause := ErrNotFound
	err := NewNotFoundError("resource").WithCause(cause)
	assert.Equal(t, cause, err.Unwrap())
	assert.Equal(t, "resource not found: resource not found", err.Error())
}

func TestAppError_WithScenario(t *testing.T) {
	err := NewAssertionError("status mismatch").WithScenario("expired_session_spot")
	assert.Equal(t, "expired_session_spot", err.Scenario)
	assert.Equal(t, http.StatusExpectationFailed, err.HTTPCode)
}

func TestValidationErrors(t *testing.T) {
	ve := NewValidationErrors()
	ve.Add("title", "must be set", "")
	assert.True(t, ve.HasErrors())
	appErr := ve.ToAppError()
	assert.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeValidation, appErr.Type)

	empty := NewValidationErrors()
	assert.False(t, empty.HasErrors())
	assert.Nil(t, empty.ToAppError())
}

func TestClassifiers(t *testing.T) {
	tr := NewTransportError("connection refused")
	assert.True(t, IsTransport(tr))
	assert.False(t, IsAssertion(tr))
	assert.Equal(t, ErrorTypeTransport, TypeOf(tr))

	as := NewAssertionError("expected 201, got 400")
	assert.True(t, IsAssertion(as))
	assert.False(t, IsShape(as))

	sh := NewShapeError("body is not a JSON object")
	assert.True(t, IsShape(sh))

	val := NewValidationError("bad")
	assert.True(t, IsValidation(val))

	auth := NewAuthenticationError("bad")
	assert.True(t, IsAuthentication(auth))

	nf := NewNotFoundError("scenario")
	assert.True(t, IsNotFound(nf))
	assert.False(t, IsValidation(nf))

	cfg := NewConfigError("bad target URL")
	assert.True(t, IsConfig(cfg))
}

func TestClassifiers_Sentinels(t *testing.T) {
	assert.True(t, IsAuthentication(ErrSessionExpired))
	assert.True(t, IsAuthentication(ErrMissingCredential))
	assert.True(t, IsNotFound(ErrScenarioNotFound))
	assert.True(t, IsTransport(ErrTargetUnreachable))
}

func TestClassifiers_WrappedErrors(t *testing.T) {
	inner := NewTransportError("dial tcp: connection refused")
	wrapped := fmt.Errorf("scenario run: %w", inner)
	assert.True(t, IsTransport(wrapped))
	assert.Equal(t, ErrorTypeTransport, TypeOf(wrapped))
}

func TestWrapError(t *testing.T) {
	plain := fmt.Errorf("boom")
	wrapped := WrapError(plain, "something failed")
	assert.Equal(t, ErrorTypeInternal, wrapped.Type)
	assert.Equal(t, plain, wrapped.Unwrap())

	already := NewShapeError("bad body")
	assert.Same(t, already, WrapError(already, "ignored"))
}

func TestTypeOf_PlainError(t *testing.T) {
	assert.Equal(t, ErrorTypeInternal, TypeOf(fmt.Errorf("anything")))
}
