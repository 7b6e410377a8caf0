package utils

import (
	"context"
	"errors"

	"favorites-conformance/internal/shared/contextkeys"
)

// Common context errors
var (
	ErrRunIDNotFound      = errors.New("runID not found in context")
	ErrRunIDNotString     = errors.New("runID in context is not a string")
	ErrScenarioNotFound   = errors.New("scenario not found in context")
	ErrScenarioNotString  = errors.New("scenario in context is not a string")
	ErrTargetNotFound     = errors.New("target not found in context")
	ErrTargetNotString    = errors.New("target in context is not a string")
	ErrRequestIDNotFound  = errors.New("requestID not found in context")
	ErrRequestIDNotString = errors.New("requestID in context is not a string")
	ErrSessionIDNotFound  = errors.New("sessionID not found in context")
	ErrSessionIDNotString = errors.New("sessionID in context is not a string")
)

// GetRunIDFromContext retrieves the conformance run ID from the context.
// It returns the run ID and an error if the run ID is not found or is not a string.
func GetRunIDFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(contextkeys.RunIDKey)
	if val == nil {
		return "", ErrRunIDNotFound
	}
	runID, ok := val.(string)
	if !ok {
		return "", ErrRunIDNotString
	}
	return runID, nil
}

// GetScenarioFromContext retrieves the scenario name from the context.
func GetScenarioFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(contextkeys.ScenarioKey)
	if val == nil {
		return "", ErrScenarioNotFound
	}
	scenario, ok := val.(string)
	if !ok {
		return "", ErrScenarioNotString
	}
	return scenario, nil
}

// GetTargetFromContext retrieves the target base URL from the context.
func GetTargetFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(contextkeys.TargetKey)
	if val == nil {
		return "", ErrTargetNotFound
	}
	target, ok := val.(string)
	if !ok {
		return "", ErrTargetNotString
	}
	return target, nil
}

// GetRequestIDFromContext retrieves the request ID from the context.
func GetRequestIDFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(contextkeys.RequestIDKey)
	if val == nil {
		return "", ErrRequestIDNotFound
	}
	requestID, ok := val.(string)
	if !ok {
		return "", ErrRequestIDNotString
	}
	return requestID, nil
}

// GetSessionIDFromContext retrieves the session ID from the context.
func GetSessionIDFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(contextkeys.SessionIDKey)
	if val == nil {
		return "", ErrSessionIDNotFound
	}
	sessionID, ok := val.(string)
	if !ok {
		return "", ErrSessionIDNotString
	}
	return sessionID, nil
}

// Context builder functions

// WithRunID adds the conformance run ID to context
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, contextkeys.RunIDKey, runID)
}

// WithScenario adds the scenario name to context
func WithScenario(ctx context.Context, scenario string) context.Context {
	return context.WithValue(ctx, contextkeys.ScenarioKey, scenario)
}

// WithTarget adds the target base URL to context
func WithTarget(ctx context.Context, target string) context.Context {
	return context.WithValue(ctx, contextkeys.TargetKey, target)
}

// WithRequestID adds the request ID to context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextkeys.RequestIDKey, requestID)
}

// WithSessionID adds the session ID to context
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, contextkeys.SessionIDKey, sessionID)
}

// WithComponent adds component name to context
func WithComponent(ctx context.Context, component string) context.Context {
	return context.WithValue(ctx, contextkeys.ComponentKey, component)
}

// WithOperation adds operation name to context
func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, contextkeys.OperationKey, operation)
}

// Optional getters that return default values instead of errors

// GetRunIDOrDefault retrieves the run ID from context or returns a default value
func GetRunIDOrDefault(ctx context.Context, def string) string {
	if v, err := GetRunIDFromContext(ctx); err == nil {
		return v
	}
	return def
}

// GetScenarioOrDefault retrieves the scenario name from context or returns a default value
func GetScenarioOrDefault(ctx context.Context, def string) string {
	if v, err := GetScenarioFromContext(ctx); err == nil {
		return v
	}
	return def
}

// GetTargetOrDefault retrieves the target base URL from context or returns a default value
func GetTargetOrDefault(ctx context.Context, def string) string {
	if v, err := GetTargetFromContext(ctx); err == nil {
		return v
	}
	return def
}

// GetRequestIDOrDefault retrieves the request ID from context or returns a default value
func GetRequestIDOrDefault(ctx context.Context, def string) string {
	if v, err := GetRequestIDFromContext(ctx); err == nil {
		return v
	}
	return def
}

// HasX checks
func HasRunID(ctx context.Context) bool {
	_, err := GetRunIDFromContext(ctx)
	return err == nil
}

func HasScenario(ctx context.Context) bool {
	_, err := GetScenarioFromContext(ctx)
	return err == nil
}

func HasTarget(ctx context.Context) bool {
	_, err := GetTargetFromContext(ctx)
	return err == nil
}

func HasSessionID(ctx context.Context) bool {
	_, err := GetSessionIDFromContext(ctx)
	return err == nil
}
