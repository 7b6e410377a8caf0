package contextkeys

// contextKey is an unexported type to prevent collisions with context keys defined in
// other packages.
type contextKey string

// String makes contextKey satisfy the Stringer interface to assist with debugging.
func (c contextKey) String() string {
	return "favorites-conformance context key " + string(c)
}

// RunIDKey is the key for the conformance run ID in context.Context
const RunIDKey = contextKey("runID")

// ScenarioKey is the key for the scenario name in context.Context
const ScenarioKey = contextKey("scenario")

// TargetKey is the key for the target base URL in context.Context
const TargetKey = contextKey("target")

// RequestIDKey is the key for RequestID in context.Context
const RequestIDKey = contextKey("requestID")

// SessionIDKey is the key for the session ID in context.Context
const SessionIDKey = contextKey("sessionID")

// TokenKey is the key for the raw session token in context.Context
const TokenKey = contextKey("token")

// ComponentKey is the key for the component name in context.Context
const ComponentKey = contextKey("component")

// OperationKey is the key for the operation name in context.Context
const OperationKey = contextKey("operation")
