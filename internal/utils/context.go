package utils

// contextKey is a type used for context keys to avoid conflicts with other packages' context keys.
type contextKey struct {
	name string
}

// Returns string representation of the context key.
func (c *contextKey) String() string {
	return c.name
}

// TraceIdKey is the context key used for storing the request trace id.
var TraceIdKey = &contextKey{"traceId"}

// SanitizedPayloadKey is the context key used for storing the validated and sanitized request payload.
var SanitizedPayloadKey = &contextKey{"sanitizedPayload"}
