package server

import "context"

// contextKey is a private type so request-scoped values set by the
// middleware chain cannot collide with keys from other packages.
type contextKey string

const (
	contextKeyRequestID  contextKey = "requestID"
	contextKeyAPIVersion contextKey = "apiVersion"
)

// requestIDFrom returns the request id stored by requestIDMiddleware, or ""
// for a context that never passed through the chain.
func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyRequestID).(string)
	return id
}
