package reqctx

import (
	"context"
	"log/slog"
	"time"
)

type ctxKey int

const keyRequestMeta ctxKey = iota

// RequestMeta holds per-request metadata set by HTTP middleware.
type RequestMeta struct {
	// RequestID is a UUID v4 string unless the client supplied one.
	RequestID string

	// ClientIP may come from X-Forwarded-For when the proxy is trusted.
	ClientIP string

	UserAgent   string
	RequestedAt time.Time
}

// WithRequestMeta stores RequestMeta in the context.
func WithRequestMeta(ctx context.Context, meta *RequestMeta) context.Context {
	return context.WithValue(ctx, keyRequestMeta, meta)
}

// RequestMetaFromContext retrieves RequestMeta from the context.
func RequestMetaFromContext(ctx context.Context) (*RequestMeta, bool) {
	meta, ok := ctx.Value(keyRequestMeta).(*RequestMeta)
	return meta, ok && meta != nil
}

// RequestIDFromContext returns the request ID, or "" if none is set.
func RequestIDFromContext(ctx context.Context) string {
	if meta, ok := RequestMetaFromContext(ctx); ok {
		return meta.RequestID
	}
	return ""
}

// LogAttrs returns the slog attributes identifying the request, if any.
func LogAttrs(ctx context.Context) []any {
	meta, ok := RequestMetaFromContext(ctx)
	if !ok {
		return nil
	}
	return []any{
		slog.String("request_id", meta.RequestID),
		slog.String("client_ip", meta.ClientIP),
	}
}
