package middleware

import (
	"context"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/blogem/opsledger/metrics"
)

// RequestIDHeader carries the request id in and out
const RequestIDHeader = "X-Request-ID"

type requestInfoKey struct{}

// requestInfo is filled in by inner middleware so the request log can
// name the user and organization
type requestInfo struct {
	id    string
	user  string
	orgID int
}

// RequestLogger logs one line per request. It must be installed inside the
// chi router so the route pattern is resolved when the handler returns.
func RequestLogger(logger *zap.Logger, skipPaths ...string) func(http.Handler) http.Handler {
	skip := make(map[string]bool, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skip[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			info := &requestInfo{id: r.Header.Get(RequestIDHeader)}
			if info.id == "" || len(info.id) > 64 {
				info.id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, info.id)

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ctx := context.WithValue(r.Context(), requestInfoKey{}, info)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := []zap.Field{
				zap.String("request_id", info.id),
				zap.String("method", r.Method),
				zap.String("route", metrics.RoutePattern(r)),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			}
			if info.user != "" {
				fields = append(fields, zap.String("user", info.user))
			}
			if info.orgID > 0 {
				fields = append(fields, zap.Int("org_id", info.orgID))
			}

			switch {
			case status >= 500:
				logger.Error("request", fields...)
			case status >= 400:
				logger.Warn("request", fields...)
			default:
				logger.Info("request", fields...)
			}
		})
	}
}

// RequestID returns the id assigned by RequestLogger, or ""
func RequestID(ctx context.Context) string {
	if info, ok := ctx.Value(requestInfoKey{}).(*requestInfo); ok {
		return info.id
	}
	return ""
}

func annotate(ctx context.Context, user string, orgID int) {
	info, ok := ctx.Value(requestInfoKey{}).(*requestInfo)
	if !ok {
		return
	}
	if user != "" {
		info.user = user
	}
	if orgID > 0 {
		info.orgID = orgID
	}
}
