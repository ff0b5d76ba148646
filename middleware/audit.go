package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/repositories"
	"github.com/blogem/opsledger/userctx"
)

const (
	maxAuditBody = 64 << 10
	auditTimeout = 5 * time.Second
)

var redactedFields = map[string]bool{
	"password":      true,
	"token":         true,
	"secret":        true,
	"client_secret": true,
}

// AuditLogger middleware records all POST/PUT/PATCH/DELETE requests
func AuditLogger(auditRepo repositories.AuditRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Only log mutation operations
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			default:
				next.ServeHTTP(w, r)
				return
			}

			orgID, _ := userctx.GetOrganizationID(r.Context())
			entry := &models.AuditLogEntry{
				Timestamp:      time.Now().UTC(),
				OrganizationID: orgID,
				UserEmail:      userctx.GetUserEmail(r.Context()),
				Method:         r.Method,
				Path:           r.URL.Path,
				UserAgent:      r.UserAgent(),
				IPAddress:      getIPAddress(r),
				FormData:       captureBody(r),
			}

			// Log asynchronously to avoid blocking request
			ctx := context.WithoutCancel(r.Context())
			go func() {
				ctx, cancel := context.WithTimeout(ctx, auditTimeout)
				defer cancel()
				if err := auditRepo.Create(ctx, entry); err != nil {
					logger.Error("failed to create audit log",
						zap.Error(err),
						zap.String("method", entry.Method),
						zap.String("path", entry.Path))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}

// captureBody returns the request payload as a JSON string with secrets
// redacted. The body is restored for the next handler. Multipart uploads
// are not captured.
func captureBody(r *http.Request) string {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		if r.Body == nil {
			return ""
		}
		body, err := io.ReadAll(io.LimitReader(r.Body, maxAuditBody+1))
		r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), r.Body))
		if err != nil || len(body) == 0 || len(body) > maxAuditBody {
			return ""
		}
		var payload map[string]interface{}
		if err := json.Unmarshal(body, &payload); err != nil {
			return ""
		}
		return marshalRedacted(payload)
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return ""
		}
		formMap := make(map[string]interface{})
		for key, values := range r.PostForm {
			if len(values) == 1 {
				formMap[key] = values[0]
			} else {
				formMap[key] = values
			}
		}
		return marshalRedacted(formMap)
	default:
		return ""
	}
}

func marshalRedacted(payload map[string]interface{}) string {
	data, err := json.Marshal(redact(payload))
	if err != nil {
		return ""
	}
	return string(data)
}

// redact replaces secret-named values at any depth
func redact(v interface{}) interface{} {
	switch x := v.(type) {
	case map[string]interface{}:
		for key, value := range x {
			if redactedFields[strings.ToLower(key)] {
				x[key] = "[redacted]"
			} else {
				x[key] = redact(value)
			}
		}
	case []interface{}:
		for i := range x {
			x[i] = redact(x[i])
		}
	}
	return v
}
