package middleware

import (
	"context"
	"net/http"
	"strings"

	"gitea.com/go-chi/session"

	"github.com/blogem/opsledger/authenticator"
	"github.com/blogem/opsledger/userctx"
)

// Session keys shared with the auth controller
const (
	SessionUserID        = "user_id"
	SessionUserEmail     = "user_email"
	SessionUserName      = "user_nickname"
	SessionState         = "state"
	SessionRedirectAfter = "redirect_after_login"
)

type tokenOrgKey struct{}

// RequireAuth ensures the user is authenticated, either by a bearer token or
// by the login session. Unauthenticated API calls get 401; browser requests
// are redirected to /login with the intended destination stored.
// A nil tokens disables bearer authentication.
func RequireAuth(tokens *authenticator.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if raw, ok := bearerToken(r); ok {
				if tokens == nil {
					writeError(w, http.StatusUnauthorized, "Bearer tokens are not enabled")
					return
				}
				claims, err := tokens.Verify(raw)
				if err != nil {
					writeError(w, http.StatusUnauthorized, "Invalid or expired token")
					return
				}

				ctx := userctx.SetUserID(r.Context(), claims.Subject)
				ctx = userctx.SetUserEmail(ctx, claims.Email)
				if claims.OrganizationID > 0 {
					ctx = context.WithValue(ctx, tokenOrgKey{}, claims.OrganizationID)
				}
				annotate(ctx, claims.Email, 0)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			sess := session.GetSession(r)
			userID, _ := sess.Get(SessionUserID).(string)
			if userID == "" {
				if strings.HasPrefix(r.URL.Path, "/api/") {
					writeError(w, http.StatusUnauthorized, "Authentication required")
					return
				}
				// Store the intended destination for redirect after login
				sess.Set(SessionRedirectAfter, r.URL.Path)
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			email, _ := sess.Get(SessionUserEmail).(string)
			ctx := userctx.SetUserID(r.Context(), userID)
			ctx = userctx.SetUserEmail(ctx, email)
			annotate(ctx, email, 0)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TokenOrganizationID returns the org claim of the bearer token, if any
func TokenOrganizationID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(tokenOrgKey{}).(int)
	return id, ok && id > 0
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return "", false
	}
	token := strings.TrimSpace(header[7:])
	return token, token != ""
}
