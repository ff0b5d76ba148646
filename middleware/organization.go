package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/userctx"
)

// OrganizationHeader selects the active organization of a request
const OrganizationHeader = "X-Organization-ID"

// MembershipResolver looks up the caller's role in an organization
type MembershipResolver interface {
	Membership(ctx context.Context, orgID int, email string) (*models.Membership, error)
}

// RequireOrganization resolves the active organization from the
// X-Organization-ID header or the bearer token's org claim and checks the
// user's membership. Viewers may only read.
func RequireOrganization(members MembershipResolver, logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			orgID, ok, err := organizationID(r)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid "+OrganizationHeader+" header")
				return
			}
			if !ok {
				writeError(w, http.StatusBadRequest, "Organization is required")
				return
			}

			email := userctx.GetUserEmail(r.Context())
			membership, err := members.Membership(r.Context(), orgID, email)
			if err != nil {
				if errors.Is(err, models.ErrForbidden) {
					writeError(w, http.StatusForbidden, "You are not a member of this organization")
					return
				}
				logger.Error("membership lookup failed", zap.Error(err), zap.Int("org_id", orgID), zap.String("user", email))
				writeError(w, http.StatusInternalServerError, "Failed to resolve organization")
				return
			}

			if membership.Role == models.RoleViewer && !readOnly(r.Method) {
				writeError(w, http.StatusForbidden, "Viewers have read-only access")
				return
			}

			ctx := userctx.SetOrganization(r.Context(), orgID, membership.Role)
			annotate(ctx, "", orgID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// organizationID prefers the header over the token claim
func organizationID(r *http.Request) (int, bool, error) {
	if raw := strings.TrimSpace(r.Header.Get(OrganizationHeader)); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return 0, false, errors.New("invalid organization id")
		}
		return id, true, nil
	}
	id, ok := TokenOrganizationID(r.Context())
	return id, ok, nil
}

func readOnly(method string) bool {
	return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
}
