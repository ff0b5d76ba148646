package userctx

import "context"

// Context key type
type contextKey string

const userEmailKey contextKey = "user_email"
const UserIDKey contextKey = "user_id"
const organizationIDKey contextKey = "organization_id"
const roleKey contextKey = "organization_role"

// SetUserEmail adds user email to request context
func SetUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, userEmailKey, email)
}

// GetUserEmail retrieves user email from request context
func GetUserEmail(ctx context.Context) string {
	email, ok := ctx.Value(userEmailKey).(string)
	if !ok {
		return "anonymous"
	}
	return email
}

// SetUserID adds user ID to request context
func SetUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, UserIDKey, id)
}

// GetUserID retrieves user ID from request context
func GetUserID(ctx context.Context) string {
	if userID := ctx.Value(UserIDKey); userID != nil {
		if id, ok := userID.(string); ok {
			return id
		}
	}
	return ""
}

// SetOrganization adds the active organization and the user's role in it to the context
func SetOrganization(ctx context.Context, orgID int, role string) context.Context {
	ctx = context.WithValue(ctx, organizationIDKey, orgID)
	return context.WithValue(ctx, roleKey, role)
}

// GetOrganizationID retrieves the active organization, ok is false when none was resolved
func GetOrganizationID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(organizationIDKey).(int)
	return id, ok && id > 0
}

// GetRole retrieves the user's role in the active organization
func GetRole(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}
