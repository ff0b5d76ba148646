package models

import "time"

// Organization roles, ordered from least to most privileged
const (
	RoleViewer = "viewer"
	RoleMember = "member"
	RoleAdmin  = "admin"
	RoleOwner  = "owner"
)

var roleRank = map[string]int{
	RoleViewer: 0,
	RoleMember: 1,
	RoleAdmin:  2,
	RoleOwner:  3,
}

// Organization is the tenant every record is scoped to
type Organization struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`

	// Role of the requesting user, populated by membership queries
	Role string `json:"role,omitempty"`
}

// Membership links a user (by email) to an organization
type Membership struct {
	OrganizationID int    `json:"organization_id"`
	UserEmail      string `json:"user_email"`
	Role           string `json:"role"`
}

// RoleAtLeast reports whether role grants at least the privileges of min
func RoleAtLeast(role, min string) bool {
	r, ok := roleRank[role]
	if !ok {
		return false
	}
	return r >= roleRank[min]
}

// CanWrite reports whether the role may issue mutations
func CanWrite(role string) bool {
	return RoleAtLeast(role, RoleMember)
}

// OrganizationForm represents form data for creating organizations
type OrganizationForm struct {
	Name string `json:"name" validate:"required,max=200"`
	Slug string `json:"slug" validate:"required,max=64,slug"`
}

// Validate validates the organization form data
func (f *OrganizationForm) Validate() []string {
	return validateStruct(f)
}

// MemberForm represents form data for adding a user to an organization
type MemberForm struct {
	Email string `json:"email" validate:"required,email,max=255"`
	Role  string `json:"role" validate:"required,oneof=owner admin member viewer"`
}

// Validate validates the member form data
func (f *MemberForm) Validate() []string {
	return validateStruct(f)
}
