package models

import "github.com/google/uuid"

// Membership roles. Invitations default to RoleMember; the household
// creator is stored as RoleOwner.
const (
	RoleMember        = "member"
	RoleAdministrator = "administrator"
	RoleOwner         = "owner"
)

// ValidRole reports whether role is one of the known membership roles.
func ValidRole(role string) bool {
	switch role {
	case RoleMember, RoleAdministrator, RoleOwner:
		return true
	}
	return false
}

// MembershipDB represents a (user, household, role) row.
// At most one row may exist per (household, user).
type MembershipDB struct {
	MemberID    uuid.UUID `json:"id" db:"member_id"`              // Primary key
	HouseholdID uuid.UUID `json:"household_id" db:"household_id"` // Owning household
	UserID      uuid.UUID `json:"user_id" db:"user_id"`           // External user reference
	Role        string    `json:"role" db:"role"`                 // member, administrator or owner
}
