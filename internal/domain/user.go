package domain

import "time"

// Role determines what a user may do within their organization.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleMember Role = "member"
)

// User is an authenticated member of an organization.
type User struct {
	ID             string
	OrganizationID string
	Email          string
	PasswordHash   string
	Role           Role
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
