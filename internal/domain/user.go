package domain

import "time"

// RoleUser is the role assigned to every account at registration.
// There is no role-change flow; other services interpret the value.
const RoleUser = "USER"

// User is the domain model for platform accounts.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	Role         string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
