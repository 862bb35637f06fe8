package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access to every record
	RoleManager  Role = "manager"  // Access limited to provable reports
	RoleEmployee Role = "employee" // Access limited to own records
)

type User struct {
	ID           string
	Email        string
	PasswordHash *string
	ManagerID    *string // nil means root of a reporting tree
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if user is manager or admin
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

// HasManager checks if user reports to someone
func (u *User) HasManager() bool {
	return u.ManagerID != nil && *u.ManagerID != ""
}

// IsValidRole reports whether r is a known role value
func IsValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleManager || r == RoleEmployee
}
