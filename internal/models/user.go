package models

import "gorm.io/gorm"

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleEmployee UserRole = "employee"
	RoleUser     UserRole = "user"
)

// Valid reports whether r is one of the three known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployee, RoleUser:
		return true
	}
	return false
}

// LandingPath maps a role to its dashboard route. Unknown roles land on
// /login instead of panicking on a missing map key.
func (r UserRole) LandingPath() string {
	switch r {
	case RoleAdmin:
		return "/"
	case RoleEmployee:
		return "/employee_dashboard"
	case RoleUser:
		return "/user_dashboard"
	}
	return "/login"
}

// TogglePath is where toggle_status sends the caller afterwards. Admins go
// back to the issue list, everyone else to their own dashboard.
func (r UserRole) TogglePath() string {
	if r == RoleAdmin {
		return "/view_issues"
	}
	return r.LandingPath()
}

type User struct {
	gorm.Model
	Username     string   `gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null"`
	Email        string   `gorm:"size:100"`
	Phone        string   `gorm:"size:15"`
}
