package models

import "gorm.io/gorm"

const (
	StatusOpen      = "open"
	StatusAssigned  = "assigned"
	StatusSolved    = "Solved"
	StatusNotSolved = "Not Solved"
)

type Issue struct {
	gorm.Model
	Category      string `gorm:"size:50"`
	OtherSpecify  string `gorm:"size:100"`
	ClientName    string `gorm:"size:100"`
	Status        string `gorm:"size:20;not null;default:open"`
	EmployeeID    *uint
	Employee      *Employee
	CreatedBy     uint   `gorm:"not null"`
	Creator       User   `gorm:"foreignKey:CreatedBy"`
	Location      string `gorm:"size:60"`
	LocationOther string `gorm:"size:100"`
}

// ToggledStatus returns the status after a solve/unsolve flip: anything that
// is not Solved becomes Solved, Solved collapses to Not Solved.
func (i *Issue) ToggledStatus() string {
	if i.Status != StatusSolved {
		return StatusSolved
	}
	return StatusNotSolved
}

// CanToggle decides whether the caller may flip this issue's status.
// Admins may toggle anything; an employee only an issue assigned to their own
// employee record (employeeID is zero when the account has no record); a user
// only an issue they created.
func (i *Issue) CanToggle(role UserRole, userID, employeeID uint) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleEmployee:
		return employeeID != 0 && i.EmployeeID != nil && *i.EmployeeID == employeeID
	case RoleUser:
		return i.CreatedBy == userID
	}
	return false
}
