package models

import "gorm.io/gorm"

// Employee is the employee-facing record linked one-to-one with a User whose
// role is "employee". Issues are assigned to Employee rows, not Users.
type Employee struct {
	gorm.Model
	Name   string `gorm:"size:100;not null"`
	UserID uint   `gorm:"uniqueIndex;not null"`
	User   User
}
