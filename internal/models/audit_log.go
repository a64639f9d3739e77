package models

import "time"

type AuditLog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	UserID uint
	User   User

	Entity   string `gorm:"size:50;not null"` // "issue", "employee", "user"
	EntityID uint
	Action   string `gorm:"size:50;not null"` // "create", "assign", "edit", "toggle_status"
	Details  string `gorm:"type:text"`
}
