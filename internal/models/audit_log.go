package models

import "time"

type AuditLog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	UserID uint
	User   User

	Entity   string `gorm:"size:50;not null"` // "vote", "card", "team" и т.п.
	EntityID uint
	Action   string `gorm:"size:50;not null"` // "create", "assign", "delete"
	Details  string `gorm:"type:text"`
}
