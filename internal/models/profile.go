package models

import "gorm.io/gorm"

// Профиль голосующего: роль + привязка к команде.
// Один-к-одному с User; если команду удалили, ссылка обнуляется,
// сам профиль остаётся.
type Profile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null"`

	Role UserRole `gorm:"type:varchar(20);not null;default:'engineer'"`

	TeamID *uint
	Team   *Team `gorm:"constraint:OnDelete:SET NULL"`
}
