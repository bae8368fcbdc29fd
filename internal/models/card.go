package models

import "gorm.io/gorm"

// Карточка — фиксированная тема, по которой голосуют каждую сессию
// («Teamwork», «Delivering Value» и т.п.).
type Card struct {
	gorm.Model
	Title string `gorm:"size:100;not null"`
}
