package models

import (
	"time"

	"gorm.io/gorm"
)

// Сессия — один датированный раунд голосования по всем карточкам.
type Session struct {
	gorm.Model
	Date time.Time `gorm:"type:date;not null"`
}
