package models

import "gorm.io/gorm"

type VoteStatus string

const (
	StatusGreen VoteStatus = "Green"
	StatusAmber VoteStatus = "Amber"
	StatusRed   VoteStatus = "Red"
)

// Valid — статус из закрытого перечисления, а не произвольная строка.
func (s VoteStatus) Valid() bool {
	switch s {
	case StatusGreen, StatusAmber, StatusRed:
		return true
	}
	return false
}

// Голос одного пользователя по одной карточке в одной сессии.
// Составной уникальный индекс гарантирует не больше одной строки
// на тройку (user, session, card); запись идёт через upsert.
type Vote struct {
	gorm.Model
	UserID    uint `gorm:"not null;uniqueIndex:idx_votes_user_session_card"`
	SessionID uint `gorm:"not null;uniqueIndex:idx_votes_user_session_card"`
	CardID    uint `gorm:"not null;uniqueIndex:idx_votes_user_session_card"`

	User    User
	Session Session
	Card    Card

	Status    VoteStatus `gorm:"type:varchar(10);not null"`
	Improving bool       `gorm:"not null;default:false"`
}
