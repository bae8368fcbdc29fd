package health

import (
	"fmt"

	"teamcheck/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Ballot — то, что пользователь отправил по одной карточке.
type Ballot struct {
	Status    models.VoteStatus
	Improving bool
}

// RecordVotes сохраняет голоса пользователя в сессии: по одной строке
// на тройку (user, session, card), повторная отправка обновляет
// status/improving через upsert по уникальному индексу.
// Карточки с пустым статусом пропускаются. Вся пачка пишется в одной
// транзакции: если хоть одна запись не прошла, не сохраняется ничего.
func RecordVotes(db *gorm.DB, userID uint, session *models.Session, ballots map[uint]Ballot) error {
	if session == nil || len(ballots) == 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for cardID, b := range ballots {
			if b.Status == "" {
				// статус не выбран — голос не записываем
				continue
			}
			if !b.Status.Valid() {
				return fmt.Errorf("invalid vote status %q for card %d", b.Status, cardID)
			}

			vote := models.Vote{
				UserID:    userID,
				SessionID: session.ID,
				CardID:    cardID,
				Status:    b.Status,
				Improving: b.Improving,
			}

			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "user_id"},
					{Name: "session_id"},
					{Name: "card_id"},
				},
				DoUpdates: clause.AssignmentColumns([]string{"status", "improving", "updated_at"}),
			}).Create(&vote).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
