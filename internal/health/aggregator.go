package health

import (
	"teamcheck/internal/models"

	"gorm.io/gorm"
)

// Summarize считает по каждой карточке, сколько голосов какого статуса
// набралось среди userIDs в данной сессии. Ключ — заголовок карточки.
// В карте только реально встретившиеся статусы; нули дорисовывает
// вызывающая сторона. Нет сессии или пустая область — пустой результат.
func Summarize(db *gorm.DB, userIDs []uint, session *models.Session) (map[string]map[models.VoteStatus]int, error) {
	result := make(map[string]map[models.VoteStatus]int)
	if session == nil || len(userIDs) == 0 {
		return result, nil
	}

	type row struct {
		Title  string
		Status models.VoteStatus
		Count  int
	}

	var rows []row
	err := db.Model(&models.Vote{}).
		Select("cards.title AS title, votes.status AS status, COUNT(votes.id) AS count").
		Joins("JOIN cards ON cards.id = votes.card_id AND cards.deleted_at IS NULL").
		Where("votes.user_id IN ? AND votes.session_id = ?", userIDs, session.ID).
		Group("cards.title, votes.status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		if result[r.Title] == nil {
			result[r.Title] = make(map[models.VoteStatus]int)
		}
		result[r.Title][r.Status] = r.Count
	}
	return result, nil
}
