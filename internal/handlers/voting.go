package handlers

import (
	"fmt"
	"net/http"

	"teamcheck/internal/database"
	"teamcheck/internal/health"
	"teamcheck/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func currentUserID(c *gin.Context) uint {
	sess := sessions.Default(c)
	if uid, ok := sess.Get("user_id").(uint); ok {
		return uid
	}
	return 0
}

// параметр сессии может прийти и в query, и в форме
func requestedSession(c *gin.Context) string {
	if s := c.Query("session"); s != "" {
		return s
	}
	return c.PostForm("session")
}

//
// ГЛАВНАЯ — ГОЛОСОВАНИЕ
//

func Home(c *gin.Context) {
	uid := currentUserID(c)

	selected, err := health.ResolveSession(database.DB, requestedSession(c))
	if err != nil {
		flashError(c, "Не удалось загрузить сессию голосования")
		render(c, http.StatusInternalServerError, "index.html", gin.H{})
		return
	}

	var sessionList []models.Session
	database.DB.Order("date desc, id desc").Find(&sessionList)

	var cards []models.Card
	database.DB.Order("id asc").Find(&cards)

	// уже отданные голоса в выбранной сессии
	existing := map[uint]models.Vote{}
	if selected != nil {
		var votes []models.Vote
		database.DB.Preload("Card").
			Where("user_id = ? AND session_id = ?", uid, selected.ID).
			Find(&votes)
		for _, v := range votes {
			existing[v.CardID] = v
		}
	}

	// показываем только карточки, по которым ещё не голосовали
	var cardsToShow []models.Card
	for _, card := range cards {
		if _, ok := existing[card.ID]; !ok {
			cardsToShow = append(cardsToShow, card)
		}
	}

	render(c, http.StatusOK, "index.html", gin.H{
		"cards":         cardsToShow,
		"sessions":      sessionList,
		"selected":      selected,
		"existingVotes": existing,
	})
}

func SubmitVotes(c *gin.Context) {
	uid := currentUserID(c)

	selected, err := health.ResolveSession(database.DB, requestedSession(c))
	if err != nil {
		flashError(c, "Не удалось загрузить сессию голосования")
		c.Redirect(http.StatusFound, "/")
		return
	}
	if selected == nil {
		flashError(c, "Нет ни одной сессии для голосования")
		c.Redirect(http.StatusFound, "/")
		return
	}

	var cards []models.Card
	database.DB.Order("id asc").Find(&cards)

	var votedCardIDs []uint
	database.DB.Model(&models.Vote{}).
		Where("user_id = ? AND session_id = ?", uid, selected.ID).
		Pluck("card_id", &votedCardIDs)
	voted := map[uint]struct{}{}
	for _, id := range votedCardIDs {
		voted[id] = struct{}{}
	}

	// поля формы именуются по карточкам: status_<id> / improving_<id>;
	// собираем их в явную структуру до записи
	ballots := map[uint]health.Ballot{}
	for _, card := range cards {
		if _, ok := voted[card.ID]; ok {
			continue
		}

		status := models.VoteStatus(c.PostForm(fmt.Sprintf("status_%d", card.ID)))
		if status != "" && !status.Valid() {
			flashError(c, "Недопустимое значение статуса")
			c.Redirect(http.StatusFound, fmt.Sprintf("/?session=%d", selected.ID))
			return
		}

		ballots[card.ID] = health.Ballot{
			Status:    status,
			Improving: c.PostForm(fmt.Sprintf("improving_%d", card.ID)) == "on",
		}
	}

	if err := health.RecordVotes(database.DB, uid, selected, ballots); err != nil {
		flashError(c, "Не удалось сохранить голоса, попробуйте ещё раз")
		c.Redirect(http.StatusFound, fmt.Sprintf("/?session=%d", selected.ID))
		return
	}

	database.CreateAuditLog(uid, "vote", selected.ID, "create",
		fmt.Sprintf("Голосование в сессии %s", selected.Date.Format("2006-01-02")))

	flashSuccess(c, "Ваши голоса сохранены!")
	c.Redirect(http.StatusFound, fmt.Sprintf("/?session=%d", selected.ID))
}
