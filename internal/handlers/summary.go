package handlers

import (
	"errors"
	"net/http"

	"teamcheck/internal/database"
	"teamcheck/internal/health"
	"teamcheck/internal/models"

	"github.com/gin-gonic/gin"
)

// Строка сводки для шаблона: отсутствующие статусы — нули.
type SummaryRow struct {
	Green int
	Amber int
	Red   int
}

func summaryRows(counts map[string]map[models.VoteStatus]int) map[string]SummaryRow {
	rows := make(map[string]SummaryRow, len(counts))
	for title, byStatus := range counts {
		rows[title] = SummaryRow{
			Green: byStatus[models.StatusGreen],
			Amber: byStatus[models.StatusAmber],
			Red:   byStatus[models.StatusRed],
		}
	}
	return rows
}

// профиль есть у каждого пользователя (создаётся вместе с аккаунтом)
func loadProfile(c *gin.Context) (models.Profile, bool) {
	var p models.Profile
	err := database.DB.Where("user_id = ?", currentUserID(c)).First(&p).Error
	if err != nil {
		flashError(c, "Профиль не найден")
		c.Redirect(http.StatusFound, "/")
		return p, false
	}
	return p, true
}

//
// СВОДКА ПО КОМАНДЕ
//

func TeamSummary(c *gin.Context) {
	profile, ok := loadProfile(c)
	if !ok {
		return
	}

	team, scope, err := health.TeamScope(database.DB, profile)
	switch {
	case errors.Is(err, health.ErrNotAuthorized):
		flashError(c, "Вам недоступна сводка по команде")
		c.Redirect(http.StatusFound, "/")
		return
	case errors.Is(err, health.ErrNotAssigned):
		flashError(c, "Вы не привязаны ни к одной команде")
		c.Redirect(http.StatusFound, "/")
		return
	case err != nil:
		flashError(c, "Не удалось построить сводку")
		c.Redirect(http.StatusFound, "/")
		return
	}

	// сводка всегда по последней сессии
	latest, err := health.ResolveSession(database.DB, "")
	if err != nil {
		flashError(c, "Не удалось построить сводку")
		c.Redirect(http.StatusFound, "/")
		return
	}

	counts, err := health.Summarize(database.DB, scope, latest)
	if err != nil {
		flashError(c, "Не удалось построить сводку")
		c.Redirect(http.StatusFound, "/")
		return
	}

	render(c, http.StatusOK, "team_summary.html", gin.H{
		"team":    team,
		"session": latest,
		"summary": summaryRows(counts),
	})
}

//
// СВОДКА ПО ДЕПАРТАМЕНТУ
//

func DepartmentSummary(c *gin.Context) {
	profile, ok := loadProfile(c)
	if !ok {
		return
	}

	dept, scope, err := health.DepartmentScope(database.DB, profile)
	switch {
	case errors.Is(err, health.ErrNotAuthorized):
		flashError(c, "Вам недоступна сводка по департаменту")
		c.Redirect(http.StatusFound, "/")
		return
	case errors.Is(err, health.ErrNotAssigned):
		flashError(c, "Вы не привязаны ни к одному департаменту")
		c.Redirect(http.StatusFound, "/")
		return
	case err != nil:
		flashError(c, "Не удалось построить сводку")
		c.Redirect(http.StatusFound, "/")
		return
	}

	latest, err := health.ResolveSession(database.DB, "")
	if err != nil {
		flashError(c, "Не удалось построить сводку")
		c.Redirect(http.StatusFound, "/")
		return
	}

	counts, err := health.Summarize(database.DB, scope, latest)
	if err != nil {
		flashError(c, "Не удалось построить сводку")
		c.Redirect(http.StatusFound, "/")
		return
	}

	render(c, http.StatusOK, "department_summary.html", gin.H{
		"department": dept,
		"session":    latest,
		"summary":    summaryRows(counts),
	})
}
