package handlers

import (
	"net/http"

	"teamcheck/internal/database"
	"teamcheck/internal/models"

	"github.com/gin-gonic/gin"
)

// журнал действий: кто голосовал, кто менял справочники
func ListAuditLogs(c *gin.Context) {
	var logs []models.AuditLog
	database.DB.
		Preload("User").
		Order("created_at desc").
		Limit(200).
		Find(&logs)

	render(c, http.StatusOK, "admin_audit.html", gin.H{
		"logs": logs,
	})
}
