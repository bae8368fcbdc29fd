package handlers

import (
	"teamcheck/internal/models"

	"github.com/gin-gonic/gin"
)

// render — обёртка над c.HTML: прокидывает во все шаблоны текущего
// пользователя, его профиль и накопленные flash-уведомления.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if uVal, ok := c.Get("CurrentUser"); ok {
		if u, ok := uVal.(models.User); ok {
			data["CurrentUser"] = u
			data["CurrentUsername"] = u.Username
		}
	}
	if pVal, ok := c.Get("CurrentProfile"); ok {
		if p, ok := pVal.(models.Profile); ok {
			data["CurrentProfile"] = p
			data["CurrentRole"] = p.Role
			data["IsTeamLeader"] = p.Role == models.RoleTeamLeader
			data["IsDepartmentLeader"] = p.Role == models.RoleDepartmentLeader
			data["IsSeniorManager"] = p.Role == models.RoleSeniorManager
		}
	}

	success, errs := takeFlashes(c)
	data["FlashSuccess"] = success
	data["FlashErrors"] = errs

	c.HTML(status, tmpl, data)
}
