package middleware

import (
	"teamcheck/internal/database"
	"teamcheck/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// InjectUser кладёт в контекст текущего пользователя и его профиль
// (с командой и департаментом), если в сессии есть user_id.
func InjectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get("user_id"); uidRaw != nil {
			if uid, ok := uidRaw.(uint); ok && uid > 0 {
				var user models.User
				if err := database.DB.First(&user, uid).Error; err == nil {
					c.Set("CurrentUser", user)
				}

				var profile models.Profile
				if err := database.DB.
					Preload("Team").
					Preload("Team.Department").
					Where("user_id = ?", uid).
					First(&profile).Error; err == nil {
					c.Set("CurrentProfile", profile)
				}
			}
		}

		c.Next()
	}
}
