package server

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"teamcheck/internal/config"
	"teamcheck/internal/handlers"
	"teamcheck/internal/middleware"
	"teamcheck/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// css-класс для ячейки сводки по статусу
func statusClass(s models.VoteStatus) string {
	return strings.ToLower(string(s))
}

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")

	r.SetFuncMap(template.FuncMap{
		// сравнение без оглядки на тип: роли и id приходят в шаблоны
		// то строками, то своими типами
		"eq":          func(a, b interface{}) bool { return fmt.Sprint(a) == fmt.Sprint(b) },
		"statusClass": statusClass,
	})
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("teamcheck_session", store))

	r.Use(middleware.InjectUser())

	// AUTH
	r.GET("/register", handlers.ShowRegister)
	r.POST("/register", handlers.Register)
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// ГОЛОСОВАНИЕ
	auth.GET("/", handlers.Home)
	auth.POST("/", handlers.SubmitVotes)

	// СВОДКИ (проверка роли/привязки — внутри, через health-политику,
	// чтобы различать «не та роль» и «нет команды»)
	auth.GET("/team-summary", handlers.TeamSummary)
	auth.GET("/department-summary", handlers.DepartmentSummary)

	// АДМИНКА СПРАВОЧНИКОВ
	admin := auth.Group("/admin")
	admin.Use(middleware.RequireRole(models.RoleSeniorManager))

	admin.GET("/departments", handlers.ListDepartments)
	admin.POST("/departments/new", handlers.CreateDepartment)
	admin.POST("/departments/:id/delete", handlers.DeleteDepartment)

	admin.GET("/teams", handlers.ListTeams)
	admin.POST("/teams/new", handlers.CreateTeam)
	admin.POST("/teams/:id/delete", handlers.DeleteTeam)

	admin.GET("/cards", handlers.ListCards)
	admin.POST("/cards/new", handlers.CreateCard)

	admin.GET("/sessions", handlers.ListSessions)
	admin.POST("/sessions/new", handlers.CreateSession)

	admin.GET("/users", handlers.ListUsers)
	admin.POST("/users/:id/assign", handlers.AssignUser)

	admin.GET("/audit", handlers.ListAuditLogs)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
