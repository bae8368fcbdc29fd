package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"teamcheck/internal/database"
	"teamcheck/internal/models"

	"github.com/gin-gonic/gin"
)

// ====== АДМИНКА СПРАВОЧНИКОВ (только senior_manager) ======
//
// Департаменты, команды, карточки и сессии — справочные данные:
// сам процесс голосования их не трогает. Роут-группа /admin закрыта
// middleware.RequireRole(RoleSeniorManager).

//
// ДЕПАРТАМЕНТЫ
//

func ListDepartments(c *gin.Context) {
	var departments []models.Department
	database.DB.Preload("Teams").Order("name asc").Find(&departments)

	render(c, http.StatusOK, "admin_departments.html", gin.H{
		"departments": departments,
	})
}

func CreateDepartment(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		flashError(c, "Название департамента не может быть пустым")
		c.Redirect(http.StatusFound, "/admin/departments")
		return
	}

	dept := models.Department{Name: name}
	if err := database.DB.Create(&dept).Error; err != nil {
		flashError(c, "Ошибка сохранения департамента")
		c.Redirect(http.StatusFound, "/admin/departments")
		return
	}

	database.CreateAuditLog(currentUserID(c), "department", dept.ID, "create", "Создан департамент: "+dept.Name)
	c.Redirect(http.StatusFound, "/admin/departments")
}

func DeleteDepartment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Некорректный ID")
		return
	}

	var dept models.Department
	if err := database.DB.First(&dept, id).Error; err != nil {
		c.String(http.StatusNotFound, "Департамент не найден")
		return
	}

	// команды уходят каскадом вместе с департаментом
	if err := database.DB.Select("Teams").Delete(&dept).Error; err != nil {
		flashError(c, "Ошибка удаления департамента")
		c.Redirect(http.StatusFound, "/admin/departments")
		return
	}

	database.CreateAuditLog(currentUserID(c), "department", dept.ID, "delete", "Удалён департамент: "+dept.Name)
	c.Redirect(http.StatusFound, "/admin/departments")
}

//
// КОМАНДЫ
//

func ListTeams(c *gin.Context) {
	var teams []models.Team
	database.DB.Preload("Department").Order("name asc").Find(&teams)

	var departments []models.Department
	database.DB.Order("name asc").Find(&departments)

	render(c, http.StatusOK, "admin_teams.html", gin.H{
		"teams":       teams,
		"departments": departments,
	})
}

func CreateTeam(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	deptID, err := strconv.Atoi(c.PostForm("department_id"))
	if name == "" || err != nil || deptID <= 0 {
		flashError(c, "Укажите название команды и департамент")
		c.Redirect(http.StatusFound, "/admin/teams")
		return
	}

	var dept models.Department
	if err := database.DB.First(&dept, deptID).Error; err != nil {
		flashError(c, "Департамент не найден")
		c.Redirect(http.StatusFound, "/admin/teams")
		return
	}

	team := models.Team{Name: name, DepartmentID: dept.ID}
	if err := database.DB.Create(&team).Error; err != nil {
		flashError(c, "Ошибка сохранения команды")
		c.Redirect(http.StatusFound, "/admin/teams")
		return
	}

	database.CreateAuditLog(currentUserID(c), "team", team.ID, "create", "Создана команда: "+team.Name)
	c.Redirect(http.StatusFound, "/admin/teams")
}

func DeleteTeam(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Некорректный ID")
		return
	}

	var team models.Team
	if err := database.DB.First(&team, id).Error; err != nil {
		c.String(http.StatusNotFound, "Команда не найдена")
		return
	}

	// у участников команды ссылка на неё обнуляется, профили остаются
	if err := database.DB.Model(&models.Profile{}).
		Where("team_id = ?", team.ID).
		Update("team_id", nil).Error; err != nil {
		flashError(c, "Ошибка удаления команды")
		c.Redirect(http.StatusFound, "/admin/teams")
		return
	}
	if err := database.DB.Delete(&team).Error; err != nil {
		flashError(c, "Ошибка удаления команды")
		c.Redirect(http.StatusFound, "/admin/teams")
		return
	}

	database.CreateAuditLog(currentUserID(c), "team", team.ID, "delete", "Удалена команда: "+team.Name)
	c.Redirect(http.StatusFound, "/admin/teams")
}

//
// КАРТОЧКИ
//

func ListCards(c *gin.Context) {
	var cards []models.Card
	database.DB.Order("id asc").Find(&cards)

	render(c, http.StatusOK, "admin_cards.html", gin.H{
		"cards": cards,
	})
}

func CreateCard(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	if len(title) < 3 {
		flashError(c, "Название карточки должно быть не короче 3 символов")
		c.Redirect(http.StatusFound, "/admin/cards")
		return
	}

	card := models.Card{Title: title}
	if err := database.DB.Create(&card).Error; err != nil {
		flashError(c, "Ошибка сохранения карточки")
		c.Redirect(http.StatusFound, "/admin/cards")
		return
	}

	database.CreateAuditLog(currentUserID(c), "card", card.ID, "create", "Создана карточка: "+card.Title)
	c.Redirect(http.StatusFound, "/admin/cards")
}

//
// СЕССИИ
//

func ListSessions(c *gin.Context) {
	var sessionList []models.Session
	database.DB.Order("date desc, id desc").Find(&sessionList)

	render(c, http.StatusOK, "admin_sessions.html", gin.H{
		"sessions": sessionList,
	})
}

func CreateSession(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.PostForm("date"))
	if err != nil {
		flashError(c, "Неверная дата сессии")
		c.Redirect(http.StatusFound, "/admin/sessions")
		return
	}

	s := models.Session{Date: date}
	if err := database.DB.Create(&s).Error; err != nil {
		flashError(c, "Ошибка сохранения сессии")
		c.Redirect(http.StatusFound, "/admin/sessions")
		return
	}

	database.CreateAuditLog(currentUserID(c), "session", s.ID, "create", "Создана сессия: "+s.Date.Format("2006-01-02"))
	c.Redirect(http.StatusFound, "/admin/sessions")
}

//
// ПОЛЬЗОВАТЕЛИ: НАЗНАЧЕНИЕ РОЛИ И КОМАНДЫ
//

func ListUsers(c *gin.Context) {
	var profiles []models.Profile
	database.DB.Preload("Team").Order("user_id asc").Find(&profiles)

	var users []models.User
	database.DB.Order("username asc").Find(&users)
	byID := make(map[uint]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	var teams []models.Team
	database.DB.Order("name asc").Find(&teams)

	render(c, http.StatusOK, "admin_users.html", gin.H{
		"profiles": profiles,
		"users":    byID,
		"teams":    teams,
	})
}

func AssignUser(c *gin.Context) {
	uid, err := strconv.Atoi(c.Param("id"))
	if err != nil || uid <= 0 {
		c.String(http.StatusBadRequest, "Некорректный ID")
		return
	}

	var profile models.Profile
	if err := database.DB.Where("user_id = ?", uid).First(&profile).Error; err != nil {
		c.String(http.StatusNotFound, "Профиль не найден")
		return
	}

	role := models.UserRole(c.PostForm("role"))
	if !models.ValidRole(role) {
		flashError(c, "Неверная роль")
		c.Redirect(http.StatusFound, "/admin/users")
		return
	}

	var teamID *uint
	if tidStr := c.PostForm("team_id"); tidStr != "" {
		tid, err := strconv.Atoi(tidStr)
		if err != nil || tid <= 0 {
			flashError(c, "Команда не найдена")
			c.Redirect(http.StatusFound, "/admin/users")
			return
		}
		var team models.Team
		if err := database.DB.First(&team, tid).Error; err != nil {
			flashError(c, "Команда не найдена")
			c.Redirect(http.StatusFound, "/admin/users")
			return
		}
		teamID = &team.ID
	}

	profile.Role = role
	profile.TeamID = teamID
	if err := database.DB.Save(&profile).Error; err != nil {
		flashError(c, "Ошибка сохранения профиля")
		c.Redirect(http.StatusFound, "/admin/users")
		return
	}

	database.CreateAuditLog(currentUserID(c), "profile", profile.ID, "assign",
		"Назначена роль "+string(role))
	c.Redirect(http.StatusFound, "/admin/users")
}
