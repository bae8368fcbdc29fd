package database

import (
	"log"
	"time"

	"teamcheck/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(dsn, adminUsername, adminPassword string) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	// миграции
	err = DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Department{},
		&models.Team{},
		&models.Session{},
		&models.Card{},
		&models.Vote{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	createDefaultAdmin(adminUsername, adminPassword)
	seedCards()
	seedDemoOrg()
	ensureSession()
}

// стартовый senior_manager — только из конфига, не через форму
func createDefaultAdmin(username, password string) {
	var count int64
	if err := DB.Model(&models.Profile{}).
		Where("role = ?", models.RoleSeniorManager).
		Count(&count).Error; err != nil {
		log.Printf("failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		// админ уже есть — ничего не делаем
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash default admin password: %v", err)
		return
	}

	admin := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Profile:      models.Profile{Role: models.RoleSeniorManager},
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("failed to create default admin: %v", err)
		return
	}

	log.Printf("created default admin user: %s (password: %s)", username, password)
}

// стандартная колода health-check карточек
func seedCards() {
	var count int64
	if err := DB.Model(&models.Card{}).Count(&count).Error; err != nil {
		log.Printf("failed to check cards: %v", err)
		return
	}
	if count > 0 {
		return
	}

	titles := []string{
		"Teamwork",
		"Delivering Value",
		"Fun",
		"Learning",
		"Mission",
		"Speed",
		"Support",
		"Suitable Process",
	}

	for _, title := range titles {
		if err := DB.Create(&models.Card{Title: title}).Error; err != nil {
			log.Printf("failed to create card %q: %v", title, err)
		}
	}
	log.Printf("seeded %d health-check cards", len(titles))
}

// демо-структура: департамент, пара команд и тестовые аккаунты
func seedDemoOrg() {
	var count int64
	if err := DB.Model(&models.Department{}).Count(&count).Error; err != nil {
		log.Printf("failed to check departments: %v", err)
		return
	}
	if count > 0 {
		return
	}

	dept := models.Department{Name: "Engineering"}
	if err := DB.Create(&dept).Error; err != nil {
		log.Printf("failed to create demo department: %v", err)
		return
	}

	platform := models.Team{Name: "Platform", DepartmentID: dept.ID}
	mobile := models.Team{Name: "Mobile", DepartmentID: dept.ID}
	if err := DB.Create(&platform).Error; err != nil {
		log.Printf("failed to create demo team: %v", err)
		return
	}
	if err := DB.Create(&mobile).Error; err != nil {
		log.Printf("failed to create demo team: %v", err)
		return
	}

	type seedUser struct {
		Username string
		Password string
		Role     models.UserRole
		TeamID   *uint
	}

	users := []seedUser{
		{
			Username: "lead@team.local",
			Password: "Lead123!",
			Role:     models.RoleTeamLeader,
			TeamID:   &platform.ID,
		},
		{
			Username: "head@team.local",
			Password: "Head123!",
			Role:     models.RoleDepartmentLeader,
			TeamID:   &platform.ID,
		},
		{
			Username: "dev@team.local",
			Password: "Dev123!",
			Role:     models.RoleEngineer,
			TeamID:   &platform.ID,
		},
	}

	for _, u := range users {
		var n int64
		if err := DB.Model(&models.User{}).
			Where("username = ?", u.Username).
			Count(&n).Error; err != nil {
			log.Printf("failed to check seed user %s: %v", u.Username, err)
			continue
		}
		if n > 0 {
			// уже есть — пропускаем
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("failed to hash password for %s: %v", u.Username, err)
			continue
		}

		user := models.User{
			Username:     u.Username,
			PasswordHash: string(hash),
			Profile: models.Profile{
				Role:   u.Role,
				TeamID: u.TeamID,
			},
		}

		if err := DB.Create(&user).Error; err != nil {
			log.Printf("failed to create seed user %s: %v", u.Username, err)
			continue
		}

		log.Printf("created seed user: %s (role=%s, password=%s)", u.Username, u.Role, u.Password)
	}
}

// чтобы после чистого старта было куда голосовать
func ensureSession() {
	var count int64
	if err := DB.Model(&models.Session{}).Count(&count).Error; err != nil {
		log.Printf("failed to check sessions: %v", err)
		return
	}
	if count > 0 {
		return
	}

	today := time.Now().Truncate(24 * time.Hour)
	if err := DB.Create(&models.Session{Date: today}).Error; err != nil {
		log.Printf("failed to create initial session: %v", err)
		return
	}
	log.Printf("created initial voting session for %s", today.Format("2006-01-02"))
}
