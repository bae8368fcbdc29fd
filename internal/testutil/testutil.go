package testutil

import (
	"fmt"
	"testing"
	"time"

	"teamcheck/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenInMemoryDB opens an in-memory SQLite database with the full schema
// migrated. Each test passes its own name so databases stay isolated;
// shared cache keeps the database alive across pooled connections.
func OpenInMemoryDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
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
		t.Fatalf("migrate test db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// CreateUser inserts a user with a bcrypt-hashed password and an attached
// profile, the same shape registration produces.
func CreateUser(t *testing.T, db *gorm.DB, username, password string, role models.UserRole, teamID *uint) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Profile: models.Profile{
			Role:   role,
			TeamID: teamID,
		},
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

// CreateSession inserts a voting session dated by a "2006-01-02" string.
func CreateSession(t *testing.T, db *gorm.DB, date string) models.Session {
	t.Helper()

	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("parse date %s: %v", date, err)
	}
	s := models.Session{Date: d}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("create session %s: %v", date, err)
	}
	return s
}

// CreateCard inserts a topic card.
func CreateCard(t *testing.T, db *gorm.DB, title string) models.Card {
	t.Helper()

	card := models.Card{Title: title}
	if err := db.Create(&card).Error; err != nil {
		t.Fatalf("create card %s: %v", title, err)
	}
	return card
}

// CreateTeam inserts a department/team pair when the department is nil,
// or a team inside the given department.
func CreateTeam(t *testing.T, db *gorm.DB, name string, dept *models.Department) (models.Department, models.Team) {
	t.Helper()

	var d models.Department
	if dept != nil {
		d = *dept
	} else {
		d = models.Department{Name: name + " Dept"}
		if err := db.Create(&d).Error; err != nil {
			t.Fatalf("create department: %v", err)
		}
	}
	team := models.Team{Name: name, DepartmentID: d.ID}
	if err := db.Create(&team).Error; err != nil {
		t.Fatalf("create team %s: %v", name, err)
	}
	return d, team
}
