package models

import "gorm.io/gorm"

type UserRole string

const (
	RoleEngineer         UserRole = "engineer"
	RoleTeamLeader       UserRole = "team_leader"
	RoleDepartmentLeader UserRole = "department_leader"
	RoleSeniorManager    UserRole = "senior_manager"
)

// ValidRole — существует ли такая роль вообще.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleEngineer, RoleTeamLeader, RoleDepartmentLeader, RoleSeniorManager:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string `gorm:"not null"`

	// профиль создаётся в одной транзакции с пользователем,
	// поэтому в живой системе он есть всегда
	Profile Profile
}
