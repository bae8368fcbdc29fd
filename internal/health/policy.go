package health

import (
	"errors"

	"teamcheck/internal/models"

	"gorm.io/gorm"
)

// Причины отказа различимы через errors.Is: обработчик показывает
// разные сообщения для «не та роль» и «нет привязки».
var (
	ErrNotAuthorized = errors.New("role is not allowed to view this summary")
	ErrNotAssigned   = errors.New("leader has no team or department assigned")
)

// TeamScope проверяет, что профиль — тимлид со своей командой,
// и возвращает команду плюс id всех её участников.
func TeamScope(db *gorm.DB, p models.Profile) (*models.Team, []uint, error) {
	if p.Role != models.RoleTeamLeader {
		return nil, nil, ErrNotAuthorized
	}
	if p.TeamID == nil {
		return nil, nil, ErrNotAssigned
	}

	var team models.Team
	if err := db.First(&team, *p.TeamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotAssigned
		}
		return nil, nil, err
	}

	var userIDs []uint
	err := db.Model(&models.Profile{}).
		Where("team_id = ?", team.ID).
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, nil, err
	}

	return &team, userIDs, nil
}

// DepartmentScope — то же для руководителя департамента: участники
// всех команд его департамента.
func DepartmentScope(db *gorm.DB, p models.Profile) (*models.Department, []uint, error) {
	if p.Role != models.RoleDepartmentLeader {
		return nil, nil, ErrNotAuthorized
	}
	if p.TeamID == nil {
		return nil, nil, ErrNotAssigned
	}

	var team models.Team
	if err := db.First(&team, *p.TeamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotAssigned
		}
		return nil, nil, err
	}

	var dept models.Department
	if err := db.First(&dept, team.DepartmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotAssigned
		}
		return nil, nil, err
	}

	var teamIDs []uint
	err := db.Model(&models.Team{}).
		Where("department_id = ?", dept.ID).
		Pluck("id", &teamIDs).Error
	if err != nil {
		return nil, nil, err
	}

	var userIDs []uint
	err = db.Model(&models.Profile{}).
		Where("team_id IN ?", teamIDs).
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, nil, err
	}

	return &dept, userIDs, nil
}
