package models

import "gorm.io/gorm"

// Департамент. Удаление департамента каскадно удаляет его команды.
type Department struct {
	gorm.Model
	Name string `gorm:"size:100;not null"`

	Teams []Team `gorm:"constraint:OnDelete:CASCADE"`
}

// Команда внутри департамента.
type Team struct {
	gorm.Model
	Name string `gorm:"size:100;not null"`

	DepartmentID uint `gorm:"not null"`
	Department   Department
}
