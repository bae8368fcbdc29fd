package database

import "teamcheck/internal/models"

// helper для записи в журнал аудита; ошибки не всплывают,
// аудит не должен ронять основной запрос
func CreateAuditLog(userID uint, entity string, entityID uint, action, details string) {
	if DB == nil {
		return
	}
	record := models.AuditLog{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	_ = DB.Create(&record).Error
}
