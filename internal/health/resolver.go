package health

import (
	"errors"
	"strconv"

	"teamcheck/internal/models"

	"gorm.io/gorm"
)

// ResolveSession выбирает активную сессию голосования.
// Если requested — id существующей сессии, возвращается она;
// иначе последняя по дате; если сессий нет вообще — nil без ошибки.
// Несуществующий или мусорный id не считается ошибкой.
func ResolveSession(db *gorm.DB, requested string) (*models.Session, error) {
	if requested != "" {
		if id, err := strconv.Atoi(requested); err == nil && id > 0 {
			var s models.Session
			err := db.First(&s, id).Error
			if err == nil {
				return &s, nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			// не нашли — падаем на последнюю
		}
	}

	var latest models.Session
	err := db.Order("date desc, id desc").First(&latest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &latest, nil
}
