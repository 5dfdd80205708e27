package db

import (
	"time"

	"github.com/terraincognita07/minder/internal/models"
	"gorm.io/gorm"
)

type EmotionLogRepository struct {
	database *gorm.DB
}

func NewEmotionLogRepository(database *gorm.DB) *EmotionLogRepository {
	return &EmotionLogRepository{database: database}
}

func (repo *EmotionLogRepository) Create(entry *models.EmotionLog) error {
	return repo.database.Create(entry).Error
}

// ListSince returns check-ins at or after from, newest first. Timestamps are
// stored in UTC so the text comparison in SQLite stays ordered.
func (repo *EmotionLogRepository) ListSince(from time.Time) ([]models.EmotionLog, error) {
	logs := make([]models.EmotionLog, 0)
	if err := repo.database.
		Where("timestamp >= ?", from.UTC()).
		Order("timestamp DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
