package db

import (
	"time"

	"github.com/terraincognita07/minder/internal/models"
	"gorm.io/gorm"
)

type MealLogRepository struct {
	database *gorm.DB
}

func NewMealLogRepository(database *gorm.DB) *MealLogRepository {
	return &MealLogRepository{database: database}
}

func (repo *MealLogRepository) FindByDayRange(dayStart time.Time, dayEnd time.Time) (models.MealLog, bool, error) {
	entry := models.MealLog{}
	result := repo.database.
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Order("date DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.MealLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MealLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *MealLogRepository) ListByRange(fromStart time.Time, toEnd time.Time) ([]models.MealLog, error) {
	logs := make([]models.MealLog, 0)
	if err := repo.database.
		Where("date >= ? AND date < ?", fromStart, toEnd).
		Order("date ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *MealLogRepository) Create(entry *models.MealLog) error {
	return repo.database.Create(entry).Error
}

func (repo *MealLogRepository) Save(entry *models.MealLog) error {
	return repo.database.Save(entry).Error
}
