package db

import (
	"github.com/terraincognita07/minder/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	database *gorm.DB
}

func NewSettingRepository(database *gorm.DB) *SettingRepository {
	return &SettingRepository{database: database}
}

func (repo *SettingRepository) Get(key string) (string, bool, error) {
	setting := models.AppSetting{}
	result := repo.database.Where("key = ?", key).Limit(1).Find(&setting)
	if result.Error != nil {
		return "", false, result.Error
	}
	if result.RowsAffected == 0 {
		return "", false, nil
	}
	return setting.Value, true, nil
}

func (repo *SettingRepository) Set(key string, value string) error {
	return upsertSetting(repo.database, models.AppSetting{Key: key, Value: value})
}

func (repo *SettingRepository) Delete(key string) error {
	return repo.database.Where("key = ?", key).Delete(&models.AppSetting{}).Error
}

func upsertSetting(database *gorm.DB, setting models.AppSetting) error {
	return database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}
