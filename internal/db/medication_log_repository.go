package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/minder/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MedicationLogRepository struct {
	database *gorm.DB
}

func NewMedicationLogRepository(database *gorm.DB) *MedicationLogRepository {
	return &MedicationLogRepository{database: database}
}

func (repo *MedicationLogRepository) FindByKeyAndDayRange(medicationID uuid.UUID, timeOfDay models.TimeOfDay, doseIndex int, dayStart time.Time, dayEnd time.Time) (models.MedicationLog, bool, error) {
	entry := models.MedicationLog{}
	result := repo.database.
		Where("medication_id = ? AND time_of_day = ? AND dose_index = ?", medicationID, timeOfDay, doseIndex).
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Order("date DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.MedicationLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MedicationLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *MedicationLogRepository) ListByDayRange(dayStart time.Time, dayEnd time.Time) ([]models.MedicationLog, error) {
	logs := make([]models.MedicationLog, 0)
	if err := repo.database.
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Order("time_of_day ASC, medication_name ASC, dose_index ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *MedicationLogRepository) ListByRange(fromStart time.Time, toEnd time.Time) ([]models.MedicationLog, error) {
	logs := make([]models.MedicationLog, 0)
	if err := repo.database.
		Where("date >= ? AND date < ?", fromStart, toEnd).
		Order("date ASC, medication_name ASC, dose_index ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *MedicationLogRepository) Create(entry *models.MedicationLog) error {
	return repo.database.Create(entry).Error
}

func (repo *MedicationLogRepository) UpdateTaken(entry *models.MedicationLog) error {
	return repo.database.Model(entry).Select("was_taken", "updated_at").Updates(entry).Error
}

// BackfillLogs inserts the synthesized logs and moves the reconciliation marker
// in one transaction. Logs that already exist for their key are left alone.
func (repo *MedicationLogRepository) BackfillLogs(entries []models.MedicationLog, marker models.AppSetting) (int64, error) {
	var created int64
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if len(entries) > 0 {
			result := tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(&entries, 100)
			if result.Error != nil {
				return result.Error
			}
			created = result.RowsAffected
		}
		return upsertSetting(tx, marker)
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}
