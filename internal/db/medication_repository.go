package db

import (
	"github.com/google/uuid"
	"github.com/terraincognita07/minder/internal/models"
	"gorm.io/gorm"
)

type MedicationRepository struct {
	database *gorm.DB
}

func NewMedicationRepository(database *gorm.DB) *MedicationRepository {
	return &MedicationRepository{database: database}
}

func (repo *MedicationRepository) List() ([]models.Medication, error) {
	medications := make([]models.Medication, 0)
	if err := repo.database.Order("created_at ASC, id ASC").Find(&medications).Error; err != nil {
		return nil, err
	}
	return medications, nil
}

func (repo *MedicationRepository) FindByID(id uuid.UUID) (models.Medication, bool, error) {
	medication := models.Medication{}
	result := repo.database.Where("id = ?", id).Limit(1).Find(&medication)
	if result.Error != nil {
		return models.Medication{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Medication{}, false, nil
	}
	return medication, true, nil
}

func (repo *MedicationRepository) Create(medication *models.Medication) error {
	return repo.database.Create(medication).Error
}

func (repo *MedicationRepository) Save(medication *models.Medication) error {
	return repo.database.Save(medication).Error
}

func (repo *MedicationRepository) Delete(id uuid.UUID) error {
	return repo.database.Where("id = ?", id).Delete(&models.Medication{}).Error
}
