package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/terraincognita07/minder/internal/models"
	"gorm.io/datatypes"
)

var (
	ErrMedicationNotFound     = errors.New("medication not found")
	ErrMedicationLoadFailed   = errors.New("load medication failed")
	ErrMedicationCreateFailed = errors.New("create medication failed")
	ErrMedicationUpdateFailed = errors.New("update medication failed")
	ErrMedicationDeleteFailed = errors.New("delete medication failed")
	ErrDoseIndexOutOfRange    = errors.New("dose index out of range")
)

type MedicationRepository interface {
	List() ([]models.Medication, error)
	FindByID(id uuid.UUID) (models.Medication, bool, error)
	Create(medication *models.Medication) error
	Save(medication *models.Medication) error
	Delete(id uuid.UUID) error
}

type MedicationService struct {
	medications MedicationRepository
}

func NewMedicationService(medications MedicationRepository) *MedicationService {
	return &MedicationService{medications: medications}
}

func (service *MedicationService) ListMedications() ([]models.Medication, error) {
	medications, err := service.medications.List()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMedicationLoadFailed, err)
	}
	return medications, nil
}

func (service *MedicationService) FindMedication(id uuid.UUID) (models.Medication, error) {
	medication, found, err := service.medications.FindByID(id)
	if err != nil {
		return models.Medication{}, fmt.Errorf("%w: %v", ErrMedicationLoadFailed, err)
	}
	if !found {
		return models.Medication{}, ErrMedicationNotFound
	}
	return medication, nil
}

func (service *MedicationService) CreateMedication(input MedicationInput) (models.Medication, error) {
	medication, err := NormalizeMedicationInput(input)
	if err != nil {
		return models.Medication{}, err
	}
	if err := service.medications.Create(&medication); err != nil {
		return models.Medication{}, fmt.Errorf("%w: %v", ErrMedicationCreateFailed, err)
	}
	return medication, nil
}

// DeleteMedication removes the medication only. Its logs stay behind as
// history keyed by the old id.
func (service *MedicationService) DeleteMedication(id uuid.UUID) error {
	if _, err := service.FindMedication(id); err != nil {
		return err
	}
	if err := service.medications.Delete(id); err != nil {
		return fmt.Errorf("%w: %v", ErrMedicationDeleteFailed, err)
	}
	return nil
}

// RemoveDose drops one dose from a medication. It reports deleted=true when
// the medication had no dose left and was removed.
func (service *MedicationService) RemoveDose(id uuid.UUID, doseIndex int) (models.Medication, bool, error) {
	medication, err := service.FindMedication(id)
	if err != nil {
		return models.Medication{}, false, err
	}

	updated, remove, err := WithoutDose(medication, doseIndex)
	if err != nil {
		return models.Medication{}, false, err
	}
	if remove {
		if err := service.medications.Delete(id); err != nil {
			return models.Medication{}, false, fmt.Errorf("%w: %v", ErrMedicationDeleteFailed, err)
		}
		return medication, true, nil
	}

	if err := service.medications.Save(&updated); err != nil {
		return models.Medication{}, false, fmt.Errorf("%w: %v", ErrMedicationUpdateFailed, err)
	}
	return updated, false, nil
}

// WithoutDose returns the medication with the dose at doseIndex removed.
// Later doses shift down by one index; logs already written for them are not
// rewritten. remove is true when nothing would be left.
func WithoutDose(medication models.Medication, doseIndex int) (models.Medication, bool, error) {
	if !medication.IsMultiDose() {
		if doseIndex != 0 {
			return models.Medication{}, false, ErrDoseIndexOutOfRange
		}
		return models.Medication{}, true, nil
	}
	if doseIndex < 0 || doseIndex >= len(medication.TimeSlots) {
		return models.Medication{}, false, ErrDoseIndexOutOfRange
	}

	remaining := make([]models.TimeOfDay, 0, len(medication.TimeSlots)-1)
	remaining = append(remaining, medication.TimeSlots[:doseIndex]...)
	remaining = append(remaining, medication.TimeSlots[doseIndex+1:]...)

	updated := medication
	updated.DoseCount = len(remaining)
	switch len(remaining) {
	case 0:
		return models.Medication{}, true, nil
	case 1:
		updated.TimeOfDay = remaining[0]
		updated.TimeSlots = datatypes.JSONSlice[models.TimeOfDay]{}
	default:
		updated.TimeOfDay = ""
		updated.TimeSlots = datatypes.JSONSlice[models.TimeOfDay](remaining)
	}
	return updated, false, nil
}
