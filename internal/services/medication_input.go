package services

import (
	"errors"
	"math"
	"strings"

	"github.com/terraincognita07/minder/internal/models"
	"gorm.io/datatypes"
)

const (
	MaxMedicationNameLength = 120
	MaxDoseCount            = 12
)

var (
	ErrInvalidMedicationName = errors.New("invalid medication name")
	ErrInvalidDoseCount      = errors.New("invalid dose count")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidUnit           = errors.New("invalid unit")
	ErrInvalidTimeSlots      = errors.New("invalid time slots")
)

// MedicationInput carries one slot per dose. A single-dose medication passes
// exactly one slot.
type MedicationInput struct {
	Name      string
	DoseCount int
	Amount    float64
	Unit      models.Unit
	TimeSlots []models.TimeOfDay
}

func NormalizeMedicationInput(input MedicationInput) (models.Medication, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > MaxMedicationNameLength {
		return models.Medication{}, ErrInvalidMedicationName
	}
	if input.DoseCount < 1 || input.DoseCount > MaxDoseCount {
		return models.Medication{}, ErrInvalidDoseCount
	}
	if input.Amount < 0 || math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) {
		return models.Medication{}, ErrInvalidAmount
	}

	unit := models.Unit(strings.ToLower(strings.TrimSpace(string(input.Unit))))
	if unit == "" {
		unit = models.UnitMilligram
	}
	if !unit.Valid() {
		return models.Medication{}, ErrInvalidUnit
	}

	if len(input.TimeSlots) != input.DoseCount {
		return models.Medication{}, ErrInvalidTimeSlots
	}
	for _, slot := range input.TimeSlots {
		if !slot.Valid() {
			return models.Medication{}, ErrInvalidTimeSlots
		}
	}

	medication := models.Medication{
		Name:      name,
		DoseCount: input.DoseCount,
		Amount:    input.Amount,
		Unit:      unit,
		TimeSlots: datatypes.JSONSlice[models.TimeOfDay]{},
	}
	if input.DoseCount < 2 {
		medication.TimeOfDay = input.TimeSlots[0]
		return medication, nil
	}
	medication.TimeSlots = append(medication.TimeSlots, input.TimeSlots...)
	return medication, nil
}
