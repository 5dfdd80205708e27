package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Unit string

const (
	UnitMilligram  Unit = "mg"
	UnitMilliliter Unit = "ml"
)

func (unit Unit) Valid() bool {
	return unit == UnitMilligram || unit == UnitMilliliter
}

// Medication keeps a single TimeOfDay while DoseCount is below two and an
// ordered TimeSlots list (one entry per dose) otherwise.
type Medication struct {
	ID        uuid.UUID                      `gorm:"type:text;primaryKey" json:"id"`
	Name      string                         `gorm:"not null" json:"name"`
	DoseCount int                            `gorm:"not null;default:1" json:"dose_count"`
	Amount    float64                        `gorm:"not null;default:0" json:"amount"`
	Unit      Unit                           `gorm:"not null;default:mg" json:"unit"`
	TimeOfDay TimeOfDay                      `gorm:"not null;default:''" json:"time_of_day,omitempty"`
	TimeSlots datatypes.JSONSlice[TimeOfDay] `gorm:"type:text" json:"time_slots"`
	CreatedAt time.Time                      `json:"created_at"`
	UpdatedAt time.Time                      `json:"updated_at"`
}

func (medication *Medication) BeforeCreate(*gorm.DB) error {
	if medication.ID == uuid.Nil {
		medication.ID = uuid.New()
	}
	return nil
}

func (medication Medication) IsMultiDose() bool {
	return medication.DoseCount >= 2
}

// Slots returns the slot of every dose in dose-index order.
func (medication Medication) Slots() []TimeOfDay {
	if !medication.IsMultiDose() {
		if medication.TimeOfDay == "" {
			return []TimeOfDay{}
		}
		return []TimeOfDay{medication.TimeOfDay}
	}
	slots := make([]TimeOfDay, len(medication.TimeSlots))
	copy(slots, medication.TimeSlots)
	return slots
}
