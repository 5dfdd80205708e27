package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MedicationLog records whether one dose was taken on one calendar day. Name,
// amount and unit are snapshots taken when the log was created.
type MedicationLog struct {
	ID             uuid.UUID `gorm:"type:text;primaryKey" json:"id"`
	MedicationID   uuid.UUID `gorm:"type:text;not null;uniqueIndex:uidx_medication_log_key" json:"medication_id"`
	MedicationName string    `gorm:"not null" json:"medication_name"`
	TimeOfDay      TimeOfDay `gorm:"not null;uniqueIndex:uidx_medication_log_key" json:"time_of_day"`
	DoseIndex      int       `gorm:"not null;default:0;uniqueIndex:uidx_medication_log_key" json:"dose_index"`
	Amount         float64   `gorm:"not null;default:0" json:"amount"`
	Unit           Unit      `gorm:"not null;default:mg" json:"unit"`
	WasTaken       bool      `gorm:"not null;default:false" json:"was_taken"`
	Date           time.Time `gorm:"not null;uniqueIndex:uidx_medication_log_key" json:"date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (entry *MedicationLog) BeforeCreate(*gorm.DB) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	return nil
}
