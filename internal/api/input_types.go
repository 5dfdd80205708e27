package api

import "github.com/terraincognita07/minder/internal/models"

type medicationInput struct {
	Name      string             `json:"name" validate:"required,max=120"`
	DoseCount int                `json:"dose_count" validate:"required,min=1,max=12"`
	Amount    float64            `json:"amount" validate:"gte=0"`
	Unit      models.Unit        `json:"unit" validate:"omitempty,oneof=mg ml"`
	TimeSlots []models.TimeOfDay `json:"time_slots" validate:"required,min=1,dive,oneof=morning afternoon evening night"`
}

type outcomeInput struct {
	MedicationID string           `json:"medication_id" validate:"required,uuid"`
	TimeOfDay    models.TimeOfDay `json:"time_of_day" validate:"required,oneof=morning afternoon evening night"`
	DoseIndex    int              `json:"dose_index" validate:"gte=0"`
	Date         string           `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Taken        *bool            `json:"taken" validate:"required"`
}

type checkInInput struct {
	Emotions  []models.Emotion `json:"emotions" validate:"required,min=1,dive,oneof=calm confused sad agitated anxious tired unknown"`
	Intensity models.Intensity `json:"intensity" validate:"required,oneof=mild moderate strong"`
	Note      string           `json:"note"`
}

type mealInput struct {
	Amount models.AmountEaten `json:"amount" validate:"required,oneof=ate_all ate_half did_not_eat"`
}

type passcodeInput struct {
	Passcode string `json:"passcode" validate:"required"`
}

type doseBoardQuery struct {
	Date      string           `query:"date" validate:"omitempty,datetime=2006-01-02"`
	TimeOfDay models.TimeOfDay `query:"time" validate:"required,oneof=morning afternoon evening night"`
}
