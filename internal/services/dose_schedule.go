package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/minder/internal/models"
)

// DoseEntry is one concrete dose of a medication. DoseIndex is the position of
// the dose in the medication's schedule and tells apart doses that share a slot.
type DoseEntry struct {
	MedicationID uuid.UUID        `json:"medication_id"`
	Name         string           `json:"name"`
	Label        string           `json:"label"`
	TimeOfDay    models.TimeOfDay `json:"time_of_day"`
	DoseIndex    int              `json:"dose_index"`
	Amount       float64          `json:"amount"`
	Unit         models.Unit      `json:"unit"`
}

// DosesDueAt lists the doses scheduled for slot, medication by medication,
// keeping each medication's schedule order.
func DosesDueAt(medications []models.Medication, slot models.TimeOfDay) []DoseEntry {
	entries := make([]DoseEntry, 0)
	for _, medication := range medications {
		for _, entry := range medicationDoses(medication) {
			if entry.TimeOfDay == slot {
				entries = append(entries, entry)
			}
		}
	}
	return entries
}

// AllDoses lists every scheduled dose regardless of slot.
func AllDoses(medications []models.Medication) []DoseEntry {
	entries := make([]DoseEntry, 0)
	for _, medication := range medications {
		entries = append(entries, medicationDoses(medication)...)
	}
	return entries
}

func FindDose(medication models.Medication, slot models.TimeOfDay, doseIndex int) (DoseEntry, bool) {
	for _, entry := range medicationDoses(medication) {
		if entry.DoseIndex == doseIndex && entry.TimeOfDay == slot {
			return entry, true
		}
	}
	return DoseEntry{}, false
}

func medicationDoses(medication models.Medication) []DoseEntry {
	slots := medication.Slots()
	entries := make([]DoseEntry, 0, len(slots))
	for index, slot := range slots {
		entries = append(entries, DoseEntry{
			MedicationID: medication.ID,
			Name:         medication.Name,
			Label:        doseLabel(medication, slots, index),
			TimeOfDay:    slot,
			DoseIndex:    index,
			Amount:       medication.Amount,
			Unit:         medication.Unit,
		})
	}
	return entries
}

func doseLabel(medication models.Medication, slots []models.TimeOfDay, index int) string {
	if !medication.IsMultiDose() {
		return medication.Name
	}

	slot := slots[index]
	total := 0
	position := 0
	for candidateIndex, candidate := range slots {
		if candidate != slot {
			continue
		}
		total++
		if candidateIndex <= index {
			position++
		}
	}
	if total < 2 {
		return medication.Name
	}
	return fmt.Sprintf("%s (%s)", medication.Name, Ordinal(position))
}

// Ordinal renders 1 as "1st", 2 as "2nd", 11 as "11th" and so on.
func Ordinal(value int) string {
	suffix := "th"
	switch value % 100 {
	case 11, 12, 13:
	default:
		switch value % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", value, suffix)
}

// CurrentTimeOfDay maps a wall-clock time onto a slot: before noon is morning,
// until five afternoon, until ten evening, night otherwise.
func CurrentTimeOfDay(now time.Time) models.TimeOfDay {
	switch hour := now.Hour(); {
	case hour < 12:
		return models.TimeMorning
	case hour < 17:
		return models.TimeAfternoon
	case hour < 22:
		return models.TimeEvening
	default:
		return models.TimeNight
	}
}
