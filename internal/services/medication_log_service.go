package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/minder/internal/models"
)

var (
	ErrLogLoadFailed    = errors.New("load medication log failed")
	ErrLogCreateFailed  = errors.New("create medication log failed")
	ErrLogUpdateFailed  = errors.New("update medication log failed")
	ErrDoseNotScheduled = errors.New("dose not scheduled")
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
)

type MedicationLogRepository interface {
	FindByKeyAndDayRange(medicationID uuid.UUID, timeOfDay models.TimeOfDay, doseIndex int, dayStart time.Time, dayEnd time.Time) (models.MedicationLog, bool, error)
	ListByDayRange(dayStart time.Time, dayEnd time.Time) ([]models.MedicationLog, error)
	ListByRange(fromStart time.Time, toEnd time.Time) ([]models.MedicationLog, error)
	Create(entry *models.MedicationLog) error
	UpdateTaken(entry *models.MedicationLog) error
}

type MedicationLookup interface {
	List() ([]models.Medication, error)
	FindByID(id uuid.UUID) (models.Medication, bool, error)
}

// OutcomeInput identifies one dose on one day. Name, amount and unit are only
// used when the log has to be created.
type OutcomeInput struct {
	MedicationID   uuid.UUID
	MedicationName string
	TimeOfDay      models.TimeOfDay
	DoseIndex      int
	Day            time.Time
	Taken          bool
	Amount         float64
	Unit           models.Unit
}

type DoseStatusEntry struct {
	DoseEntry
	Taken bool `json:"taken"`
}

type MedicationLogService struct {
	logs        MedicationLogRepository
	medications MedicationLookup
	location    *time.Location
}

func NewMedicationLogService(logs MedicationLogRepository, medications MedicationLookup, location *time.Location) *MedicationLogService {
	if location == nil {
		location = time.Local
	}
	return &MedicationLogService{
		logs:        logs,
		medications: medications,
		location:    location,
	}
}

func (service *MedicationLogService) Location() *time.Location {
	return service.location
}

// RecordOutcome upserts the log for one dose on one day. An existing log only
// has its taken flag overwritten; snapshots stay as first recorded.
func (service *MedicationLogService) RecordOutcome(input OutcomeInput) (models.MedicationLog, error) {
	if !input.TimeOfDay.Valid() {
		return models.MedicationLog{}, ErrInvalidTimeOfDay
	}
	dayStart, dayEnd := DayRange(input.Day, service.location)

	entry, found, err := service.logs.FindByKeyAndDayRange(input.MedicationID, input.TimeOfDay, input.DoseIndex, dayStart, dayEnd)
	if err != nil {
		log.Printf("medication log lookup failed for %s on %s: %v", input.MedicationID, dayStart.Format(DayKeyLayout), err)
		return models.MedicationLog{}, fmt.Errorf("%w: %v", ErrLogLoadFailed, err)
	}

	if found {
		entry.WasTaken = input.Taken
		if err := service.logs.UpdateTaken(&entry); err != nil {
			log.Printf("medication log update failed for %s on %s: %v", input.MedicationID, dayStart.Format(DayKeyLayout), err)
			return models.MedicationLog{}, fmt.Errorf("%w: %v", ErrLogUpdateFailed, err)
		}
		return entry, nil
	}

	unit := input.Unit
	if unit == "" {
		unit = models.UnitMilligram
	}
	entry = models.MedicationLog{
		MedicationID:   input.MedicationID,
		MedicationName: strings.TrimSpace(input.MedicationName),
		TimeOfDay:      input.TimeOfDay,
		DoseIndex:      input.DoseIndex,
		Amount:         input.Amount,
		Unit:           unit,
		WasTaken:       input.Taken,
		Date:           dayStart,
	}
	if err := service.logs.Create(&entry); err != nil {
		log.Printf("medication log create failed for %s on %s: %v", input.MedicationID, dayStart.Format(DayKeyLayout), err)
		return models.MedicationLog{}, fmt.Errorf("%w: %v", ErrLogCreateFailed, err)
	}
	return entry, nil
}

// RecordDoseOutcome resolves the snapshots from the stored medication and
// refuses doses the medication does not schedule.
func (service *MedicationLogService) RecordDoseOutcome(medicationID uuid.UUID, slot models.TimeOfDay, doseIndex int, day time.Time, taken bool) (models.MedicationLog, error) {
	medication, found, err := service.medications.FindByID(medicationID)
	if err != nil {
		return models.MedicationLog{}, fmt.Errorf("%w: %v", ErrMedicationLoadFailed, err)
	}
	if !found {
		return models.MedicationLog{}, ErrMedicationNotFound
	}

	dose, ok := FindDose(medication, slot, doseIndex)
	if !ok {
		return models.MedicationLog{}, ErrDoseNotScheduled
	}

	return service.RecordOutcome(OutcomeInput{
		MedicationID:   medication.ID,
		MedicationName: medication.Name,
		TimeOfDay:      dose.TimeOfDay,
		DoseIndex:      dose.DoseIndex,
		Day:            day,
		Taken:          taken,
		Amount:         medication.Amount,
		Unit:           medication.Unit,
	})
}

// DoseStatus reports whether the dose was taken on day. A missing log reads
// as not taken and nothing is written.
func (service *MedicationLogService) DoseStatus(medicationID uuid.UUID, slot models.TimeOfDay, doseIndex int, day time.Time) (bool, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	entry, found, err := service.logs.FindByKeyAndDayRange(medicationID, slot, doseIndex, dayStart, dayEnd)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrLogLoadFailed, err)
	}
	if !found {
		return false, nil
	}
	return entry.WasTaken, nil
}

// DoseBoard lists the doses due at slot together with their status on day.
func (service *MedicationLogService) DoseBoard(day time.Time, slot models.TimeOfDay) ([]DoseStatusEntry, error) {
	if !slot.Valid() {
		return nil, ErrInvalidTimeOfDay
	}
	medications, err := service.medications.List()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMedicationLoadFailed, err)
	}

	dayStart, dayEnd := DayRange(day, service.location)
	logs, err := service.logs.ListByDayRange(dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLogLoadFailed, err)
	}
	taken := make(map[doseKey]bool, len(logs))
	for _, entry := range logs {
		taken[doseKey{medicationID: entry.MedicationID, slot: entry.TimeOfDay, doseIndex: entry.DoseIndex}] = entry.WasTaken
	}

	doses := DosesDueAt(medications, slot)
	board := make([]DoseStatusEntry, 0, len(doses))
	for _, dose := range doses {
		board = append(board, DoseStatusEntry{
			DoseEntry: dose,
			Taken:     taken[doseKey{medicationID: dose.MedicationID, slot: dose.TimeOfDay, doseIndex: dose.DoseIndex}],
		})
	}
	return board, nil
}

func (service *MedicationLogService) LogsForDay(day time.Time) ([]models.MedicationLog, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	logs, err := service.logs.ListByDayRange(dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLogLoadFailed, err)
	}
	return logs, nil
}

type doseKey struct {
	medicationID uuid.UUID
	slot         models.TimeOfDay
	doseIndex    int
}
