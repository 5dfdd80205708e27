package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/minder/internal/models"
)

func newMedicationLogServiceForTest(medications ...models.Medication) (*MedicationLogService, *medicationLogRepositoryStub) {
	logs := &medicationLogRepositoryStub{}
	service := NewMedicationLogService(logs, &medicationRepositoryStub{medications: medications}, time.UTC)
	return service, logs
}

func TestRecordOutcomeUpsertsSingleLog(t *testing.T) {
	service, logs := newMedicationLogServiceForTest()
	medicationID := uuid.New()
	morning := time.Date(2026, time.February, 10, 8, 15, 0, 0, time.UTC)
	later := time.Date(2026, time.February, 10, 20, 0, 0, 0, time.UTC)

	input := OutcomeInput{
		MedicationID:   medicationID,
		MedicationName: "Aspirin",
		TimeOfDay:      models.TimeMorning,
		Day:            morning,
		Taken:          true,
		Amount:         75,
		Unit:           models.UnitMilligram,
	}
	if _, err := service.RecordOutcome(input); err != nil {
		t.Fatalf("RecordOutcome() unexpected error: %v", err)
	}

	input.Day = later
	input.Taken = false
	input.MedicationName = "Renamed"
	entry, err := service.RecordOutcome(input)
	if err != nil {
		t.Fatalf("RecordOutcome() second call unexpected error: %v", err)
	}

	if len(logs.entries) != 1 {
		t.Fatalf("expected exactly one log, got %d", len(logs.entries))
	}
	if logs.entries[0].WasTaken {
		t.Fatal("expected last outcome to win")
	}
	if entry.MedicationName != "Aspirin" {
		t.Fatalf("expected name snapshot kept, got %q", entry.MedicationName)
	}
	if !logs.entries[0].Date.Equal(time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected date at start of day, got %s", logs.entries[0].Date)
	}
	if logs.createCalls != 1 || logs.updateCalls != 1 {
		t.Fatalf("expected one create and one update, got %d and %d", logs.createCalls, logs.updateCalls)
	}
}

func TestRecordOutcomeSeparatesDoseIndices(t *testing.T) {
	service, logs := newMedicationLogServiceForTest()
	medicationID := uuid.New()
	day := time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC)

	for _, index := range []int{0, 1} {
		if _, err := service.RecordOutcome(OutcomeInput{MedicationID: medicationID, MedicationName: "Insulin", TimeOfDay: models.TimeMorning, DoseIndex: index, Day: day, Taken: true}); err != nil {
			t.Fatalf("RecordOutcome() unexpected error: %v", err)
		}
	}
	if len(logs.entries) != 2 {
		t.Fatalf("expected two logs for two dose indices, got %d", len(logs.entries))
	}
}

func TestRecordOutcomeReturnsTypedErrors(t *testing.T) {
	day := time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC)
	input := OutcomeInput{MedicationID: uuid.New(), MedicationName: "Aspirin", TimeOfDay: models.TimeMorning, Day: day, Taken: true}

	service, logs := newMedicationLogServiceForTest()
	logs.findErr = errors.New("locked")
	if _, err := service.RecordOutcome(input); !errors.Is(err, ErrLogLoadFailed) {
		t.Fatalf("expected ErrLogLoadFailed, got %v", err)
	}

	service, logs = newMedicationLogServiceForTest()
	logs.createErr = errors.New("locked")
	if _, err := service.RecordOutcome(input); !errors.Is(err, ErrLogCreateFailed) {
		t.Fatalf("expected ErrLogCreateFailed, got %v", err)
	}

	service, logs = newMedicationLogServiceForTest()
	if _, err := service.RecordOutcome(input); err != nil {
		t.Fatalf("RecordOutcome() unexpected error: %v", err)
	}
	logs.updateErr = errors.New("locked")
	if _, err := service.RecordOutcome(input); !errors.Is(err, ErrLogUpdateFailed) {
		t.Fatalf("expected ErrLogUpdateFailed, got %v", err)
	}
}

func TestRecordOutcomeRejectsUnknownSlot(t *testing.T) {
	service, _ := newMedicationLogServiceForTest()
	_, err := service.RecordOutcome(OutcomeInput{MedicationID: uuid.New(), TimeOfDay: "noon", Day: time.Now()})
	if !errors.Is(err, ErrInvalidTimeOfDay) {
		t.Fatalf("expected ErrInvalidTimeOfDay, got %v", err)
	}
}

func TestRecordDoseOutcomeUsesStoredSnapshots(t *testing.T) {
	insulin := multiDoseMedication("Insulin", models.TimeMorning, models.TimeEvening)
	service, logs := newMedicationLogServiceForTest(insulin)
	day := time.Date(2026, time.February, 10, 19, 0, 0, 0, time.UTC)

	entry, err := service.RecordDoseOutcome(insulin.ID, models.TimeEvening, 1, day, true)
	if err != nil {
		t.Fatalf("RecordDoseOutcome() unexpected error: %v", err)
	}
	if entry.MedicationName != "Insulin" || entry.Amount != insulin.Amount || entry.Unit != models.UnitMilliliter {
		t.Fatalf("unexpected snapshot: %+v", entry)
	}
	if len(logs.entries) != 1 {
		t.Fatalf("expected one log, got %d", len(logs.entries))
	}

	if _, err := service.RecordDoseOutcome(insulin.ID, models.TimeMorning, 1, day, true); !errors.Is(err, ErrDoseNotScheduled) {
		t.Fatalf("expected ErrDoseNotScheduled, got %v", err)
	}
	if _, err := service.RecordDoseOutcome(uuid.New(), models.TimeMorning, 0, day, true); !errors.Is(err, ErrMedicationNotFound) {
		t.Fatalf("expected ErrMedicationNotFound, got %v", err)
	}
}

func TestDoseStatusDefaultsToFalseWithoutWriting(t *testing.T) {
	service, logs := newMedicationLogServiceForTest()
	taken, err := service.DoseStatus(uuid.New(), models.TimeNight, 0, time.Now())
	if err != nil {
		t.Fatalf("DoseStatus() unexpected error: %v", err)
	}
	if taken {
		t.Fatal("expected false for missing log")
	}
	if len(logs.entries) != 0 || logs.createCalls != 0 {
		t.Fatal("expected lookup not to create a log")
	}
}

func TestDoseStatusReadsStoredOutcome(t *testing.T) {
	service, _ := newMedicationLogServiceForTest()
	medicationID := uuid.New()
	day := time.Date(2026, time.February, 10, 7, 0, 0, 0, time.UTC)
	if _, err := service.RecordOutcome(OutcomeInput{MedicationID: medicationID, MedicationName: "Aspirin", TimeOfDay: models.TimeMorning, Day: day, Taken: true}); err != nil {
		t.Fatalf("RecordOutcome() unexpected error: %v", err)
	}

	taken, err := service.DoseStatus(medicationID, models.TimeMorning, 0, day.Add(10*time.Hour))
	if err != nil {
		t.Fatalf("DoseStatus() unexpected error: %v", err)
	}
	if !taken {
		t.Fatal("expected stored taken outcome")
	}

	nextDay, err := service.DoseStatus(medicationID, models.TimeMorning, 0, day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("DoseStatus() unexpected error: %v", err)
	}
	if nextDay {
		t.Fatal("expected next day to read as not taken")
	}
}

func TestDoseBoardCombinesScheduleAndLogs(t *testing.T) {
	aspirin := singleDoseMedication("Aspirin", models.TimeMorning)
	insulin := multiDoseMedication("Insulin", models.TimeMorning, models.TimeMorning)
	service, _ := newMedicationLogServiceForTest(aspirin, insulin)
	day := time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC)

	if _, err := service.RecordDoseOutcome(insulin.ID, models.TimeMorning, 1, day, true); err != nil {
		t.Fatalf("RecordDoseOutcome() unexpected error: %v", err)
	}

	board, err := service.DoseBoard(day, models.TimeMorning)
	if err != nil {
		t.Fatalf("DoseBoard() unexpected error: %v", err)
	}
	if len(board) != 3 {
		t.Fatalf("expected three doses, got %d", len(board))
	}
	if board[0].Taken || board[1].Taken || !board[2].Taken {
		t.Fatalf("unexpected taken flags: %+v", board)
	}
	if board[2].Label != "Insulin (2nd)" {
		t.Fatalf("unexpected label %q", board[2].Label)
	}
}
