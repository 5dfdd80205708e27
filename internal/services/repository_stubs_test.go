package services

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/minder/internal/models"
)

type medicationRepositoryStub struct {
	medications []models.Medication
	listErr     error
	findErr     error
	createErr   error
	saveErr     error
	deleteErr   error
	deletedIDs  []uuid.UUID
	saveCalls   int
}

func (stub *medicationRepositoryStub) List() ([]models.Medication, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	result := make([]models.Medication, len(stub.medications))
	copy(result, stub.medications)
	return result, nil
}

func (stub *medicationRepositoryStub) FindByID(id uuid.UUID) (models.Medication, bool, error) {
	if stub.findErr != nil {
		return models.Medication{}, false, stub.findErr
	}
	for _, medication := range stub.medications {
		if medication.ID == id {
			return medication, true, nil
		}
	}
	return models.Medication{}, false, nil
}

func (stub *medicationRepositoryStub) Create(medication *models.Medication) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	if medication.ID == uuid.Nil {
		medication.ID = uuid.New()
	}
	stub.medications = append(stub.medications, *medication)
	return nil
}

func (stub *medicationRepositoryStub) Save(medication *models.Medication) error {
	stub.saveCalls++
	if stub.saveErr != nil {
		return stub.saveErr
	}
	for index := range stub.medications {
		if stub.medications[index].ID == medication.ID {
			stub.medications[index] = *medication
			return nil
		}
	}
	stub.medications = append(stub.medications, *medication)
	return nil
}

func (stub *medicationRepositoryStub) Delete(id uuid.UUID) error {
	if stub.deleteErr != nil {
		return stub.deleteErr
	}
	stub.deletedIDs = append(stub.deletedIDs, id)
	kept := stub.medications[:0]
	for _, medication := range stub.medications {
		if medication.ID != id {
			kept = append(kept, medication)
		}
	}
	stub.medications = kept
	return nil
}

type medicationLogRepositoryStub struct {
	entries      []models.MedicationLog
	findErr      error
	listErr      error
	createErr    error
	updateErr    error
	backfillErr  error
	createCalls  int
	updateCalls  int
	backfills    [][]models.MedicationLog
	savedMarkers []models.AppSetting
	settings     *settingRepositoryStub
}

func (stub *medicationLogRepositoryStub) FindByKeyAndDayRange(medicationID uuid.UUID, timeOfDay models.TimeOfDay, doseIndex int, dayStart time.Time, dayEnd time.Time) (models.MedicationLog, bool, error) {
	if stub.findErr != nil {
		return models.MedicationLog{}, false, stub.findErr
	}
	for _, entry := range stub.entries {
		if entry.MedicationID == medicationID && entry.TimeOfDay == timeOfDay && entry.DoseIndex == doseIndex &&
			!entry.Date.Before(dayStart) && entry.Date.Before(dayEnd) {
			return entry, true, nil
		}
	}
	return models.MedicationLog{}, false, nil
}

func (stub *medicationLogRepositoryStub) ListByDayRange(dayStart time.Time, dayEnd time.Time) ([]models.MedicationLog, error) {
	return stub.ListByRange(dayStart, dayEnd)
}

func (stub *medicationLogRepositoryStub) ListByRange(fromStart time.Time, toEnd time.Time) ([]models.MedicationLog, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	logs := make([]models.MedicationLog, 0)
	for _, entry := range stub.entries {
		if !entry.Date.Before(fromStart) && entry.Date.Before(toEnd) {
			logs = append(logs, entry)
		}
	}
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Date.Before(logs[j].Date)
	})
	return logs, nil
}

func (stub *medicationLogRepositoryStub) Create(entry *models.MedicationLog) error {
	stub.createCalls++
	if stub.createErr != nil {
		return stub.createErr
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	stub.entries = append(stub.entries, *entry)
	return nil
}

func (stub *medicationLogRepositoryStub) UpdateTaken(entry *models.MedicationLog) error {
	stub.updateCalls++
	if stub.updateErr != nil {
		return stub.updateErr
	}
	for index := range stub.entries {
		if stub.entries[index].ID == entry.ID {
			stub.entries[index].WasTaken = entry.WasTaken
			return nil
		}
	}
	return nil
}

func (stub *medicationLogRepositoryStub) BackfillLogs(entries []models.MedicationLog, marker models.AppSetting) (int64, error) {
	if stub.backfillErr != nil {
		return 0, stub.backfillErr
	}
	batch := make([]models.MedicationLog, len(entries))
	copy(batch, entries)
	stub.backfills = append(stub.backfills, batch)
	for _, entry := range entries {
		if entry.ID == uuid.Nil {
			entry.ID = uuid.New()
		}
		stub.entries = append(stub.entries, entry)
	}
	stub.savedMarkers = append(stub.savedMarkers, marker)
	if stub.settings != nil {
		stub.settings.values[marker.Key] = marker.Value
	}
	return int64(len(entries)), nil
}

type settingRepositoryStub struct {
	values    map[string]string
	getErr    error
	setErr    error
	deleteErr error
}

func newSettingRepositoryStub() *settingRepositoryStub {
	return &settingRepositoryStub{values: make(map[string]string)}
}

func (stub *settingRepositoryStub) Get(key string) (string, bool, error) {
	if stub.getErr != nil {
		return "", false, stub.getErr
	}
	value, ok := stub.values[key]
	return value, ok, nil
}

func (stub *settingRepositoryStub) Set(key string, value string) error {
	if stub.setErr != nil {
		return stub.setErr
	}
	stub.values[key] = value
	return nil
}

func (stub *settingRepositoryStub) Delete(key string) error {
	if stub.deleteErr != nil {
		return stub.deleteErr
	}
	delete(stub.values, key)
	return nil
}

type emotionLogRepositoryStub struct {
	entries   []models.EmotionLog
	createErr error
	listErr   error
}

func (stub *emotionLogRepositoryStub) Create(entry *models.EmotionLog) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	stub.entries = append(stub.entries, *entry)
	return nil
}

func (stub *emotionLogRepositoryStub) ListSince(from time.Time) ([]models.EmotionLog, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	logs := make([]models.EmotionLog, 0)
	for _, entry := range stub.entries {
		if !entry.Timestamp.Before(from) {
			logs = append(logs, entry)
		}
	}
	return logs, nil
}

type mealLogRepositoryStub struct {
	entries   []models.MealLog
	findErr   error
	createErr error
	saveErr   error
}

func (stub *mealLogRepositoryStub) FindByDayRange(dayStart time.Time, dayEnd time.Time) (models.MealLog, bool, error) {
	if stub.findErr != nil {
		return models.MealLog{}, false, stub.findErr
	}
	for _, entry := range stub.entries {
		if !entry.Date.Before(dayStart) && entry.Date.Before(dayEnd) {
			return entry, true, nil
		}
	}
	return models.MealLog{}, false, nil
}

func (stub *mealLogRepositoryStub) ListByRange(fromStart time.Time, toEnd time.Time) ([]models.MealLog, error) {
	logs := make([]models.MealLog, 0)
	for _, entry := range stub.entries {
		if !entry.Date.Before(fromStart) && entry.Date.Before(toEnd) {
			logs = append(logs, entry)
		}
	}
	return logs, nil
}

func (stub *mealLogRepositoryStub) Create(entry *models.MealLog) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	stub.entries = append(stub.entries, *entry)
	return nil
}

func (stub *mealLogRepositoryStub) Save(entry *models.MealLog) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	for index := range stub.entries {
		if stub.entries[index].ID == entry.ID {
			stub.entries[index] = *entry
			return nil
		}
	}
	return nil
}

func singleDoseMedication(name string, slot models.TimeOfDay) models.Medication {
	return models.Medication{
		ID:        uuid.New(),
		Name:      name,
		DoseCount: 1,
		Amount:    5,
		Unit:      models.UnitMilligram,
		TimeOfDay: slot,
	}
}

func multiDoseMedication(name string, slots ...models.TimeOfDay) models.Medication {
	return models.Medication{
		ID:        uuid.New(),
		Name:      name,
		DoseCount: len(slots),
		Amount:    2.5,
		Unit:      models.UnitMilliliter,
		TimeSlots: slots,
	}
}
