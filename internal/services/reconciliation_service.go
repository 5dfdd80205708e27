package services

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/terraincognita07/minder/internal/models"
)

const MaxBackfillDays = 31

var (
	ErrReconcileLoadFailed   = errors.New("load reconciliation state failed")
	ErrReconcileSaveFailed   = errors.New("save reconciliation failed")
	ErrUnknownBackfillPolicy = errors.New("unknown backfill policy")
)

// BackfillPolicy picks the days that get missing doses recorded as not taken.
// last is the zero time when no reconciliation has ever run.
type BackfillPolicy func(last time.Time, today time.Time) []time.Time

// PreviousDayOnly backfills yesterday and nothing else, however long the app
// stayed closed.
func PreviousDayOnly(_ time.Time, today time.Time) []time.Time {
	return []time.Time{today.AddDate(0, 0, -1)}
}

// AllMissedDays backfills every day from the last reconciled day up to
// yesterday, keeping at most the latest MaxBackfillDays.
func AllMissedDays(last time.Time, today time.Time) []time.Time {
	yesterday := today.AddDate(0, 0, -1)
	if last.IsZero() || !last.Before(today) {
		return []time.Time{yesterday}
	}

	first := last
	if limit := today.AddDate(0, 0, -MaxBackfillDays); first.Before(limit) {
		first = limit
	}
	days := make([]time.Time, 0)
	for day := first; day.Before(today); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}

func BackfillPolicyByName(name string) (BackfillPolicy, error) {
	switch name {
	case "", "previous_day":
		return PreviousDayOnly, nil
	case "all_missed":
		return AllMissedDays, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackfillPolicy, name)
	}
}

type ReconciliationLogRepository interface {
	ListByRange(fromStart time.Time, toEnd time.Time) ([]models.MedicationLog, error)
	BackfillLogs(entries []models.MedicationLog, marker models.AppSetting) (int64, error)
}

type SettingReader interface {
	Get(key string) (string, bool, error)
}

type MedicationLister interface {
	List() ([]models.Medication, error)
}

type ReconcileResult struct {
	Ran     bool     `json:"ran"`
	Days    []string `json:"days"`
	Created int64    `json:"created"`
}

type ReconciliationService struct {
	logs        ReconciliationLogRepository
	settings    SettingReader
	medications MedicationLister
	policy      BackfillPolicy
	location    *time.Location

	mu sync.Mutex
}

func NewReconciliationService(logs ReconciliationLogRepository, settings SettingReader, medications MedicationLister, policy BackfillPolicy, location *time.Location) *ReconciliationService {
	if policy == nil {
		policy = PreviousDayOnly
	}
	if location == nil {
		location = time.Local
	}
	return &ReconciliationService{
		logs:        logs,
		settings:    settings,
		medications: medications,
		policy:      policy,
		location:    location,
	}
}

// RunIfNeeded runs at most once per calendar day. Doses without a log on the
// policy's days get a not-taken log, then the marker moves to today.
func (service *ReconciliationService) RunIfNeeded(now time.Time) (ReconcileResult, error) {
	service.mu.Lock()
	defer service.mu.Unlock()

	today := DateAtLocation(now, service.location)
	todayKey := today.Format(DayKeyLayout)

	raw, found, err := service.settings.Get(models.SettingLastReconciledDay)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("%w: %v", ErrReconcileLoadFailed, err)
	}
	if found && raw == todayKey {
		return ReconcileResult{Ran: false, Days: []string{}}, nil
	}

	var last time.Time
	if found {
		parsed, parseErr := ParseDayKey(raw, service.location)
		if parseErr != nil {
			log.Printf("ignoring malformed %s marker %q: %v", models.SettingLastReconciledDay, raw, parseErr)
		} else {
			last = parsed
		}
	}

	medications, err := service.medications.List()
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("%w: %v", ErrReconcileLoadFailed, err)
	}

	days := service.policy(last, today)
	entries, err := service.missingEntries(medications, days)
	if err != nil {
		return ReconcileResult{}, err
	}

	marker := models.AppSetting{Key: models.SettingLastReconciledDay, Value: todayKey}
	created, err := service.logs.BackfillLogs(entries, marker)
	if err != nil {
		log.Printf("reconciliation for %s failed: %v", todayKey, err)
		return ReconcileResult{}, fmt.Errorf("%w: %v", ErrReconcileSaveFailed, err)
	}

	result := ReconcileResult{Ran: true, Days: make([]string, 0, len(days)), Created: created}
	for _, day := range days {
		result.Days = append(result.Days, DayKey(day, service.location))
	}
	return result, nil
}

func (service *ReconciliationService) missingEntries(medications []models.Medication, days []time.Time) ([]models.MedicationLog, error) {
	entries := make([]models.MedicationLog, 0)
	if len(days) == 0 {
		return entries, nil
	}
	doses := AllDoses(medications)
	if len(doses) == 0 {
		return entries, nil
	}

	from, to := days[0], days[0]
	for _, day := range days[1:] {
		if day.Before(from) {
			from = day
		}
		if day.After(to) {
			to = day
		}
	}
	fromStart, _ := DayRange(from, service.location)
	_, toEnd := DayRange(to, service.location)

	existing, err := service.logs.ListByRange(fromStart, toEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReconcileLoadFailed, err)
	}
	logged := make(map[string]map[doseKey]struct{})
	for _, entry := range existing {
		key := DayKey(entry.Date, service.location)
		if logged[key] == nil {
			logged[key] = make(map[doseKey]struct{})
		}
		logged[key][doseKey{medicationID: entry.MedicationID, slot: entry.TimeOfDay, doseIndex: entry.DoseIndex}] = struct{}{}
	}

	for _, day := range days {
		dayStart := DateAtLocation(day, service.location)
		onDay := logged[dayStart.Format(DayKeyLayout)]
		for _, dose := range doses {
			if _, ok := onDay[doseKey{medicationID: dose.MedicationID, slot: dose.TimeOfDay, doseIndex: dose.DoseIndex}]; ok {
				continue
			}
			entries = append(entries, models.MedicationLog{
				MedicationID:   dose.MedicationID,
				MedicationName: dose.Name,
				TimeOfDay:      dose.TimeOfDay,
				DoseIndex:      dose.DoseIndex,
				Amount:         dose.Amount,
				Unit:           dose.Unit,
				WasTaken:       false,
				Date:           dayStart,
			})
		}
	}
	return entries, nil
}
