package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/terraincognita07/minder/internal/models"
)

const summaryRangeLayout = "2 Jan 2006"

type MedicationTally struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type MedicationSection struct {
	TimeOfDay models.TimeOfDay  `json:"time_of_day"`
	Icon      string            `json:"icon"`
	Items     []MedicationTally `json:"items"`
}

// CareOverview is everything the summary screen shows for one period.
type CareOverview struct {
	Period      models.SummaryPeriod `json:"period"`
	From        string               `json:"from"`
	To          string               `json:"to"`
	RangeLabel  string               `json:"range_label"`
	Emotions    []EmotionCount       `json:"emotions"`
	Meals       []MealDay            `json:"meals"`
	Medications []MedicationSection  `json:"medications"`
}

type SummaryService struct {
	emotions       EmotionLogRepository
	meals          MealLogRepository
	medicationLogs MedicationLogRepository
	location       *time.Location
}

func NewSummaryService(emotions EmotionLogRepository, meals MealLogRepository, medicationLogs MedicationLogRepository, location *time.Location) *SummaryService {
	if location == nil {
		location = time.Local
	}
	return &SummaryService{
		emotions:       emotions,
		meals:          meals,
		medicationLogs: medicationLogs,
		location:       location,
	}
}

// Build assembles the overview. Day-keyed records cover period.Days() days
// ending today; emotions use EmotionWindowStart.
func (service *SummaryService) Build(period models.SummaryPeriod, now time.Time) (CareOverview, error) {
	if !period.Valid() {
		return CareOverview{}, ErrInvalidPeriod
	}

	today := DateAtLocation(now, service.location)
	first := today.AddDate(0, 0, -(period.Days() - 1))
	_, toEnd := DayRange(today, service.location)

	emotionLogs, err := service.emotions.ListSince(EmotionWindowStart(period, now, service.location))
	if err != nil {
		return CareOverview{}, fmt.Errorf("%w: %v", ErrEmotionLoadFailed, err)
	}
	mealLogs, err := service.meals.ListByRange(first, toEnd)
	if err != nil {
		return CareOverview{}, fmt.Errorf("%w: %v", ErrMealLoadFailed, err)
	}
	medicationLogs, err := service.medicationLogs.ListByRange(first, toEnd)
	if err != nil {
		return CareOverview{}, fmt.Errorf("%w: %v", ErrLogLoadFailed, err)
	}

	return CareOverview{
		Period:      period,
		From:        first.Format(DayKeyLayout),
		To:          today.Format(DayKeyLayout),
		RangeLabel:  fmt.Sprintf("%s - %s", first.Format(summaryRangeLayout), today.Format(summaryRangeLayout)),
		Emotions:    CountEmotions(emotionLogs, period, now, service.location),
		Meals:       BuildMealDays(mealLogs, first, period.Days(), service.location),
		Medications: MedicationSections(medicationLogs),
	}, nil
}

// MedicationSections counts taken doses per slot and medication name. Slots
// without a taken dose are left out; items sort by count, then name.
func MedicationSections(logs []models.MedicationLog) []MedicationSection {
	counts := make(map[models.TimeOfDay]map[string]int)
	for _, entry := range logs {
		if !entry.WasTaken {
			continue
		}
		if counts[entry.TimeOfDay] == nil {
			counts[entry.TimeOfDay] = make(map[string]int)
		}
		counts[entry.TimeOfDay][entry.MedicationName]++
	}

	sections := make([]MedicationSection, 0, len(counts))
	for _, slot := range models.AllTimesOfDay() {
		byName, ok := counts[slot]
		if !ok {
			continue
		}
		items := make([]MedicationTally, 0, len(byName))
		for name, count := range byName {
			items = append(items, MedicationTally{Name: name, Count: count})
		}
		sort.Slice(items, func(i, j int) bool {
			if items[i].Count == items[j].Count {
				return items[i].Name < items[j].Name
			}
			return items[i].Count > items[j].Count
		})
		sections = append(sections, MedicationSection{TimeOfDay: slot, Icon: slot.Icon(), Items: items})
	}
	return sections
}
