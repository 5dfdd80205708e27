package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/minder/internal/models"
)

var (
	ErrInvalidMealAmount = errors.New("invalid meal amount")
	ErrMealLoadFailed    = errors.New("load meal log failed")
	ErrMealSaveFailed    = errors.New("save meal log failed")
)

type MealLogRepository interface {
	FindByDayRange(dayStart time.Time, dayEnd time.Time) (models.MealLog, bool, error)
	ListByRange(fromStart time.Time, toEnd time.Time) ([]models.MealLog, error)
	Create(entry *models.MealLog) error
	Save(entry *models.MealLog) error
}

type MealDay struct {
	Date      string              `json:"date"`
	Amount    *models.AmountEaten `json:"amount,omitempty"`
	Completed bool                `json:"completed"`
}

type MealService struct {
	logs     MealLogRepository
	location *time.Location
}

func NewMealService(logs MealLogRepository, location *time.Location) *MealService {
	if location == nil {
		location = time.Local
	}
	return &MealService{logs: logs, location: location}
}

// RecordMeal keeps one meal log per day; a second call for the same day
// replaces the amount.
func (service *MealService) RecordMeal(day time.Time, amount models.AmountEaten) (models.MealLog, error) {
	if !amount.Valid() {
		return models.MealLog{}, ErrInvalidMealAmount
	}
	dayStart, dayEnd := DayRange(day, service.location)

	entry, found, err := service.logs.FindByDayRange(dayStart, dayEnd)
	if err != nil {
		return models.MealLog{}, fmt.Errorf("%w: %v", ErrMealLoadFailed, err)
	}
	if found {
		entry.Amount = amount
		if err := service.logs.Save(&entry); err != nil {
			return models.MealLog{}, fmt.Errorf("%w: %v", ErrMealSaveFailed, err)
		}
		return entry, nil
	}

	entry = models.MealLog{Date: dayStart, Amount: amount}
	if err := service.logs.Create(&entry); err != nil {
		return models.MealLog{}, fmt.Errorf("%w: %v", ErrMealSaveFailed, err)
	}
	return entry, nil
}

func (service *MealService) MealForDay(day time.Time) (models.MealLog, bool, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	entry, found, err := service.logs.FindByDayRange(dayStart, dayEnd)
	if err != nil {
		return models.MealLog{}, false, fmt.Errorf("%w: %v", ErrMealLoadFailed, err)
	}
	return entry, found, nil
}

// MealDays returns one entry per calendar day of the span ending today,
// oldest first.
func (service *MealService) MealDays(days int, now time.Time) ([]MealDay, error) {
	if days < 1 {
		days = 1
	}
	today := DateAtLocation(now, service.location)
	first := today.AddDate(0, 0, -(days - 1))
	_, toEnd := DayRange(today, service.location)

	logs, err := service.logs.ListByRange(first, toEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMealLoadFailed, err)
	}
	return BuildMealDays(logs, first, days, service.location), nil
}

// MealWeek is the seven days ending today.
func (service *MealService) MealWeek(now time.Time) ([]MealDay, error) {
	return service.MealDays(7, now)
}

// BuildMealDays lays logs onto consecutive days starting at first. A day is
// completed when its meal log exists and says something was eaten.
func BuildMealDays(logs []models.MealLog, first time.Time, days int, location *time.Location) []MealDay {
	byDay := make(map[string]models.AmountEaten, len(logs))
	for _, entry := range logs {
		byDay[DayKey(entry.Date, location)] = entry.Amount
	}

	result := make([]MealDay, 0, days)
	start := DateAtLocation(first, location)
	for offset := 0; offset < days; offset++ {
		key := start.AddDate(0, 0, offset).Format(DayKeyLayout)
		day := MealDay{Date: key}
		if amount, ok := byDay[key]; ok {
			value := amount
			day.Amount = &value
			day.Completed = amount != models.DidNotEat
		}
		result = append(result, day)
	}
	return result
}
