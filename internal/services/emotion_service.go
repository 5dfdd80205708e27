package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/terraincognita07/minder/internal/models"
	"gorm.io/datatypes"
)

const MaxEmotionNoteLength = 500

var (
	ErrEmotionsRequired    = errors.New("at least one emotion is required")
	ErrInvalidEmotion      = errors.New("invalid emotion")
	ErrInvalidIntensity    = errors.New("invalid intensity")
	ErrInvalidPeriod       = errors.New("invalid summary period")
	ErrEmotionLoadFailed   = errors.New("load emotion logs failed")
	ErrEmotionCreateFailed = errors.New("create emotion log failed")
)

type EmotionLogRepository interface {
	Create(entry *models.EmotionLog) error
	ListSince(from time.Time) ([]models.EmotionLog, error)
}

type CheckInInput struct {
	Emotions  []models.Emotion
	Intensity models.Intensity
	Note      string
	At        time.Time
}

type EmotionCount struct {
	Emotion models.Emotion `json:"emotion"`
	Count   int            `json:"count"`
}

type EmotionService struct {
	logs     EmotionLogRepository
	location *time.Location
}

func NewEmotionService(logs EmotionLogRepository, location *time.Location) *EmotionService {
	if location == nil {
		location = time.Local
	}
	return &EmotionService{logs: logs, location: location}
}

// CheckIn stores one immutable check-in. Repeated emotions collapse to one and
// the note is trimmed to MaxEmotionNoteLength characters.
func (service *EmotionService) CheckIn(input CheckInInput) (models.EmotionLog, error) {
	if len(input.Emotions) == 0 {
		return models.EmotionLog{}, ErrEmotionsRequired
	}
	emotions := make(datatypes.JSONSlice[models.Emotion], 0, len(input.Emotions))
	seen := make(map[models.Emotion]struct{}, len(input.Emotions))
	for _, emotion := range input.Emotions {
		if !emotion.Valid() {
			return models.EmotionLog{}, ErrInvalidEmotion
		}
		if _, ok := seen[emotion]; ok {
			continue
		}
		seen[emotion] = struct{}{}
		emotions = append(emotions, emotion)
	}
	if !input.Intensity.Valid() {
		return models.EmotionLog{}, ErrInvalidIntensity
	}

	at := input.At
	if at.IsZero() {
		at = time.Now()
	}
	entry := models.EmotionLog{
		Timestamp: at.UTC(),
		Emotions:  emotions,
		Intensity: input.Intensity,
		Note:      normalizeNote(input.Note),
	}
	if err := service.logs.Create(&entry); err != nil {
		return models.EmotionLog{}, fmt.Errorf("%w: %v", ErrEmotionCreateFailed, err)
	}
	return entry, nil
}

func (service *EmotionService) Recent(period models.SummaryPeriod, now time.Time) ([]models.EmotionLog, error) {
	if !period.Valid() {
		return nil, ErrInvalidPeriod
	}
	from := EmotionWindowStart(period, now, service.location)
	logs, err := service.logs.ListSince(from)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmotionLoadFailed, err)
	}
	return filterEmotionWindow(logs, period, now, service.location), nil
}

func (service *EmotionService) Counts(period models.SummaryPeriod, now time.Time) ([]EmotionCount, error) {
	logs, err := service.Recent(period, now)
	if err != nil {
		return nil, err
	}
	return CountEmotions(logs, period, now, service.location), nil
}

// EmotionWindowStart is the earliest timestamp a period includes: the start of
// today, now minus seven days, or now minus one month.
func EmotionWindowStart(period models.SummaryPeriod, now time.Time, location *time.Location) time.Time {
	switch period {
	case models.PeriodWeekly:
		return now.AddDate(0, 0, -7)
	case models.PeriodMonthly:
		return now.AddDate(0, -1, 0)
	default:
		return DateAtLocation(now, location)
	}
}

// CountEmotions counts every emotion of the check-ins inside the period window.
// Higher counts come first; equal counts keep the order of models.AllEmotions.
func CountEmotions(logs []models.EmotionLog, period models.SummaryPeriod, now time.Time, location *time.Location) []EmotionCount {
	counts := make(map[models.Emotion]int)
	for _, entry := range filterEmotionWindow(logs, period, now, location) {
		for _, emotion := range entry.Emotions {
			counts[emotion]++
		}
	}

	result := make([]EmotionCount, 0, len(counts))
	for _, emotion := range models.AllEmotions() {
		if count := counts[emotion]; count > 0 {
			result = append(result, EmotionCount{Emotion: emotion, Count: count})
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

func filterEmotionWindow(logs []models.EmotionLog, period models.SummaryPeriod, now time.Time, location *time.Location) []models.EmotionLog {
	filtered := make([]models.EmotionLog, 0, len(logs))
	from := EmotionWindowStart(period, now, location)
	for _, entry := range logs {
		if period == models.PeriodDaily {
			if SameDay(entry.Timestamp, now, location) {
				filtered = append(filtered, entry)
			}
			continue
		}
		if !entry.Timestamp.Before(from) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

func normalizeNote(raw string) *string {
	note := strings.TrimSpace(raw)
	if note == "" {
		return nil
	}
	if utf8.RuneCountInString(note) > MaxEmotionNoteLength {
		note = strings.TrimSpace(string([]rune(note)[:MaxEmotionNoteLength]))
	}
	return &note
}
