package services

import (
	"fmt"
	"strings"
	"time"
)

const DayKeyLayout = "2006-01-02"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

func DayKey(value time.Time, location *time.Location) string {
	return DateAtLocation(value, location).Format(DayKeyLayout)
}

func ParseDayKey(raw string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	parsed, err := time.ParseInLocation(DayKeyLayout, strings.TrimSpace(raw), location)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", raw, err)
	}
	return parsed, nil
}

func SameDay(left time.Time, right time.Time, location *time.Location) bool {
	return DayKey(left, location) == DayKey(right, location)
}
