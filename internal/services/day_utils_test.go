package services

import (
	"testing"
	"time"
)

func TestDayRangeNormalizesToLocationMidnight(t *testing.T) {
	location, err := time.LoadLocation("Asia/Riyadh")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	raw := time.Date(2026, 2, 1, 22, 35, 10, 0, time.UTC)
	start, end := DayRange(raw, location)

	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Fatalf("expected midnight start, got %s", start.Format(time.RFC3339))
	}
	if start.Day() != 2 {
		t.Fatalf("expected local day 2, got %d", start.Day())
	}
	if !end.Equal(start.AddDate(0, 0, 1)) {
		t.Fatalf("expected next day end, got %s", end.Format(time.RFC3339))
	}
}

func TestDateAtLocationDefaultsToUTC(t *testing.T) {
	raw := time.Date(2026, 3, 4, 23, 59, 0, 0, time.UTC)
	got := DateAtLocation(raw, nil)
	if got.Location() != time.UTC || got.Format(DayKeyLayout) != "2026-03-04" {
		t.Fatalf("expected 2026-03-04 UTC, got %s", got.Format(time.RFC3339))
	}
}

func TestParseDayKey(t *testing.T) {
	day, err := ParseDayKey(" 2026-10-17 ", time.UTC)
	if err != nil {
		t.Fatalf("ParseDayKey() unexpected error: %v", err)
	}
	if DayKey(day, time.UTC) != "2026-10-17" {
		t.Fatalf("expected 2026-10-17, got %s", DayKey(day, time.UTC))
	}

	if _, err := ParseDayKey("17/10/2026", time.UTC); err == nil {
		t.Fatal("expected error for non ISO day")
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2026, 5, 5, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 5, 5, 23, 0, 0, 0, time.UTC)
	nextDay := time.Date(2026, 5, 6, 0, 0, 0, 0, time.UTC)

	if !SameDay(morning, evening, time.UTC) {
		t.Fatal("expected same day")
	}
	if SameDay(evening, nextDay, time.UTC) {
		t.Fatal("expected different days")
	}
}
