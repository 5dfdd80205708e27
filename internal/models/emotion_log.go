package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Emotion string

const (
	EmotionCalm     Emotion = "calm"
	EmotionConfused Emotion = "confused"
	EmotionSad      Emotion = "sad"
	EmotionAgitated Emotion = "agitated"
	EmotionAnxious  Emotion = "anxious"
	EmotionTired    Emotion = "tired"
	EmotionUnknown  Emotion = "unknown"
)

func AllEmotions() []Emotion {
	return []Emotion{
		EmotionCalm,
		EmotionConfused,
		EmotionSad,
		EmotionAgitated,
		EmotionAnxious,
		EmotionTired,
		EmotionUnknown,
	}
}

func (emotion Emotion) Valid() bool {
	for _, known := range AllEmotions() {
		if emotion == known {
			return true
		}
	}
	return false
}

type Intensity string

const (
	IntensityMild     Intensity = "mild"
	IntensityModerate Intensity = "moderate"
	IntensityStrong   Intensity = "strong"
)

func AllIntensities() []Intensity {
	return []Intensity{IntensityMild, IntensityModerate, IntensityStrong}
}

func (intensity Intensity) Valid() bool {
	switch intensity {
	case IntensityMild, IntensityModerate, IntensityStrong:
		return true
	default:
		return false
	}
}

type EmotionLog struct {
	ID        uuid.UUID                    `gorm:"type:text;primaryKey" json:"id"`
	Timestamp time.Time                    `gorm:"not null;index" json:"timestamp"`
	Emotions  datatypes.JSONSlice[Emotion] `gorm:"type:text;not null" json:"emotions"`
	Intensity Intensity                    `gorm:"not null" json:"intensity"`
	Note      *string                      `json:"note,omitempty"`
}

func (entry *EmotionLog) BeforeCreate(*gorm.DB) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	return nil
}
