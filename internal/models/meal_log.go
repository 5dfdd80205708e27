package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AmountEaten string

const (
	AteAll    AmountEaten = "ate_all"
	AteHalf   AmountEaten = "ate_half"
	DidNotEat AmountEaten = "did_not_eat"
)

func AllAmountsEaten() []AmountEaten {
	return []AmountEaten{AteAll, AteHalf, DidNotEat}
}

func (amount AmountEaten) Valid() bool {
	switch amount {
	case AteAll, AteHalf, DidNotEat:
		return true
	default:
		return false
	}
}

type MealLog struct {
	ID        uuid.UUID   `gorm:"type:text;primaryKey" json:"id"`
	Date      time.Time   `gorm:"not null;uniqueIndex" json:"date"`
	Amount    AmountEaten `gorm:"not null" json:"amount"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (entry *MealLog) BeforeCreate(*gorm.DB) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	return nil
}
