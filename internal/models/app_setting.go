package models

import "time"

const (
	SettingLastReconciledDay     = "last_reconciled_day"
	SettingCaregiverPasscodeHash = "caregiver_passcode_hash"
)

type AppSetting struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}
