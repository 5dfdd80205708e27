package db

import "gorm.io/gorm"

type Repositories struct {
	Medications    *MedicationRepository
	MedicationLogs *MedicationLogRepository
	EmotionLogs    *EmotionLogRepository
	MealLogs       *MealLogRepository
	Settings       *SettingRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Medications:    NewMedicationRepository(database),
		MedicationLogs: NewMedicationLogRepository(database),
		EmotionLogs:    NewEmotionLogRepository(database),
		MealLogs:       NewMealLogRepository(database),
		Settings:       NewSettingRepository(database),
	}
}
