package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/minder/internal/db"
	"github.com/terraincognita07/minder/internal/services"
	"gorm.io/gorm"
)

type HandlerOptions struct {
	CookieSecure   bool
	BackfillPolicy services.BackfillPolicy
	// Now replaces the wall clock in tests.
	Now func() time.Time
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, options HandlerOptions) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if secret == "" {
		return nil, errors.New("secret key is required")
	}
	if location == nil {
		location = time.Local
	}
	now := options.Now
	if now == nil {
		now = time.Now
	}

	handler := &Handler{
		db:              database,
		secretKey:       []byte(secret),
		location:        location,
		cookieSecure:    options.CookieSecure,
		validate:        newValidator(),
		passcodeLimiter: newAttemptLimiter(passcodeAttemptLimit, passcodeAttemptWindow),
		now:             now,
	}
	return handler.withDependencies(database, options.BackfillPolicy), nil
}

func (handler *Handler) withDependencies(database *gorm.DB, policy services.BackfillPolicy) *Handler {
	repositories := db.NewRepositories(database)
	handler.repositories = repositories
	handler.medicationService = services.NewMedicationService(repositories.Medications)
	handler.medicationLogService = services.NewMedicationLogService(repositories.MedicationLogs, repositories.Medications, handler.location)
	handler.reconciliationService = services.NewReconciliationService(repositories.MedicationLogs, repositories.Settings, repositories.Medications, policy, handler.location)
	handler.emotionService = services.NewEmotionService(repositories.EmotionLogs, handler.location)
	handler.mealService = services.NewMealService(repositories.MealLogs, handler.location)
	handler.summaryService = services.NewSummaryService(repositories.EmotionLogs, repositories.MealLogs, repositories.MedicationLogs, handler.location)
	handler.accessService = services.NewAccessService(repositories.Settings)
	return handler
}

// Reconciler exposes the reconciliation pass so the scheduler and the API share
// one mutex.
func (handler *Handler) Reconciler() *services.ReconciliationService {
	return handler.reconciliationService
}
