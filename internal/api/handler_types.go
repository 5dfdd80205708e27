package api

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/minder/internal/db"
	"github.com/terraincognita07/minder/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db              *gorm.DB
	secretKey       []byte
	location        *time.Location
	cookieSecure    bool
	validate        *validator.Validate
	passcodeLimiter *attemptLimiter
	now             func() time.Time

	repositories          *db.Repositories
	medicationService     *services.MedicationService
	medicationLogService  *services.MedicationLogService
	reconciliationService *services.ReconciliationService
	emotionService        *services.EmotionService
	mealService           *services.MealService
	summaryService        *services.SummaryService
	accessService         *services.AccessService
}

const defaultSessionTTL = 12 * time.Hour

type sessionClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}
