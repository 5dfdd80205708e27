package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/terraincognita07/minder/internal/models"
	"github.com/terraincognita07/minder/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// parseDayOrToday reads a YYYY-MM-DD value; an empty value means today.
func (handler *Handler) parseDayOrToday(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return services.DateAtLocation(handler.now(), handler.location), nil
	}
	return services.ParseDayKey(raw, handler.location)
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func parseIndexParam(c *fiber.Ctx, name string) (int, bool) {
	value, err := strconv.Atoi(strings.TrimSpace(c.Params(name)))
	if err != nil || value < 0 {
		return 0, false
	}
	return value, true
}

func parsePeriod(raw string) (models.SummaryPeriod, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return models.PeriodWeekly, true
	}
	period := models.SummaryPeriod(trimmed)
	return period, period.Valid()
}
