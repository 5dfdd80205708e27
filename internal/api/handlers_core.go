package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/minder/internal/models"
)

type timeSlotOption struct {
	Value models.TimeOfDay `json:"value"`
	Icon  string           `json:"icon"`
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Catalog lists the closed value sets the presentation layer offers as choices.
func (handler *Handler) Catalog(c *fiber.Ctx) error {
	slots := make([]timeSlotOption, 0, len(models.AllTimesOfDay()))
	for _, slot := range models.AllTimesOfDay() {
		slots = append(slots, timeSlotOption{Value: slot, Icon: slot.Icon()})
	}
	return c.JSON(fiber.Map{
		"time_slots":     slots,
		"units":          []models.Unit{models.UnitMilligram, models.UnitMilliliter},
		"emotions":       models.AllEmotions(),
		"intensities":    models.AllIntensities(),
		"meal_amounts":   models.AllAmountsEaten(),
		"summary_period": models.AllSummaryPeriods(),
	})
}

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	return apiError(c, fiber.StatusNotFound, "not found")
}
