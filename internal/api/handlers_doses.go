package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/terraincognita07/minder/internal/services"
)

func (handler *Handler) GetDoseBoard(c *fiber.Ctx) error {
	query := doseBoardQuery{}
	if err := c.QueryParser(&query); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid query")
	}
	if err := handler.validateInput(query); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	day, err := handler.parseDayOrToday(query.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	board, err := handler.medicationLogService.DoseBoard(day, query.TimeOfDay)
	if err != nil {
		return handler.doseError(c, err)
	}
	return c.JSON(fiber.Map{
		"date":        services.DayKey(day, handler.location),
		"time_of_day": query.TimeOfDay,
		"doses":       board,
	})
}

// GetCurrentDoseBoard shows today's doses for the slot the local clock is in.
func (handler *Handler) GetCurrentDoseBoard(c *fiber.Ctx) error {
	now := handler.now().In(handler.location)
	slot := services.CurrentTimeOfDay(now)
	board, err := handler.medicationLogService.DoseBoard(now, slot)
	if err != nil {
		return handler.doseError(c, err)
	}
	return c.JSON(fiber.Map{
		"date":        services.DayKey(now, handler.location),
		"time_of_day": slot,
		"doses":       board,
	})
}

func (handler *Handler) RecordOutcome(c *fiber.Ctx) error {
	input := outcomeInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.validateInput(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	medicationID, err := uuid.Parse(input.MedicationID)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid medication_id")
	}
	day, err := handler.parseDayOrToday(input.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, err := handler.medicationLogService.RecordDoseOutcome(medicationID, input.TimeOfDay, input.DoseIndex, day, *input.Taken)
	if err != nil {
		return handler.doseError(c, err)
	}
	return c.JSON(entry)
}

func (handler *Handler) GetLogs(c *fiber.Ctx) error {
	day, err := handler.parseDayOrToday(c.Query("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	logs, err := handler.medicationLogService.LogsForDay(day)
	if err != nil {
		return handler.doseError(c, err)
	}
	return c.JSON(logs)
}

func (handler *Handler) doseError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrMedicationNotFound):
		return apiError(c, fiber.StatusNotFound, "medication not found")
	case errors.Is(err, services.ErrDoseNotScheduled):
		return apiError(c, fiber.StatusBadRequest, "dose not scheduled")
	case errors.Is(err, services.ErrInvalidTimeOfDay):
		return apiError(c, fiber.StatusBadRequest, "invalid time of day")
	case errors.Is(err, services.ErrLogCreateFailed), errors.Is(err, services.ErrLogUpdateFailed):
		return apiError(c, fiber.StatusInternalServerError, "failed to save medication log")
	default:
		log.Printf("dose request failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to load doses")
	}
}
