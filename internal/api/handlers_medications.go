package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/minder/internal/services"
)

func (handler *Handler) ListMedications(c *fiber.Ctx) error {
	medications, err := handler.medicationService.ListMedications()
	if err != nil {
		return handler.medicationError(c, err)
	}
	return c.JSON(medications)
}

func (handler *Handler) CreateMedication(c *fiber.Ctx) error {
	input := medicationInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.validateInput(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	medication, err := handler.medicationService.CreateMedication(services.MedicationInput{
		Name:      input.Name,
		DoseCount: input.DoseCount,
		Amount:    input.Amount,
		Unit:      input.Unit,
		TimeSlots: input.TimeSlots,
	})
	if err != nil {
		return handler.medicationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(medication)
}

func (handler *Handler) GetMedication(c *fiber.Ctx) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid medication id")
	}
	medication, err := handler.medicationService.FindMedication(id)
	if err != nil {
		return handler.medicationError(c, err)
	}
	return c.JSON(medication)
}

func (handler *Handler) DeleteMedication(c *fiber.Ctx) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid medication id")
	}
	if err := handler.medicationService.DeleteMedication(id); err != nil {
		return handler.medicationError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "deleted": true})
}

func (handler *Handler) RemoveDose(c *fiber.Ctx) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid medication id")
	}
	index, ok := parseIndexParam(c, "index")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid dose index")
	}

	medication, deleted, err := handler.medicationService.RemoveDose(id, index)
	if err != nil {
		return handler.medicationError(c, err)
	}
	if deleted {
		return c.JSON(fiber.Map{"ok": true, "deleted": true})
	}
	return c.JSON(fiber.Map{"ok": true, "deleted": false, "medication": medication})
}

func (handler *Handler) medicationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrMedicationNotFound):
		return apiError(c, fiber.StatusNotFound, "medication not found")
	case errors.Is(err, services.ErrDoseIndexOutOfRange):
		return apiError(c, fiber.StatusBadRequest, "dose index out of range")
	case errors.Is(err, services.ErrInvalidMedicationName),
		errors.Is(err, services.ErrInvalidDoseCount),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidUnit),
		errors.Is(err, services.ErrInvalidTimeSlots):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		log.Printf("medication request failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to process medication")
	}
}
