package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/minder/internal/services"
)

func (handler *Handler) CheckIn(c *fiber.Ctx) error {
	input := checkInInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.validateInput(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	entry, err := handler.emotionService.CheckIn(services.CheckInInput{
		Emotions:  input.Emotions,
		Intensity: input.Intensity,
		Note:      input.Note,
		At:        handler.now(),
	})
	if err != nil {
		return handler.emotionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) ListEmotions(c *fiber.Ctx) error {
	period, ok := parsePeriod(c.Query("period"))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid period")
	}
	logs, err := handler.emotionService.Recent(period, handler.now())
	if err != nil {
		return handler.emotionError(c, err)
	}
	return c.JSON(logs)
}

func (handler *Handler) EmotionSummary(c *fiber.Ctx) error {
	period, ok := parsePeriod(c.Query("period"))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid period")
	}
	counts, err := handler.emotionService.Counts(period, handler.now())
	if err != nil {
		return handler.emotionError(c, err)
	}
	return c.JSON(fiber.Map{"period": period, "counts": counts})
}

func (handler *Handler) emotionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrEmotionsRequired),
		errors.Is(err, services.ErrInvalidEmotion),
		errors.Is(err, services.ErrInvalidIntensity),
		errors.Is(err, services.ErrInvalidPeriod):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		log.Printf("emotion request failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to process check-in")
	}
}
