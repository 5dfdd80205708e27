package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/minder/internal/services"
)

func (handler *Handler) RecordMeal(c *fiber.Ctx) error {
	day, err := services.ParseDayKey(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	input := mealInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.validateInput(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	entry, err := handler.mealService.RecordMeal(day, input.Amount)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMealAmount) {
			return apiError(c, fiber.StatusBadRequest, "invalid amount")
		}
		log.Printf("meal save failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to save meal")
	}
	return c.JSON(entry)
}

func (handler *Handler) GetMeal(c *fiber.Ctx) error {
	day, err := services.ParseDayKey(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	entry, found, err := handler.mealService.MealForDay(day)
	if err != nil {
		log.Printf("meal load failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to load meal")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "meal not found")
	}
	return c.JSON(entry)
}

func (handler *Handler) GetMealWeek(c *fiber.Ctx) error {
	week, err := handler.mealService.MealWeek(handler.now())
	if err != nil {
		log.Printf("meal week load failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to load meals")
	}
	return c.JSON(week)
}
