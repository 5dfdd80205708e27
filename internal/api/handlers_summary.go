package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetSummary(c *fiber.Ctx) error {
	period, ok := parsePeriod(c.Query("period"))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid period")
	}
	overview, err := handler.summaryService.Build(period, handler.now())
	if err != nil {
		log.Printf("summary build failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to build summary")
	}
	return c.JSON(overview)
}
