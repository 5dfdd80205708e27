package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// AppOpened is called by the presentation layer every time the app comes to
// the foreground.
func (handler *Handler) AppOpened(c *fiber.Ctx) error {
	result, err := handler.reconciliationService.RunIfNeeded(handler.now())
	if err != nil {
		log.Printf("reconciliation on open failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to reconcile logs")
	}
	return c.JSON(result)
}
