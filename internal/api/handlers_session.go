package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/minder/internal/services"
)

func (handler *Handler) CreateSession(c *fiber.Ctx) error {
	key := clientKey(c)
	now := handler.now()
	if handler.passcodeLimiter.blocked(key, now) {
		return apiError(c, fiber.StatusTooManyRequests, "too many attempts")
	}

	input := passcodeInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.validateInput(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.accessService.VerifyPasscode(input.Passcode); err != nil {
		switch {
		case errors.Is(err, services.ErrPasscodeNotSet):
			return apiError(c, fiber.StatusConflict, "passcode not set")
		case errors.Is(err, services.ErrPasscodeMismatch):
			handler.passcodeLimiter.recordFailure(key, now)
			return apiError(c, fiber.StatusUnauthorized, "invalid passcode")
		default:
			log.Printf("passcode verification failed: %v", err)
			return apiError(c, fiber.StatusInternalServerError, "failed to verify passcode")
		}
	}

	handler.passcodeLimiter.reset(key)
	if err := handler.setSessionCookie(c); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DeleteSession(c *fiber.Ctx) error {
	handler.clearSessionCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) UpdatePasscode(c *fiber.Ctx) error {
	input := passcodeInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.validateInput(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.accessService.SetPasscode(input.Passcode); err != nil {
		if errors.Is(err, services.ErrInvalidPasscode) {
			return apiError(c, fiber.StatusBadRequest, "invalid passcode")
		}
		log.Printf("passcode update failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to update passcode")
	}
	if err := handler.setSessionCookie(c); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ClearPasscode(c *fiber.Ctx) error {
	if err := handler.accessService.ClearPasscode(); err != nil {
		log.Printf("passcode clear failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to clear passcode")
	}
	handler.clearSessionCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}
