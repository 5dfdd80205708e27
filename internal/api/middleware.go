package api

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	sessionCookieName = "minder_session"
	sessionPurpose    = "caregiver"
)

// PasscodeRequired lets every request through while no passcode is set.
// Otherwise a valid session cookie is needed.
func (handler *Handler) PasscodeRequired(c *fiber.Ctx) error {
	enabled, err := handler.accessService.PasscodeEnabled()
	if err != nil {
		log.Printf("passcode lookup failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to load access settings")
	}
	if !enabled {
		return c.Next()
	}
	if err := handler.authenticateSession(c); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.Next()
}

func (handler *Handler) authenticateSession(c *fiber.Ctx) error {
	rawToken := strings.TrimSpace(c.Cookies(sessionCookieName))
	if rawToken == "" {
		return errors.New("missing session cookie")
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return errors.New("invalid token")
	}
	if claims.Purpose != sessionPurpose {
		return errors.New("invalid token purpose")
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return errors.New("token expired")
	}
	return nil
}

func (handler *Handler) setSessionCookie(c *fiber.Ctx) error {
	token, err := handler.buildSessionToken(defaultSessionTTL)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Strict",
		Expires:  time.Now().Add(defaultSessionTTL),
	})
	return nil
}

func (handler *Handler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Strict",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}

func (handler *Handler) buildSessionToken(ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	now := time.Now()
	claims := sessionClaims{
		Purpose: sessionPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}
