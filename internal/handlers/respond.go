package handlers

import (
	"errors"

	"github.com/coachpeter/coach-peter-api/internal/apperr"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// success writes the success envelope with the given extra fields.
func success(c *fiber.Ctx, status int, fields fiber.Map) error {
	body := fiber.Map{"status": "success"}
	for k, v := range fields {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

// ErrorHandler maps core error kinds to HTTP statuses: 400 validation,
// 404 not found, 504 upstream timeout, 502 other upstream failures, 500
// for everything else. Wire it as the fiber app's ErrorHandler so
// handlers can propagate core errors unmodified.
func ErrorHandler(c *fiber.Ctx, err error) error {
	switch {
	case apperr.IsValidation(err):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case apperr.IsNotFound(err):
		return fail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrUpstreamTimeout):
		return fail(c, fiber.StatusGatewayTimeout, err.Error())
	case apperr.IsUpstream(err):
		return fail(c, fiber.StatusBadGateway, err.Error())
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fail(c, fiberErr.Code, fiberErr.Message)
	}

	log.Errorf("internal error on %s %s: %s", c.Method(), c.Path(), err)
	return fail(c, fiber.StatusInternalServerError, "An internal error occurred")
}
