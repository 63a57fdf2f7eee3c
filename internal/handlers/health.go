package handlers

import "github.com/gofiber/fiber/v2"

func (h *Handler) Health(c *fiber.Ctx) error {
	return success(c, fiber.StatusOK, fiber.Map{
		"message": "Service is running",
	})
}
