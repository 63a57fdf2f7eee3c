package handlers

import (
	"github.com/coachpeter/coach-peter-api/internal/models"
	"github.com/gofiber/fiber/v2"
)

// LogSession applies one workout session to a goal. The session payload
// is transient; its only effect is the mutated goal.
func (h *Handler) LogSession(c *fiber.Ctx) error {
	var session models.Session
	if err := c.BodyParser(&session); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	goal, message, err := h.sessions.Log(session)
	if err != nil {
		return err
	}

	return success(c, fiber.StatusOK, fiber.Map{
		"message": message,
		"goal":    goal,
	})
}
