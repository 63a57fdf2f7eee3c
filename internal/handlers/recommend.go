package handlers

import (
	"errors"
	"fmt"

	"github.com/coachpeter/coach-peter-api/internal/apperr"
	"github.com/gofiber/fiber/v2"
)

// GetRecommendations looks up exercises for a target muscle group. An
// empty catalog result is a plain success with an empty list, not an
// error; upstream failures propagate to the error handler.
func (h *Handler) GetRecommendations(c *fiber.Ctx) error {
	target := c.Params("target")

	exercises, err := h.recommender.Recommend(c.UserContext(), target)
	if err != nil {
		if errors.Is(err, apperr.ErrEmptyResult) {
			return success(c, fiber.StatusOK, fiber.Map{
				"message":         fmt.Sprintf("no exercises found for target '%s'", target),
				"recommendations": []interface{}{},
			})
		}
		return err
	}

	return success(c, fiber.StatusOK, fiber.Map{
		"message":         fmt.Sprintf("found %d exercises for target '%s'", len(exercises), target),
		"recommendations": exercises,
	})
}
