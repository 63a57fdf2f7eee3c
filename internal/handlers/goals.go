package handlers

import (
	"fmt"
	"strconv"

	"github.com/coachpeter/coach-peter-api/internal/models"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func parseGoalID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fail(c, fiber.StatusBadRequest, "Invalid goal ID")
	}
	return uint(id), nil
}

func (h *Handler) CreateGoal(c *fiber.Ctx) error {
	var req models.CreateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	goal, err := h.goals.Create(req)
	if err != nil {
		return err
	}

	return success(c, fiber.StatusCreated, fiber.Map{
		"message": fmt.Sprintf("goal with target '%s' added successfully", goal.Target),
		"goal":    goal,
	})
}

func (h *Handler) GetAllGoals(c *fiber.Ctx) error {
	sortBy := c.Query("sort_by")
	log.Debugf("retrieving all goals from catalog (sort_by=%q)", sortBy)

	goals, err := h.goals.ListCatalog(sortBy)
	if err != nil {
		return err
	}

	return success(c, fiber.StatusOK, fiber.Map{
		"message": "goals retrieved successfully",
		"goals":   goals,
	})
}

func (h *Handler) GetGoalByID(c *fiber.Ctx) error {
	goalID, err := parseGoalID(c)
	if err != nil {
		return nil
	}

	includeDeleted := c.QueryBool("include_deleted")
	goal, err := h.goals.Get(goalID, includeDeleted)
	if err != nil {
		return err
	}

	return success(c, fiber.StatusOK, fiber.Map{
		"message": "goal retrieved successfully",
		"goal":    goal,
	})
}

func (h *Handler) FilterGoals(c *fiber.Ctx) error {
	var filter models.GoalFilter

	if target := c.Query("target"); target != "" {
		filter.Target = &target
	}
	if raw := c.Query("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "completed must be true or false")
		}
		filter.Completed = &completed
	}
	if raw := c.Query("goal_value"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "goal_value must be a number")
		}
		filter.GoalValue = &value
	}

	ids, err := h.goals.FilterBy(filter)
	if err != nil {
		return err
	}

	return success(c, fiber.StatusOK, fiber.Map{
		"message":  "goals filtered successfully",
		"goal_ids": ids,
	})
}

func (h *Handler) UpdateGoal(c *fiber.Ctx) error {
	goalID, err := parseGoalID(c)
	if err != nil {
		return nil
	}

	var req models.UpdateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	goal, err := h.goals.Update(goalID, req)
	if err != nil {
		return err
	}

	return success(c, fiber.StatusOK, fiber.Map{
		"message": fmt.Sprintf("goal with ID %d updated successfully", goal.ID),
		"goal":    goal,
	})
}

func (h *Handler) DeleteGoal(c *fiber.Ctx) error {
	goalID, err := parseGoalID(c)
	if err != nil {
		return nil
	}

	if err := h.goals.SoftDeleteByID(goalID); err != nil {
		return err
	}

	return success(c, fiber.StatusOK, fiber.Map{
		"message": fmt.Sprintf("goal with ID %d deleted successfully", goalID),
	})
}

// DeleteGoals soft-deletes every goal matching the query attributes.
// Matching nothing is a success with a count of 0.
func (h *Handler) DeleteGoals(c *fiber.Ctx) error {
	var filter models.GoalFilter

	if target := c.Query("target"); target != "" {
		filter.Target = &target
	}
	if raw := c.Query("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "completed must be true or false")
		}
		filter.Completed = &completed
	}
	if raw := c.Query("goal_value"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "goal_value must be a number")
		}
		filter.GoalValue = &value
	}

	count, err := h.goals.SoftDeleteWhere(filter)
	if err != nil {
		return err
	}

	return success(c, fiber.StatusOK, fiber.Map{
		"message": fmt.Sprintf("%d goal(s) deleted successfully", count),
		"count":   count,
	})
}

func (h *Handler) ResetGoals(c *fiber.Ctx) error {
	if err := h.goals.Reset(); err != nil {
		return fmt.Errorf("reset goals: %w", err)
	}
	return success(c, fiber.StatusOK, fiber.Map{
		"message": "Goals table recreated successfully",
	})
}
