package handlers

import (
	"fmt"

	"github.com/coachpeter/coach-peter-api/internal/middleware"
	"github.com/coachpeter/coach-peter-api/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) userPlan(c *fiber.Ctx) (*models.Plan, error) {
	return h.plans.ForUser(middleware.GetUserID(c))
}

func (h *Handler) AddGoalToPlan(c *fiber.Ctx) error {
	var req models.AddGoalToPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	plan, err := h.userPlan(c)
	if err != nil {
		return err
	}

	if err := h.plans.Add(plan.ID, req.Target); err != nil {
		return err
	}

	return success(c, fiber.StatusCreated, fiber.Map{
		"message": fmt.Sprintf("goal(s) with target '%s' added to plan", req.Target),
	})
}

func (h *Handler) RemoveGoalFromPlan(c *fiber.Ctx) error {
	goalID, err := parseGoalID(c)
	if err != nil {
		return nil
	}

	plan, err := h.userPlan(c)
	if err != nil {
		return err
	}

	if err := h.plans.Remove(plan.ID, goalID); err != nil {
		return err
	}

	return success(c, fiber.StatusOK, fiber.Map{
		"message": fmt.Sprintf("goal with ID %d removed from plan", goalID),
	})
}

func (h *Handler) ClearPlan(c *fiber.Ctx) error {
	plan, err := h.userPlan(c)
	if err != nil {
		return err
	}

	if err := h.plans.Clear(plan.ID); err != nil {
		return err
	}

	return success(c, fiber.StatusOK, fiber.Map{
		"message": "plan cleared",
	})
}

func (h *Handler) GetAllGoalsFromPlan(c *fiber.Ctx) error {
	plan, err := h.userPlan(c)
	if err != nil {
		return err
	}

	goals, err := h.plans.List(plan.ID)
	if err != nil {
		return err
	}

	return success(c, fiber.StatusOK, fiber.Map{
		"goals": goals,
	})
}

func (h *Handler) GetPlanProgress(c *fiber.Ctx) error {
	plan, err := h.userPlan(c)
	if err != nil {
		return err
	}

	percentage, err := h.plans.Progress(plan.ID)
	if err != nil {
		return err
	}

	return success(c, fiber.StatusOK, fiber.Map{
		"percentage": percentage,
	})
}
