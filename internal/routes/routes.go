package routes

import (
	"github.com/coachpeter/coach-peter-api/internal/handlers"
	"github.com/coachpeter/coach-peter-api/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, h *handlers.Handler, jwtSecret string) {
	api := app.Group("/api")

	api.Get("/health", h.Health)

	// User management. The reset routes are ops/test helpers and stay
	// open, matching the original service.
	api.Put("/create-user", h.CreateUser)
	api.Post("/login", h.Login)
	api.Delete("/reset-users", h.ResetUsers)
	api.Delete("/reset-goals", h.ResetGoals)

	protected := api.Group("/", middleware.Protected(jwtSecret))

	protected.Post("/change-password", h.ChangePassword)

	// Goal catalog
	protected.Post("/create-goal", h.CreateGoal)
	protected.Get("/get-all-goals-from-catalog", h.GetAllGoals)
	protected.Get("/get-goal-from-catalog-by-id/:id", h.GetGoalByID)
	protected.Get("/filter-goals", h.FilterGoals)
	protected.Put("/update-goal/:id", h.UpdateGoal)
	protected.Delete("/delete-goal/:id", h.DeleteGoal)
	protected.Delete("/delete-goals", h.DeleteGoals)

	// Workout sessions
	protected.Post("/log-session", h.LogSession)

	// Plan
	protected.Post("/add-goal-to-plan", h.AddGoalToPlan)
	protected.Delete("/remove-goal-from-plan/:id", h.RemoveGoalFromPlan)
	protected.Post("/clear-plan", h.ClearPlan)
	protected.Get("/get-all-goals-from-plan", h.GetAllGoalsFromPlan)
	protected.Get("/get-plan-progress", h.GetPlanProgress)

	// Exercise recommendations
	protected.Get("/recommendations/:target", h.GetRecommendations)
}
