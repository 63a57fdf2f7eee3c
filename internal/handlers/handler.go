// Package handlers owns the HTTP boundary: request parsing, the JSON
// response envelope, and the mapping from core error kinds to statuses.
package handlers

import (
	"github.com/coachpeter/coach-peter-api/internal/recommend"
	"github.com/coachpeter/coach-peter-api/internal/store"
	"gorm.io/gorm"
)

type Handler struct {
	db          *gorm.DB
	goals       *store.GoalStore
	sessions    *store.SessionLogger
	plans       *store.PlanStore
	recommender *recommend.Client
	jwtSecret   string
}

func New(db *gorm.DB, recommender *recommend.Client, jwtSecret string) *Handler {
	return &Handler{
		db:          db,
		goals:       store.NewGoalStore(db),
		sessions:    store.NewSessionLogger(db),
		plans:       store.NewPlanStore(db),
		recommender: recommender,
		jwtSecret:   jwtSecret,
	}
}
