package models

import (
	"time"

	"gorm.io/gorm"
)

// Goal is one trackable fitness target. Progress and value live on the
// same numeric axis; Completed is forced true whenever progress reaches
// the value (see RecomputeCompletion).
type Goal struct {
	ID           uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	Target       string         `json:"target" gorm:"index;not null"`
	GoalValue    float64        `json:"goal_value" gorm:"not null"`
	GoalProgress float64        `json:"goal_progress" gorm:"default:0"`
	Completed    bool           `json:"completed" gorm:"default:false"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// RecomputeCompletion re-derives the completion flag from progress and
// value. Every code path that mutates either field calls this; progress
// overshooting the value is kept as-is.
func (g *Goal) RecomputeCompletion() {
	g.Completed = g.GoalProgress >= g.GoalValue
}

// Goal DTOs
type CreateGoalRequest struct {
	Target       string  `json:"target"`
	GoalValue    float64 `json:"goal_value"`
	GoalProgress float64 `json:"goal_progress"`
	Completed    bool    `json:"completed"`
}

type UpdateGoalRequest struct {
	Target       *string  `json:"target"`
	GoalValue    *float64 `json:"goal_value"`
	GoalProgress *float64 `json:"goal_progress"`
	Completed    *bool    `json:"completed"`
}

// GoalFilter matches goals on equality for every field that is set; nil
// fields are unconstrained.
type GoalFilter struct {
	Target    *string  `json:"target"`
	Completed *bool    `json:"completed"`
	GoalValue *float64 `json:"goal_value"`
}

func (f GoalFilter) Empty() bool {
	return f.Target == nil && f.Completed == nil && f.GoalValue == nil
}
