package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plan is a user's active tracking list: a set of goal references whose
// aggregate completion percentage can be queried. One plan per user,
// created lazily on first use.
type Plan struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Plan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// PlanGoal is one membership row. The unique index gives the plan set
// semantics: re-adding a goal is a no-op.
type PlanGoal struct {
	ID        uint      `json:"-" gorm:"primaryKey;autoIncrement"`
	PlanID    uuid.UUID `json:"plan_id" gorm:"type:uuid;uniqueIndex:idx_plan_goal;not null"`
	GoalID    uint      `json:"goal_id" gorm:"uniqueIndex:idx_plan_goal;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// Plan DTOs
type AddGoalToPlanRequest struct {
	Target string `json:"target"`
}
