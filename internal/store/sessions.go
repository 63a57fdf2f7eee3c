package store

import (
	"errors"
	"fmt"

	"github.com/coachpeter/coach-peter-api/internal/apperr"
	"github.com/coachpeter/coach-peter-api/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionLogger applies logged workouts to goals. A session itself is
// never persisted; logging mutates exactly one goal row.
type SessionLogger struct {
	db *gorm.DB
}

func NewSessionLogger(db *gorm.DB) *SessionLogger {
	return &SessionLogger{db: db}
}

// Log advances the goal's progress by the session amount and re-evaluates
// completion. Progress is not clamped at the goal value: overshoot is
// recorded as-is and completion still triggers. The read-modify-write runs
// in a single-row transaction so concurrent sessions against the same goal
// serialize.
func (l *SessionLogger) Log(session models.Session) (*models.Goal, string, error) {
	if session.Amount <= 0 {
		return nil, "", apperr.Validationf("amount must be a positive number, got %v", session.Amount)
	}
	if session.Duration <= 0 {
		return nil, "", apperr.Validationf("duration must be a positive integer, got %d", session.Duration)
	}

	var goal models.Goal
	err := l.db.Transaction(func(tx *gorm.DB) error {
		sel := tx
		// Postgres needs the explicit row lock; sqlite serializes writers
		// on its own and rejects FOR UPDATE.
		if tx.Dialector.Name() == "postgres" {
			sel = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		if err := sel.First(&goal, session.GoalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("goal with ID %d not found", session.GoalID)
			}
			return err
		}

		goal.GoalProgress += session.Amount
		goal.RecomputeCompletion()
		return tx.Save(&goal).Error
	})
	if err != nil {
		return nil, "", err
	}

	msg := fmt.Sprintf(
		"logged %v towards %q: progress now %v of %v",
		session.Amount, goal.Target, goal.GoalProgress, goal.GoalValue,
	)
	if goal.Completed {
		msg += " (goal completed)"
	}

	log.Infof("session applied to goal %d: %s", goal.ID, msg)
	return &goal, msg, nil
}
