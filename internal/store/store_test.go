package store

import (
	"testing"

	"github.com/coachpeter/coach-peter-api/internal/database"
	"github.com/coachpeter/coach-peter-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	require.NoError(t, err)

	// The pool must stay on one connection: every sqlite ":memory:"
	// connection is its own database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createGoal(t *testing.T, goals *GoalStore, target string, value, progress float64) *models.Goal {
	t.Helper()
	goal, err := goals.Create(models.CreateGoalRequest{
		Target:       target,
		GoalValue:    value,
		GoalProgress: progress,
	})
	require.NoError(t, err)
	return goal
}
