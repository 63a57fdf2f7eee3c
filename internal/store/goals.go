// Package store owns the persistent goal catalog, the session logging
// that advances goal progress, and the per-user plan membership.
package store

import (
	"errors"
	"strings"

	"github.com/coachpeter/coach-peter-api/internal/apperr"
	"github.com/coachpeter/coach-peter-api/internal/database"
	"github.com/coachpeter/coach-peter-api/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Sort keys accepted by ListCatalog.
const (
	SortByTarget    = "target"
	SortByValue     = "value"
	SortByCompleted = "completed"
)

type GoalStore struct {
	db *gorm.DB
}

func NewGoalStore(db *gorm.DB) *GoalStore {
	return &GoalStore{db: db}
}

func (s *GoalStore) Create(req models.CreateGoalRequest) (*models.Goal, error) {
	target := strings.TrimSpace(req.Target)
	if target == "" {
		return nil, apperr.Validationf("target must be a non-empty string")
	}
	if req.GoalValue <= 0 {
		return nil, apperr.Validationf("goal_value must be a positive number, got %v", req.GoalValue)
	}

	goal := models.Goal{
		Target:       target,
		GoalValue:    req.GoalValue,
		GoalProgress: req.GoalProgress,
		Completed:    req.Completed,
	}
	// The completed flag is settable on creation, but progress at or past
	// the target always forces it true.
	if goal.GoalProgress >= goal.GoalValue {
		goal.Completed = true
	}

	if err := s.db.Create(&goal).Error; err != nil {
		return nil, err
	}

	log.Infof("goal %d created: target %q, value %v", goal.ID, goal.Target, goal.GoalValue)
	return &goal, nil
}

// Get returns the goal with the given id. Soft-deleted goals are only
// returned when includeDeleted is set.
func (s *GoalStore) Get(goalID uint, includeDeleted bool) (*models.Goal, error) {
	db := s.db
	if includeDeleted {
		db = db.Unscoped()
	}

	var goal models.Goal
	if err := db.First(&goal, goalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("goal with ID %d not found", goalID)
		}
		return nil, err
	}
	return &goal, nil
}

// ListCatalog returns all visible goals. An empty sortBy keeps insertion
// order; target/value/completed sort ascending with id as tiebreak so the
// order is stable.
func (s *GoalStore) ListCatalog(sortBy string) ([]models.Goal, error) {
	order := "id ASC"
	switch sortBy {
	case "":
	case SortByTarget:
		order = "target ASC, id ASC"
	case SortByValue:
		order = "goal_value ASC, id ASC"
	case SortByCompleted:
		order = "completed ASC, id ASC"
	default:
		return nil, apperr.Validationf("invalid sort key %q: must be target, value or completed", sortBy)
	}

	var goals []models.Goal
	if err := s.db.Order(order).Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// FilterBy returns the ids of visible goals matching every set filter
// field. An empty result is not an error.
func (s *GoalStore) FilterBy(filter models.GoalFilter) ([]uint, error) {
	db := s.db.Model(&models.Goal{})
	if filter.Target != nil {
		db = db.Where("target = ?", *filter.Target)
	}
	if filter.Completed != nil {
		db = db.Where("completed = ?", *filter.Completed)
	}
	if filter.GoalValue != nil {
		db = db.Where("goal_value = ?", *filter.GoalValue)
	}

	var ids []uint
	if err := db.Order("id ASC").Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Update applies the set fields of req to the goal; nil fields keep their
// prior value. The completion invariant is re-applied after any change to
// goal_value or goal_progress.
func (s *GoalStore) Update(goalID uint, req models.UpdateGoalRequest) (*models.Goal, error) {
	goal, err := s.Get(goalID, false)
	if err != nil {
		return nil, err
	}

	if req.Target != nil {
		target := strings.TrimSpace(*req.Target)
		if target == "" {
			return nil, apperr.Validationf("target must be a non-empty string")
		}
		goal.Target = target
	}
	if req.GoalValue != nil {
		if *req.GoalValue <= 0 {
			return nil, apperr.Validationf("goal_value must be a positive number, got %v", *req.GoalValue)
		}
		goal.GoalValue = *req.GoalValue
	}
	if req.GoalProgress != nil {
		goal.GoalProgress = *req.GoalProgress
	}
	if req.Completed != nil {
		goal.Completed = *req.Completed
	}

	if req.GoalValue != nil || req.GoalProgress != nil {
		goal.RecomputeCompletion()
	} else if goal.GoalProgress >= goal.GoalValue {
		goal.Completed = true
	}

	if err := s.db.Save(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

// SoftDeleteByID marks one goal deleted. The row is retained and stays
// addressable via Get with includeDeleted.
func (s *GoalStore) SoftDeleteByID(goalID uint) error {
	res := s.db.Delete(&models.Goal{}, goalID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("goal with ID %d not found", goalID)
	}
	log.Infof("goal %d soft-deleted", goalID)
	return nil
}

// SoftDeleteWhere marks every goal matching the filter deleted and returns
// the count. Matching nothing is not an error.
func (s *GoalStore) SoftDeleteWhere(filter models.GoalFilter) (int64, error) {
	if filter.Empty() {
		return 0, apperr.Validationf("at least one of target, completed or goal_value is required")
	}

	db := s.db
	if filter.Target != nil {
		db = db.Where("target = ?", *filter.Target)
	}
	if filter.Completed != nil {
		db = db.Where("completed = ?", *filter.Completed)
	}
	if filter.GoalValue != nil {
		db = db.Where("goal_value = ?", *filter.GoalValue)
	}

	res := db.Delete(&models.Goal{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// Reset irreversibly drops all goal rows and reinitializes the table.
func (s *GoalStore) Reset() error {
	log.Warn("resetting goals table")
	return database.ResetGoals(s.db)
}
