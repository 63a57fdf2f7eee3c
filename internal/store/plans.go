package store

import (
	"github.com/coachpeter/coach-peter-api/internal/apperr"
	"github.com/coachpeter/coach-peter-api/internal/models"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlanStore manages each user's plan: the working set of goal ids tracked
// together for an aggregate completion percentage.
type PlanStore struct {
	db *gorm.DB
}

func NewPlanStore(db *gorm.DB) *PlanStore {
	return &PlanStore{db: db}
}

// ForUser returns the user's plan, creating it on first use.
func (s *PlanStore) ForUser(userID uuid.UUID) (*models.Plan, error) {
	var plan models.Plan
	err := s.db.Where(models.Plan{UserID: userID}).FirstOrCreate(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// Add inserts every visible goal matching the target into the plan.
// Ids already present are skipped; the plan is a set.
func (s *PlanStore) Add(planID uuid.UUID, target string) error {
	if target == "" {
		return apperr.Validationf("target must be a non-empty string")
	}

	var goalIDs []uint
	err := s.db.Model(&models.Goal{}).
		Where("target = ?", target).
		Order("id ASC").
		Pluck("id", &goalIDs).Error
	if err != nil {
		return err
	}
	if len(goalIDs) == 0 {
		return apperr.NotFoundf("no goal with target %q found in catalog", target)
	}

	memberships := make([]models.PlanGoal, len(goalIDs))
	for i, id := range goalIDs {
		memberships[i] = models.PlanGoal{PlanID: planID, GoalID: id}
	}

	// ON CONFLICT DO NOTHING on (plan_id, goal_id) makes re-adds no-ops.
	err = s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&memberships).Error
	if err != nil {
		return err
	}

	log.Infof("added %d goal(s) with target %q to plan %s", len(goalIDs), target, planID)
	return nil
}

// Remove drops one goal from the plan. The goal row itself is untouched.
func (s *PlanStore) Remove(planID uuid.UUID, goalID uint) error {
	res := s.db.Where("plan_id = ? AND goal_id = ?", planID, goalID).Delete(&models.PlanGoal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("goal with ID %d not found in plan", goalID)
	}
	return nil
}

// Clear empties the plan. Clearing an already empty plan is fine.
func (s *PlanStore) Clear(planID uuid.UUID) error {
	return s.db.Where("plan_id = ?", planID).Delete(&models.PlanGoal{}).Error
}

// List resolves the plan's goal ids to their current state. References to
// goals that were deleted after being added are pruned from the stored set
// so list and percentage always agree.
func (s *PlanStore) List(planID uuid.UUID) ([]models.Goal, error) {
	var memberIDs []uint
	err := s.db.Model(&models.PlanGoal{}).
		Where("plan_id = ?", planID).
		Order("id ASC").
		Pluck("goal_id", &memberIDs).Error
	if err != nil {
		return nil, err
	}
	if len(memberIDs) == 0 {
		return []models.Goal{}, nil
	}

	var goals []models.Goal
	if err := s.db.Where("id IN ?", memberIDs).Find(&goals).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Goal, len(goals))
	for _, g := range goals {
		byID[g.ID] = g
	}

	resolved := make([]models.Goal, 0, len(memberIDs))
	var stale []uint
	for _, id := range memberIDs {
		if g, ok := byID[id]; ok {
			resolved = append(resolved, g)
		} else {
			stale = append(stale, id)
		}
	}

	if len(stale) > 0 {
		log.Warnf("pruning %d stale goal reference(s) from plan %s", len(stale), planID)
		err := s.db.Where("plan_id = ? AND goal_id IN ?", planID, stale).
			Delete(&models.PlanGoal{}).Error
		if err != nil {
			return nil, err
		}
	}

	return resolved, nil
}

// Progress returns the plan-wide completion percentage: the share of
// resolved goals whose completed flag is set, 0-100. A goal counts fully
// or not at all; an empty plan is 0, never an error.
func (s *PlanStore) Progress(planID uuid.UUID) (float64, error) {
	goals, err := s.List(planID)
	if err != nil {
		return 0, err
	}
	if len(goals) == 0 {
		return 0, nil
	}

	completed := 0
	for _, g := range goals {
		if g.Completed {
			completed++
		}
	}
	return 100 * float64(completed) / float64(len(goals)), nil
}
