package models

// Session is the payload of one logged workout. It is never persisted:
// its entire effect is the progress applied to the referenced goal.
// ExerciseType, Intensity and Note are accepted for caller bookkeeping
// and do not affect progress math.
type Session struct {
	GoalID       uint    `json:"goal_id"`
	Amount       float64 `json:"amount"`
	ExerciseType string  `json:"exercise_type"`
	Duration     int     `json:"duration"`
	Intensity    string  `json:"intensity"`
	Note         string  `json:"note"`
}
