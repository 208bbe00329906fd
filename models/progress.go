package models

import "time"

// UserProgress is one row per (user, module) pair.
type UserProgress struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	ModuleID         string    `json:"module_id"`
	ContentCompleted bool      `json:"content_completed"`
	QuizCompleted    bool      `json:"quiz_completed"`
	BestScore        *int      `json:"best_score"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ProgressPatch carries the fields of an upsert. Nil fields retain the
// existing value; BestScore is merged with max() so it never decreases.
type ProgressPatch struct {
	ContentCompleted *bool
	QuizCompleted    *bool
	BestScore        *int
}
