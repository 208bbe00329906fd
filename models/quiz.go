package models

import "time"

// QuizResult is an immutable record of one quiz attempt.
type QuizResult struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	ModuleID       string    `json:"module_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Passed         bool      `json:"passed"`
	CompletedAt    time.Time `json:"completed_at"`
}

type QuizAnswer struct {
	QuestionID     string `json:"question_id" binding:"required"`
	SelectedAnswer int    `json:"selected_answer"`
}

type SubmitQuizRequest struct {
	ModuleID string       `json:"module_id" binding:"required"`
	Answers  []QuizAnswer `json:"answers" binding:"required"`
}
