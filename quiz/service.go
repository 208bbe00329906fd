package quiz

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"literacy_app_backend/models"
	"literacy_app_backend/store"
)

// ErrNoQuestions is returned when a module has no questions to score against.
var ErrNoQuestions = errors.New("no questions found for module")

// Service scores submissions, records the immutable attempt, and folds the
// outcome into the user's progress.
type Service struct {
	store store.Store
	log   *zap.Logger
}

func NewService(st store.Store, log *zap.Logger) *Service {
	return &Service{store: st, log: log}
}

// Submit evaluates the answers for one module, persists a QuizResult, and
// upserts progress with quizCompleted and the attempt's score.
func (s *Service) Submit(userID, moduleID string, answers []models.QuizAnswer) (*Result, error) {
	questions, err := s.store.ListQuestions(moduleID)
	if err != nil {
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := Evaluate(questions, answers)

	record := &models.QuizResult{
		ID:             uuid.NewString(),
		UserID:         userID,
		ModuleID:       moduleID,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Passed:         result.Passed,
	}
	if err := s.store.CreateQuizResult(record); err != nil {
		return nil, fmt.Errorf("error saving quiz result: %w", err)
	}

	quizCompleted := true
	if _, err := s.store.UpsertProgress(userID, moduleID, models.ProgressPatch{
		QuizCompleted: &quizCompleted,
		BestScore:     &result.Score,
	}); err != nil {
		return nil, fmt.Errorf("error updating progress: %w", err)
	}

	s.log.Info("quiz submitted",
		zap.String("user_id", userID),
		zap.String("module_id", moduleID),
		zap.Int("score", result.Score),
		zap.Int("total", result.TotalQuestions),
		zap.Bool("passed", result.Passed))

	return &result, nil
}
