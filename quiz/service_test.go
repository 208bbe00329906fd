package quiz

import (
	"sync"
	"testing"

	"go.uber.org/zap"

	"literacy_app_backend/models"
	"literacy_app_backend/store"
)

func newTestService(t *testing.T) (*Service, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	st.SeedCatalog(
		[]models.Module{{ID: "m1", Title: "Module One", OrderIndex: 1}},
		fiveQuestions(),
	)
	return NewService(st, zap.NewNop()), st
}

func TestSubmitPersistsResultAndProgress(t *testing.T) {
	svc, st := newTestService(t)

	answers := []models.QuizAnswer{
		{QuestionID: "q1", SelectedAnswer: 0},
		{QuestionID: "q2", SelectedAnswer: 1},
		{QuestionID: "q3", SelectedAnswer: 0},
		{QuestionID: "q4", SelectedAnswer: 3},
		{QuestionID: "q5", SelectedAnswer: 0},
	}

	result, err := svc.Submit("user1", "m1", answers)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if result.Score != 4 || result.TotalQuestions != 5 || !result.Passed {
		t.Errorf("unexpected result: %+v", result)
	}

	results, err := st.ListQuizResults("user1")
	if err != nil {
		t.Fatalf("ListQuizResults failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d quiz results, want 1", len(results))
	}
	if results[0].Score != 4 || !results[0].Passed || results[0].ModuleID != "m1" {
		t.Errorf("unexpected stored result: %+v", results[0])
	}

	progress, err := st.GetProgress("user1", "m1")
	if err != nil {
		t.Fatalf("GetProgress failed: %v", err)
	}
	if !progress.QuizCompleted {
		t.Error("QuizCompleted = false, want true")
	}
	if progress.BestScore == nil || *progress.BestScore != 4 {
		t.Errorf("BestScore = %v, want 4", progress.BestScore)
	}
	if progress.ContentCompleted {
		t.Error("ContentCompleted = true, want false")
	}
}

func TestSubmitNoQuestions(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Submit("user1", "unknown-module", nil); err != ErrNoQuestions {
		t.Fatalf("Submit error = %v, want ErrNoQuestions", err)
	}
}

func TestSubmitBestScoreMonotonic(t *testing.T) {
	svc, st := newTestService(t)

	good := []models.QuizAnswer{
		{QuestionID: "q1", SelectedAnswer: 0},
		{QuestionID: "q2", SelectedAnswer: 1},
		{QuestionID: "q3", SelectedAnswer: 2},
		{QuestionID: "q4", SelectedAnswer: 3},
	}
	if _, err := svc.Submit("user1", "m1", good); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	bad := []models.QuizAnswer{{QuestionID: "q1", SelectedAnswer: 0}}
	if _, err := svc.Submit("user1", "m1", bad); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	progress, err := st.GetProgress("user1", "m1")
	if err != nil {
		t.Fatalf("GetProgress failed: %v", err)
	}
	if progress.BestScore == nil || *progress.BestScore != 4 {
		t.Errorf("BestScore = %v, want 4 after a worse retake", progress.BestScore)
	}

	results, _ := st.ListQuizResults("user1")
	if len(results) != 2 {
		t.Errorf("got %d quiz results, want 2 (attempts are immutable)", len(results))
	}
}

func TestSubmitConcurrent(t *testing.T) {
	svc, st := newTestService(t)

	three := []models.QuizAnswer{
		{QuestionID: "q1", SelectedAnswer: 0},
		{QuestionID: "q2", SelectedAnswer: 1},
		{QuestionID: "q3", SelectedAnswer: 2},
	}
	five := []models.QuizAnswer{
		{QuestionID: "q1", SelectedAnswer: 0},
		{QuestionID: "q2", SelectedAnswer: 1},
		{QuestionID: "q3", SelectedAnswer: 2},
		{QuestionID: "q4", SelectedAnswer: 3},
		{QuestionID: "q5", SelectedAnswer: 0},
	}

	var wg sync.WaitGroup
	for _, answers := range [][]models.QuizAnswer{three, five} {
		wg.Add(1)
		go func(a []models.QuizAnswer) {
			defer wg.Done()
			if _, err := svc.Submit("user1", "m1", a); err != nil {
				t.Errorf("Submit failed: %v", err)
			}
		}(answers)
	}
	wg.Wait()

	progress, err := st.GetProgress("user1", "m1")
	if err != nil {
		t.Fatalf("GetProgress failed: %v", err)
	}
	if progress.BestScore == nil || *progress.BestScore != 5 {
		t.Errorf("BestScore = %v, want 5 (max of concurrent submissions)", progress.BestScore)
	}
	if !progress.QuizCompleted {
		t.Error("QuizCompleted = false, want true")
	}

	results, _ := st.ListQuizResults("user1")
	if len(results) != 2 {
		t.Errorf("got %d quiz results, want 2", len(results))
	}
}
