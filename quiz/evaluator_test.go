package quiz

import (
	"reflect"
	"testing"

	"literacy_app_backend/models"
)

func fiveQuestions() []models.Question {
	// correct indices [0, 1, 2, 3, 0]
	return []models.Question{
		{ID: "q1", ModuleID: "m1", CorrectAnswer: 0, OrderIndex: 1},
		{ID: "q2", ModuleID: "m1", CorrectAnswer: 1, OrderIndex: 2},
		{ID: "q3", ModuleID: "m1", CorrectAnswer: 2, OrderIndex: 3},
		{ID: "q4", ModuleID: "m1", CorrectAnswer: 3, OrderIndex: 4},
		{ID: "q5", ModuleID: "m1", CorrectAnswer: 0, OrderIndex: 5},
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		answers   []models.QuizAnswer
		wantScore int
		wantPass  bool
	}{
		{
			name: "four of five correct passes",
			answers: []models.QuizAnswer{
				{QuestionID: "q1", SelectedAnswer: 0},
				{QuestionID: "q2", SelectedAnswer: 1},
				{QuestionID: "q3", SelectedAnswer: 0},
				{QuestionID: "q4", SelectedAnswer: 3},
				{QuestionID: "q5", SelectedAnswer: 0},
			},
			wantScore: 4,
			wantPass:  true,
		},
		{
			name: "all correct",
			answers: []models.QuizAnswer{
				{QuestionID: "q1", SelectedAnswer: 0},
				{QuestionID: "q2", SelectedAnswer: 1},
				{QuestionID: "q3", SelectedAnswer: 2},
				{QuestionID: "q4", SelectedAnswer: 3},
				{QuestionID: "q5", SelectedAnswer: 0},
			},
			wantScore: 5,
			wantPass:  true,
		},
		{
			name: "exactly sixty percent passes",
			answers: []models.QuizAnswer{
				{QuestionID: "q1", SelectedAnswer: 0},
				{QuestionID: "q2", SelectedAnswer: 1},
				{QuestionID: "q3", SelectedAnswer: 2},
				{QuestionID: "q4", SelectedAnswer: 0},
				{QuestionID: "q5", SelectedAnswer: 1},
			},
			wantScore: 3,
			wantPass:  true,
		},
		{
			name: "below threshold fails",
			answers: []models.QuizAnswer{
				{QuestionID: "q1", SelectedAnswer: 0},
				{QuestionID: "q2", SelectedAnswer: 1},
				{QuestionID: "q3", SelectedAnswer: 0},
				{QuestionID: "q4", SelectedAnswer: 0},
				{QuestionID: "q5", SelectedAnswer: 1},
			},
			wantScore: 2,
			wantPass:  false,
		},
		{
			name: "unanswered questions count as incorrect",
			answers: []models.QuizAnswer{
				{QuestionID: "q1", SelectedAnswer: 0},
				{QuestionID: "q2", SelectedAnswer: 1},
			},
			wantScore: 2,
			wantPass:  false,
		},
		{
			name:      "empty submission scores zero",
			answers:   nil,
			wantScore: 0,
			wantPass:  false,
		},
		{
			name: "unknown question ids are ignored",
			answers: []models.QuizAnswer{
				{QuestionID: "nope", SelectedAnswer: 0},
				{QuestionID: "q1", SelectedAnswer: 0},
			},
			wantScore: 1,
			wantPass:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate(fiveQuestions(), tt.answers)
			if result.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", result.Score, tt.wantScore)
			}
			if result.TotalQuestions != 5 {
				t.Errorf("TotalQuestions = %d, want 5", result.TotalQuestions)
			}
			if result.Passed != tt.wantPass {
				t.Errorf("Passed = %v, want %v", result.Passed, tt.wantPass)
			}
			if want := []int{0, 1, 2, 3, 0}; !reflect.DeepEqual(result.CorrectAnswers, want) {
				t.Errorf("CorrectAnswers = %v, want %v", result.CorrectAnswers, want)
			}
		})
	}
}

func TestEvaluateDuplicateAnswersFirstWins(t *testing.T) {
	answers := []models.QuizAnswer{
		{QuestionID: "q1", SelectedAnswer: 3}, // wrong, first occurrence wins
		{QuestionID: "q1", SelectedAnswer: 0},
		{QuestionID: "q2", SelectedAnswer: 1}, // correct, first occurrence wins
		{QuestionID: "q2", SelectedAnswer: 3},
	}

	result := Evaluate(fiveQuestions(), answers)
	if result.Score != 1 {
		t.Errorf("Score = %d, want 1", result.Score)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	answers := []models.QuizAnswer{
		{QuestionID: "q5", SelectedAnswer: 0},
		{QuestionID: "q3", SelectedAnswer: 2},
		{QuestionID: "q1", SelectedAnswer: 0},
	}

	first := Evaluate(fiveQuestions(), answers)
	for i := 0; i < 10; i++ {
		if got := Evaluate(fiveQuestions(), answers); !reflect.DeepEqual(got, first) {
			t.Fatalf("Evaluate not deterministic: %+v != %+v", got, first)
		}
	}
	if first.Score != 3 || !first.Passed {
		t.Errorf("got score=%d passed=%v, want score=3 passed=true", first.Score, first.Passed)
	}
}

func TestEvaluateNoQuestions(t *testing.T) {
	result := Evaluate(nil, []models.QuizAnswer{{QuestionID: "q1", SelectedAnswer: 0}})
	if result.Score != 0 || result.TotalQuestions != 0 || result.Passed {
		t.Errorf("unexpected result for empty question set: %+v", result)
	}
}
