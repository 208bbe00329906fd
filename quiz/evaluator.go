package quiz

import "literacy_app_backend/models"

// PassThreshold is the fraction of correct answers required to pass a quiz.
const PassThreshold = 0.60

// Result is the outcome of one scored submission. CorrectAnswers lists the
// canonical correct option indices in catalog order, revealed only after
// submission for the review screen.
type Result struct {
	Score          int   `json:"score"`
	TotalQuestions int   `json:"total_questions"`
	Passed         bool  `json:"passed"`
	CorrectAnswers []int `json:"correct_answers"`
}

// Evaluate scores a submission against the module's question set. An answer
// counts as correct only when its selected index equals the stored one;
// unanswered questions count as incorrect. If a question id appears more than
// once in the submission, the first occurrence wins.
func Evaluate(questions []models.Question, answers []models.QuizAnswer) Result {
	result := Result{
		TotalQuestions: len(questions),
		CorrectAnswers: make([]int, 0, len(questions)),
	}

	for _, q := range questions {
		result.CorrectAnswers = append(result.CorrectAnswers, q.CorrectAnswer)
		for _, a := range answers {
			if a.QuestionID != q.ID {
				continue
			}
			if a.SelectedAnswer == q.CorrectAnswer {
				result.Score++
			}
			break
		}
	}

	if result.TotalQuestions > 0 {
		result.Passed = float64(result.Score)/float64(result.TotalQuestions) >= PassThreshold
	}
	return result
}
