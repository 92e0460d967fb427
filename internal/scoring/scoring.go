// Package scoring grades submitted answers against a test's answer key.
package scoring

import (
	"encoding/json"
	"math"
	"reflect"

	"github.com/Aditya122221/ElevateAI-sub001/internal/models"
)

// SubmittedAnswer is one answer as sent by the client.
type SubmittedAnswer struct {
	QuestionID string          `json:"questionId"`
	Answer     json.RawMessage `json:"answer"`
	TimeSpent  int             `json:"timeSpent"`
}

// Summary is the scored outcome of one submission.
type Summary struct {
	Answers     models.AnswerRecordList
	Score       int
	TotalPoints int
	Percentage  float64
	Passed      bool
}

// Grade scores a submission. Answers referencing unknown question ids
// are dropped, not rejected. Correctness is decided by deep structural
// equality between the submitted value and the stored correct answer.
func Grade(test *models.Test, submitted []SubmittedAnswer) Summary {
	records := make(models.AnswerRecordList, 0, len(submitted))
	score := 0

	for _, answer := range submitted {
		question := test.QuestionByID(answer.QuestionID)
		if question == nil {
			continue
		}

		correct := answersEqual(answer.Answer, question.CorrectAnswer)
		points := 0
		if correct {
			points = question.Points
			if points <= 0 {
				points = 1
			}
		}
		score += points

		records = append(records, models.AnswerRecord{
			QuestionID: answer.QuestionID,
			Answer:     answer.Answer,
			IsCorrect:  correct,
			Points:     points,
			TimeSpent:  answer.TimeSpent,
		})
	}

	percentage := Percentage(score, test.TotalPoints)
	return Summary{
		Answers:     records,
		Score:       score,
		TotalPoints: test.TotalPoints,
		Percentage:  percentage,
		Passed:      percentage >= test.PassingScore,
	}
}

// Percentage returns score/total as a percent rounded to 2 decimals.
// A test with no scored questions grades as 0.
func Percentage(score, totalPoints int) float64 {
	if totalPoints <= 0 {
		return 0
	}
	return math.Round(float64(score)/float64(totalPoints)*100*100) / 100
}

// answersEqual compares two JSON values structurally, so "B" == "B"
// and [1,2] == [1,2] regardless of whitespace or key order.
func answersEqual(submitted, correct json.RawMessage) bool {
	if len(submitted) == 0 || len(correct) == 0 {
		return false
	}
	var a, b interface{}
	if err := json.Unmarshal(submitted, &a); err != nil {
		return false
	}
	if err := json.Unmarshal(correct, &b); err != nil {
		return false
	}
	return reflect.DeepEqual(a, b)
}
