package scoring

import (
	"encoding/json"
	"testing"

	"github.com/Aditya122221/ElevateAI-sub001/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(s string) json.RawMessage {
	return json.RawMessage(s)
}

func twoQuestionTest() *models.Test {
	return &models.Test{
		Title:        "Go Basics",
		TotalPoints:  2,
		PassingScore: 50,
		Questions: models.QuestionList{
			{ID: "q1", Text: "What does := do?", Type: models.QuestionMultipleChoice, CorrectAnswer: raw(`"B"`), Points: 1},
			{ID: "q2", Text: "Go has classes.", Type: models.QuestionTrueFalse, CorrectAnswer: raw(`false`), Points: 1},
		},
	}
}

func TestGrade_OneCorrectOneWrong(t *testing.T) {
	test := twoQuestionTest()

	summary := Grade(test, []SubmittedAnswer{
		{QuestionID: "q1", Answer: raw(`"B"`), TimeSpent: 20},
		{QuestionID: "q2", Answer: raw(`true`), TimeSpent: 10},
	})

	assert.Equal(t, 1, summary.Score)
	assert.Equal(t, 2, summary.TotalPoints)
	assert.Equal(t, 50.0, summary.Percentage)
	assert.True(t, summary.Passed)

	require.Len(t, summary.Answers, 2)
	assert.True(t, summary.Answers[0].IsCorrect)
	assert.Equal(t, 1, summary.Answers[0].Points)
	assert.False(t, summary.Answers[1].IsCorrect)
	assert.Equal(t, 0, summary.Answers[1].Points)
}

func TestGrade_AllCorrect(t *testing.T) {
	test := twoQuestionTest()

	summary := Grade(test, []SubmittedAnswer{
		{QuestionID: "q1", Answer: raw(`"B"`)},
		{QuestionID: "q2", Answer: raw(`false`)},
	})

	assert.Equal(t, 2, summary.Score)
	assert.Equal(t, 100.0, summary.Percentage)
	assert.True(t, summary.Passed)
}

func TestGrade_UnknownQuestionIgnored(t *testing.T) {
	test := twoQuestionTest()

	summary := Grade(test, []SubmittedAnswer{
		{QuestionID: "nope", Answer: raw(`"B"`)},
		{QuestionID: "q2", Answer: raw(`false`)},
	})

	// The unknown answer is dropped, not an error, and contributes nothing.
	require.Len(t, summary.Answers, 1)
	assert.Equal(t, "q2", summary.Answers[0].QuestionID)
	assert.Equal(t, 1, summary.Score)
}

func TestGrade_NoPartialCredit(t *testing.T) {
	test := &models.Test{
		TotalPoints:  5,
		PassingScore: 60,
		Questions: models.QuestionList{
			{ID: "q1", Type: models.QuestionMultipleChoice, CorrectAnswer: raw(`["A","C"]`), Points: 5},
		},
	}

	summary := Grade(test, []SubmittedAnswer{
		{QuestionID: "q1", Answer: raw(`["A"]`)},
	})

	assert.Equal(t, 0, summary.Score)
	assert.False(t, summary.Passed)
}

func TestGrade_StructuralEquality(t *testing.T) {
	test := &models.Test{
		TotalPoints:  1,
		PassingScore: 100,
		Questions: models.QuestionList{
			{ID: "q1", Type: models.QuestionCode, CorrectAnswer: raw(`{"lang":"go","value":42}`), Points: 1},
		},
	}

	// Whitespace and key order must not matter.
	summary := Grade(test, []SubmittedAnswer{
		{QuestionID: "q1", Answer: raw(`{ "value": 42, "lang": "go" }`)},
	})

	assert.Equal(t, 1, summary.Score)
	assert.True(t, summary.Passed)
}

func TestGrade_TypeMismatchIsWrong(t *testing.T) {
	test := &models.Test{
		TotalPoints:  1,
		PassingScore: 50,
		Questions: models.QuestionList{
			{ID: "q1", Type: models.QuestionFillBlank, CorrectAnswer: raw(`"42"`), Points: 1},
		},
	}

	// Number 42 is not string "42"; no type coercion.
	summary := Grade(test, []SubmittedAnswer{
		{QuestionID: "q1", Answer: raw(`42`)},
	})

	assert.Equal(t, 0, summary.Score)
}

func TestGrade_UnsetPointsCountAsOne(t *testing.T) {
	test := &models.Test{
		TotalPoints:  1,
		PassingScore: 100,
		Questions: models.QuestionList{
			{ID: "q1", Type: models.QuestionTrueFalse, CorrectAnswer: raw(`true`)},
		},
	}

	summary := Grade(test, []SubmittedAnswer{
		{QuestionID: "q1", Answer: raw(`true`)},
	})

	assert.Equal(t, 1, summary.Score)
}

func TestGrade_EmptySubmission(t *testing.T) {
	test := twoQuestionTest()

	summary := Grade(test, nil)

	assert.Empty(t, summary.Answers)
	assert.Equal(t, 0, summary.Score)
	assert.Equal(t, 0.0, summary.Percentage)
	assert.False(t, summary.Passed)
}

func TestPercentage_Rounding(t *testing.T) {
	assert.Equal(t, 33.33, Percentage(1, 3))
	assert.Equal(t, 66.67, Percentage(2, 3))
	assert.Equal(t, 100.0, Percentage(3, 3))
	assert.Equal(t, 0.0, Percentage(0, 3))
}

func TestPercentage_ZeroTotalPoints(t *testing.T) {
	// A test with no scored questions grades as 0 instead of dividing by zero.
	assert.Equal(t, 0.0, Percentage(0, 0))
	assert.Equal(t, 0.0, Percentage(5, 0))
}

func TestPassedThreshold(t *testing.T) {
	test := &models.Test{
		TotalPoints:  4,
		PassingScore: 75,
		Questions: models.QuestionList{
			{ID: "q1", CorrectAnswer: raw(`"A"`), Points: 1},
			{ID: "q2", CorrectAnswer: raw(`"A"`), Points: 1},
			{ID: "q3", CorrectAnswer: raw(`"A"`), Points: 1},
			{ID: "q4", CorrectAnswer: raw(`"A"`), Points: 1},
		},
	}

	// 3/4 = 75.00; passing is >=, not >.
	summary := Grade(test, []SubmittedAnswer{
		{QuestionID: "q1", Answer: raw(`"A"`)},
		{QuestionID: "q2", Answer: raw(`"A"`)},
		{QuestionID: "q3", Answer: raw(`"A"`)},
		{QuestionID: "q4", Answer: raw(`"B"`)},
	})

	assert.Equal(t, 75.0, summary.Percentage)
	assert.True(t, summary.Passed)
}
