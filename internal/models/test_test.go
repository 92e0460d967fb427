package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotalPoints(t *testing.T) {
	test := Test{
		Questions: QuestionList{
			{ID: "a", Points: 2},
			{ID: "b", Points: 3},
			{ID: "c"}, // unset points count as 1
		},
	}
	assert.Equal(t, 6, test.ComputeTotalPoints())
}

func TestComputeTotalPoints_Empty(t *testing.T) {
	test := Test{}
	assert.Equal(t, 0, test.ComputeTotalPoints())
}

func TestSanitizedQuestions(t *testing.T) {
	test := Test{
		Questions: QuestionList{
			{ID: "a", Text: "Q1", CorrectAnswer: json.RawMessage(`"A"`), Points: 1},
			{ID: "b", Text: "Q2", CorrectAnswer: json.RawMessage(`true`), Points: 2},
		},
	}

	sanitized := test.SanitizedQuestions()
	require.Len(t, sanitized, 2)
	for _, q := range sanitized {
		assert.Nil(t, q.CorrectAnswer)
	}

	// The original set must keep its answer key.
	assert.NotNil(t, test.Questions[0].CorrectAnswer)

	// Stripped answers must not serialize at all.
	payload, err := json.Marshal(sanitized)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "correctAnswer")
}

func TestQuestionByID(t *testing.T) {
	test := Test{
		Questions: QuestionList{
			{ID: "a", Text: "first"},
			{ID: "b", Text: "second"},
		},
	}

	q := test.QuestionByID("b")
	require.NotNil(t, q)
	assert.Equal(t, "second", q.Text)

	assert.Nil(t, test.QuestionByID("missing"))
}

func TestQuestionList_RoundTrip(t *testing.T) {
	original := QuestionList{
		{ID: "a", Text: "Q1", Type: QuestionMultipleChoice, Options: []string{"x", "y"}, CorrectAnswer: json.RawMessage(`"x"`), Points: 2},
	}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned QuestionList
	require.NoError(t, scanned.Scan([]byte(value.(string))))
	require.Len(t, scanned, 1)
	assert.Equal(t, original[0].ID, scanned[0].ID)
	assert.JSONEq(t, string(original[0].CorrectAnswer), string(scanned[0].CorrectAnswer))
}

func TestValidCategoryAndDifficulty(t *testing.T) {
	assert.True(t, ValidCategory("programming"))
	assert.False(t, ValidCategory("astrology"))
	assert.True(t, ValidDifficulty("expert"))
	assert.False(t, ValidDifficulty("impossible"))
}
