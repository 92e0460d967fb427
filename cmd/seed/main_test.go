package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSeedTest() seedTest {
	return seedTest{
		Title:        "Go Fundamentals",
		Category:     "programming",
		Difficulty:   "beginner",
		Duration:     15,
		PassingScore: 60,
		Questions: []seedQuestion{
			{Question: "Q1", Type: "true-false", CorrectAnswer: true, Points: 2},
			{Question: "Q2", Type: "fill-blank", CorrectAnswer: "go"},
		},
	}
}

func TestBuildTest(t *testing.T) {
	test, err := buildTest(validSeedTest())
	require.NoError(t, err)

	assert.Equal(t, "Go Fundamentals", test.Title)
	assert.Equal(t, 3, test.MaxAttempts)
	assert.True(t, test.IsActive)
	require.Len(t, test.Questions, 2)
	assert.NotEmpty(t, test.Questions[0].ID)
	// Unset points default to 1, and the total reflects it.
	assert.Equal(t, 1, test.Questions[1].Points)
	assert.Equal(t, 3, test.TotalPoints)
}

func TestBuildTest_InvalidCategory(t *testing.T) {
	def := validSeedTest()
	def.Category = "astrology"

	_, err := buildTest(def)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "astrology")
}

func TestBuildTest_InvalidDifficulty(t *testing.T) {
	def := validSeedTest()
	def.Difficulty = "impossible"

	_, err := buildTest(def)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "impossible")
}
