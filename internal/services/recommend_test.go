package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Aditya122221/ElevateAI-sub001/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeGenerator returns a canned response or error.
type fakeGenerator struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func sampleProfile() ProfileData {
	return ProfileData{
		Basic: &models.BasicDetails{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			LinkedIn:  "linkedin.com/in/ada",
			GitHub:    "github.com/ada",
		},
		Skills: &models.Skills{
			Languages:  []string{"Go", "Python"},
			Frameworks: []string{"Gin"},
		},
		JobRoles: &models.JobRoles{
			DesiredJobRoles: []string{"Backend Engineer"},
		},
	}
}

func TestAnalyzeProfile_ParsesModelOutput(t *testing.T) {
	gen := &fakeGenerator{response: `Sure! Here are my recommendations:
{
  "suggestedSkills": ["Kubernetes"],
  "suggestedCertifications": ["CKA"],
  "careerPath": ["Engineer", "Senior Engineer"],
  "skillGaps": ["Distributed systems"],
  "analysis": "Strong fundamentals."
}
Hope that helps!`}
	svc := NewAIService(gen, zap.NewNop())

	rec, available := svc.AnalyzeProfile(context.Background(), sampleProfile())

	assert.True(t, available)
	assert.Equal(t, []string{"Kubernetes"}, rec.SuggestedSkills)
	assert.Equal(t, "Strong fundamentals.", rec.Analysis)
}

func TestAnalyzeProfile_UnavailableFallsBack(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection refused")}
	svc := NewAIService(gen, zap.NewNop())

	rec, available := svc.AnalyzeProfile(context.Background(), sampleProfile())

	assert.False(t, available)
	assert.Equal(t, FallbackRecommendation(), rec)
}

func TestAnalyzeProfile_UnparsableFallsBack(t *testing.T) {
	gen := &fakeGenerator{response: "I cannot answer in JSON, sorry."}
	svc := NewAIService(gen, zap.NewNop())

	rec, available := svc.AnalyzeProfile(context.Background(), sampleProfile())

	assert.False(t, available)
	assert.Equal(t, FallbackRecommendation(), rec)
}

func TestBuildProfilePrompt_Deterministic(t *testing.T) {
	data := sampleProfile()
	first := BuildProfilePrompt(data)
	second := BuildProfilePrompt(data)
	assert.Equal(t, first, second)

	assert.Contains(t, first, "Ada Lovelace")
	assert.Contains(t, first, "Backend Engineer")
	assert.Contains(t, first, "Go, Python")
	// Optional sections are reported as missing, not omitted.
	assert.Contains(t, first, "No projects specified")
	assert.Contains(t, first, "No experience specified")
}

func TestGenerateQuestions_Success(t *testing.T) {
	gen := &fakeGenerator{response: `{
  "questions": [
    {
      "question": "What does goroutine mean?",
      "options": {"A": "Thread", "B": "Lightweight thread", "C": "Process", "D": "Fiber"},
      "correctAnswer": "B",
      "explanation": "Goroutines are lightweight threads managed by the Go runtime."
    }
  ]
}`}
	svc := NewAIService(gen, zap.NewNop())

	questions, available, err := svc.GenerateQuestions(context.Background(), "Go", "beginner", 1)
	require.NoError(t, err)
	assert.True(t, available)
	require.Len(t, questions, 1)
	assert.Equal(t, "B", questions[0].CorrectAnswer)
}

func TestGenerateQuestions_UnavailableReturnsFallback(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("timeout")}
	svc := NewAIService(gen, zap.NewNop())

	questions, available, err := svc.GenerateQuestions(context.Background(), "Go", "", 0)
	require.NoError(t, err)
	assert.False(t, available)
	require.Len(t, questions, 1)
	assert.Contains(t, questions[0].Question, "Go")
}

func TestGenerateQuestions_UnparsableIsError(t *testing.T) {
	// Unlike AnalyzeProfile, a response with no JSON surfaces as an error.
	gen := &fakeGenerator{response: "no json here"}
	svc := NewAIService(gen, zap.NewNop())

	_, available, err := svc.GenerateQuestions(context.Background(), "Go", "beginner", 3)
	assert.True(t, available)
	assert.ErrorIs(t, err, ErrUnparsableResponse)
}

func TestGenerateQuestions_PromptDefaults(t *testing.T) {
	gen := &fakeGenerator{response: `{"questions": []}`}
	svc := NewAIService(gen, zap.NewNop())

	_, _, err := svc.GenerateQuestions(context.Background(), "SQL", "", 0)
	require.NoError(t, err)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "5 intermediate level questions about SQL")
}

func TestExtractJSONObject(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"surrounded by prose", `Here: {"a":1} done.`, `{"a":1}`, true},
		{"nested braces", `{"a":{"b":2}}`, `{"a":{"b":2}}`, true},
		{"brace inside string", `{"a":"}"}`, `{"a":"}"}`, true},
		{"escaped quote inside string", `{"a":"\"}"}`, `{"a":"\"}"}`, true},
		{"markdown fenced", "```json\n{\"a\":1}\n```", `{"a":1}`, true},
		{"unbalanced", `{"a":1`, "", false},
		{"no object", `plain text`, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractJSONObject(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
