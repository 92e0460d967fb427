package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCareerAdvice_ReturnsModelAnswer(t *testing.T) {
	gen := &fakeGenerator{response: "  Focus on distributed systems and take on a mentorship role.  "}
	svc := NewAIService(gen, zap.NewNop())

	advice, available := svc.CareerAdvice(context.Background(), sampleProfile(), "How do I grow into a senior role?")

	assert.True(t, available)
	assert.Equal(t, "Focus on distributed systems and take on a mentorship role.", advice)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "How do I grow into a senior role?")
	assert.Contains(t, gen.prompts[0], "Backend Engineer")
}

func TestCareerAdvice_UnavailableFallsBack(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection refused")}
	svc := NewAIService(gen, zap.NewNop())

	advice, available := svc.CareerAdvice(context.Background(), sampleProfile(), "What next?")

	assert.False(t, available)
	// Fallback advice is grounded in the first desired role.
	assert.Contains(t, advice, "Backend Engineer")
}

func TestRecommendNames_ParsesModelOutput(t *testing.T) {
	gen := &fakeGenerator{response: `Here you go: ["AWS Certified Developer", "CKA"] hope it helps`}
	svc := NewAIService(gen, zap.NewNop())

	names, available := svc.RecommendNames(context.Background(), "prompt", []string{"fallback"})

	assert.True(t, available)
	assert.Equal(t, []string{"AWS Certified Developer", "CKA"}, names)
}

func TestRecommendNames_UnavailableReturnsFallback(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("timeout")}
	svc := NewAIService(gen, zap.NewNop())

	names, available := svc.RecommendNames(context.Background(), "prompt", []string{"a", "b"})

	assert.False(t, available)
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestRecommendNames_UnparsableReturnsFallback(t *testing.T) {
	gen := &fakeGenerator{response: "I would pick the first two."}
	svc := NewAIService(gen, zap.NewNop())

	names, available := svc.RecommendNames(context.Background(), "prompt", []string{"a"})

	assert.False(t, available)
	assert.Equal(t, []string{"a"}, names)
}

func TestBuildCertificateRecommendationPrompt(t *testing.T) {
	prompt := BuildCertificateRecommendationPrompt(sampleProfile(), []string{
		"AWS Certified Developer (cloud-computing, intermediate): Cloud development.",
	})

	assert.Contains(t, prompt, "Backend Engineer")
	assert.Contains(t, prompt, "AWS Certified Developer (cloud-computing, intermediate)")
	assert.Contains(t, prompt, "maximum 8")
	assert.Contains(t, prompt, "JSON array")
}

func TestBuildTestRecommendationPrompt(t *testing.T) {
	prompt := BuildTestRecommendationPrompt(sampleProfile(), []string{
		"Go Fundamentals (programming, beginner): Core Go syntax.",
	})

	assert.Contains(t, prompt, "Go Fundamentals (programming, beginner)")
	assert.Contains(t, prompt, "maximum 6")
}

func TestExtractJSONArray(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"bare array", `["a","b"]`, `["a","b"]`, true},
		{"surrounded by prose", `Picks: ["a"] done.`, `["a"]`, true},
		{"nested arrays", `[["a"],["b"]]`, `[["a"],["b"]]`, true},
		{"bracket inside string", `["a]b"]`, `["a]b"]`, true},
		{"markdown fenced", "```json\n[\"a\"]\n```", `["a"]`, true},
		{"unbalanced", `["a"`, "", false},
		{"no array", `plain text`, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractJSONArray(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
