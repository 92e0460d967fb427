package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// CareerAdvice answers a free-form career question in the context of
// the user's profile. The bool reports whether the model answered; when
// false the returned advice is the fixed fallback.
func (s *AIService) CareerAdvice(ctx context.Context, data ProfileData, question string) (string, bool) {
	raw, err := s.gen.Generate(ctx, BuildCareerAdvicePrompt(data, question))
	if err != nil {
		s.log.Warn("AI service unavailable, using fallback career advice", zap.Error(err))
		return fallbackCareerAdvice(data), false
	}
	return strings.TrimSpace(raw), true
}

func fallbackCareerAdvice(data ProfileData) string {
	role := "professional"
	if data.JobRoles != nil && len(data.JobRoles.DesiredJobRoles) > 0 {
		role = data.JobRoles.DesiredJobRoles[0]
	}
	return fmt.Sprintf("Based on your goal of becoming a %s, I recommend focusing on building strong technical foundations, gaining hands-on experience with projects, and networking within your industry. Consider taking relevant courses and certifications to advance your career.", role)
}

// BuildCareerAdvicePrompt frames the question with the profile summary.
func BuildCareerAdvicePrompt(data ProfileData, question string) string {
	var b strings.Builder

	b.WriteString("You are a career advisor. A user with the following profile is asking for advice:\n\n")
	b.WriteString("Profile Summary:\n")
	fmt.Fprintf(&b, "- Desired Roles: %s\n", joinOrDefault(data.JobRoles.DesiredJobRoles))
	fmt.Fprintf(&b, "- Programming Languages: %s\n", joinOrDefault(data.Skills.Languages))
	fmt.Fprintf(&b, "- Technologies: %s\n", joinOrDefault(data.Skills.Technologies))
	fmt.Fprintf(&b, "- Frameworks: %s\n\n", joinOrDefault(data.Skills.Frameworks))

	fmt.Fprintf(&b, "User's Question: %s\n\n", question)

	b.WriteString("Please provide thoughtful, personalized career advice based on their profile and question.\n")
	b.WriteString("Keep your response practical and actionable, focusing on specific steps they can take.\n")

	return b.String()
}

// RecommendNames asks the model to pick entries from a candidate list.
// Both unavailability and unparsable output degrade to the given
// fallback selection, reported via the bool.
func (s *AIService) RecommendNames(ctx context.Context, prompt string, fallback []string) ([]string, bool) {
	raw, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.log.Warn("AI service unavailable, using fallback recommendations", zap.Error(err))
		return fallback, false
	}

	block, ok := ExtractJSONArray(raw)
	if !ok {
		s.log.Warn("No JSON array found in AI recommendation response")
		return fallback, false
	}

	var names []string
	if err := json.Unmarshal([]byte(block), &names); err != nil {
		s.log.Warn("Failed to parse AI recommendation names", zap.Error(err))
		return fallback, false
	}
	return names, true
}

// BuildCertificateRecommendationPrompt asks for the most relevant
// certificate names out of the active catalog.
func BuildCertificateRecommendationPrompt(data ProfileData, catalog []string) string {
	return buildSelectionPrompt(data, "certificates", catalog, 8)
}

// BuildTestRecommendationPrompt asks for the most relevant test titles
// out of the active catalog.
func BuildTestRecommendationPrompt(data ProfileData, catalog []string) string {
	return buildSelectionPrompt(data, "tests", catalog, 6)
}

func buildSelectionPrompt(data ProfileData, kind string, catalog []string, max int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Based on the user's profile, recommend the most relevant %s from the following list:\n\n", kind)
	b.WriteString("User Profile:\n")
	fmt.Fprintf(&b, "- Desired Roles: %s\n", joinOrDefault(data.JobRoles.DesiredJobRoles))
	fmt.Fprintf(&b, "- Programming Languages: %s\n", joinOrDefault(data.Skills.Languages))
	fmt.Fprintf(&b, "- Technologies: %s\n\n", joinOrDefault(data.Skills.Technologies))

	fmt.Fprintf(&b, "Available %s:\n", kind)
	for _, line := range catalog {
		fmt.Fprintf(&b, "- %s\n", line)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Return ONLY a JSON array with the EXACT names from the list above. Do not modify or paraphrase them.\n")
	fmt.Fprintf(&b, "Return maximum %d recommendations, prioritized by relevance.\n\n", max)
	b.WriteString(`Format: ["Name 1", "Name 2", "Name 3"]` + "\n")

	return b.String()
}

// ExtractJSONArray finds the first balanced top-level [...] block in
// free text. Brackets inside JSON strings are ignored; markdown code
// fences around the array are tolerated.
func ExtractJSONArray(s string) (string, bool) {
	s = stripCodeFences(s)

	start := strings.IndexByte(s, '[')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
