package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Aditya122221/ElevateAI-sub001/internal/models"

	"go.uber.org/zap"
)

// ErrUnparsableResponse is returned when the model answered but no JSON
// object could be extracted from its output.
var ErrUnparsableResponse = errors.New("no parsable JSON object in AI response")

// AIService wraps a Generator with prompt assembly and response
// parsing. AI output is best-effort enrichment: a failed call never
// propagates to the caller of AnalyzeProfile.
type AIService struct {
	gen Generator
	log *zap.Logger
}

func NewAIService(gen Generator, log *zap.Logger) *AIService {
	return &AIService{gen: gen, log: log}
}

// ProfileData bundles the sections fed into the analysis prompt.
// Basic, Skills and JobRoles are required; the rest are best-effort.
type ProfileData struct {
	Basic      *models.BasicDetails
	Skills     *models.Skills
	Projects   *models.Projects
	Experience *models.Experience
	JobRoles   *models.JobRoles
}

type Recommendation struct {
	SuggestedSkills         []string `json:"suggestedSkills"`
	SuggestedCertifications []string `json:"suggestedCertifications"`
	CareerPath              []string `json:"careerPath"`
	SkillGaps               []string `json:"skillGaps"`
	Analysis                string   `json:"analysis"`
}

// FallbackRecommendation is the fixed object substituted whenever the
// generation service is unavailable or its output cannot be parsed.
func FallbackRecommendation() Recommendation {
	return Recommendation{
		SuggestedSkills: []string{
			"Advanced JavaScript/TypeScript",
			"Cloud Computing (AWS/Azure)",
			"Database Design & Optimization",
			"System Architecture",
			"DevOps & CI/CD",
		},
		SuggestedCertifications: []string{
			"AWS Certified Developer",
			"Google Cloud Professional",
			"Microsoft Azure Fundamentals",
		},
		CareerPath: []string{
			"Junior Developer",
			"Mid-level Developer",
			"Senior Developer",
			"Tech Lead/Architect",
		},
		SkillGaps: []string{
			"Advanced system design",
			"Cloud platform expertise",
			"Leadership skills",
		},
		Analysis: "Based on your profile, focus on advancing your technical skills and gaining cloud computing experience to progress in your career.",
	}
}

// AnalyzeProfile runs the profile through the model. The bool reports
// whether a usable AI answer was obtained; when false the returned
// recommendation is the fixed fallback.
func (s *AIService) AnalyzeProfile(ctx context.Context, data ProfileData) (Recommendation, bool) {
	prompt := BuildProfilePrompt(data)

	raw, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.log.Warn("AI service unavailable, using fallback recommendations", zap.Error(err))
		return FallbackRecommendation(), false
	}

	block, ok := ExtractJSONObject(raw)
	if !ok {
		s.log.Warn("No JSON object found in AI response")
		return FallbackRecommendation(), false
	}

	var rec Recommendation
	if err := json.Unmarshal([]byte(block), &rec); err != nil {
		s.log.Warn("Failed to parse AI recommendation", zap.Error(err))
		return FallbackRecommendation(), false
	}
	return rec, true
}

// GeneratedQuestion is the shape the model is asked to produce.
type GeneratedQuestion struct {
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correctAnswer"`
	Explanation   string            `json:"explanation"`
}

type generatedQuestionSet struct {
	Questions []GeneratedQuestion `json:"questions"`
}

// GenerateQuestions asks the model for count questions on a topic. An
// unreachable service degrades to a single fallback question; a
// response that cannot be parsed is an error. The asymmetry with
// AnalyzeProfile is deliberate.
func (s *AIService) GenerateQuestions(ctx context.Context, topic, difficulty string, count int) ([]GeneratedQuestion, bool, error) {
	if count <= 0 {
		count = 5
	}
	if difficulty == "" {
		difficulty = "intermediate"
	}

	raw, err := s.gen.Generate(ctx, buildQuestionPrompt(topic, difficulty, count))
	if err != nil {
		s.log.Warn("AI service unavailable, returning fallback question", zap.Error(err))
		return fallbackQuestions(topic), false, nil
	}

	block, ok := ExtractJSONObject(raw)
	if !ok {
		return nil, true, ErrUnparsableResponse
	}

	var set generatedQuestionSet
	if err := json.Unmarshal([]byte(block), &set); err != nil {
		s.log.Warn("Failed to parse generated questions", zap.Error(err))
		return nil, true, ErrUnparsableResponse
	}
	return set.Questions, true, nil
}

func fallbackQuestions(topic string) []GeneratedQuestion {
	return []GeneratedQuestion{
		{
			Question: fmt.Sprintf("What is the primary purpose of %s?", topic),
			Options: map[string]string{
				"A": "Option A",
				"B": "Option B",
				"C": "Option C",
				"D": "Option D",
			},
			CorrectAnswer: "A",
			Explanation:   "This is a fallback question generated when AI service is unavailable.",
		},
	}
}

// BuildProfilePrompt renders the profile into the analysis prompt.
// Output is deterministic for a given profile.
func BuildProfilePrompt(data ProfileData) string {
	var b strings.Builder

	b.WriteString("Analyze the following user profile and provide personalized career recommendations:\n\n")

	b.WriteString("Personal Information:\n")
	fmt.Fprintf(&b, "- Name: %s %s\n", data.Basic.FirstName, data.Basic.LastName)
	fmt.Fprintf(&b, "- Email: %s\n", data.Basic.Email)
	fmt.Fprintf(&b, "- LinkedIn: %s\n", data.Basic.LinkedIn)
	fmt.Fprintf(&b, "- GitHub: %s\n", data.Basic.GitHub)
	fmt.Fprintf(&b, "- Bio: %s\n\n", orDefault(data.Basic.Bio, "Not specified"))

	b.WriteString("Desired Job Roles:\n")
	fmt.Fprintf(&b, "- %s\n\n", strings.Join(data.JobRoles.DesiredJobRoles, ", "))

	b.WriteString("Technical Skills:\n")
	fmt.Fprintf(&b, "- Programming Languages: %s\n", joinOrDefault(data.Skills.Languages))
	fmt.Fprintf(&b, "- Technologies: %s\n", joinOrDefault(data.Skills.Technologies))
	fmt.Fprintf(&b, "- Frameworks: %s\n", joinOrDefault(data.Skills.Frameworks))
	fmt.Fprintf(&b, "- Tools: %s\n", joinOrDefault(data.Skills.Tools))
	fmt.Fprintf(&b, "- Soft Skills: %s\n\n", joinOrDefault(data.Skills.SoftSkills))

	b.WriteString("Projects:\n")
	if data.Projects != nil && len(data.Projects.Projects) > 0 {
		for _, p := range data.Projects.Projects {
			fmt.Fprintf(&b, "- %s\n", p.Name)
			fmt.Fprintf(&b, "  Details: %s\n", strings.Join(p.Details, ", "))
			fmt.Fprintf(&b, "  Technologies: %s\n", joinOrDefault(p.SkillsUsed))
			fmt.Fprintf(&b, "  Duration: %s to %s\n", p.StartDate, orDefault(p.EndDate, "Present"))
		}
	} else {
		b.WriteString("No projects specified\n")
	}
	b.WriteString("\n")

	b.WriteString("Experience:\n")
	if data.Experience != nil && len(data.Experience.Experiences) > 0 {
		for _, e := range data.Experience.Experiences {
			fmt.Fprintf(&b, "- %s at %s\n", e.Position, e.CompanyName)
			fmt.Fprintf(&b, "  Duration: %s to %s\n", e.StartDate, orDefault(e.EndDate, "Present"))
			fmt.Fprintf(&b, "  Skills: %s\n", joinOrDefault(e.Skills))
			fmt.Fprintf(&b, "  Achievements: %s\n", joinOrDefault(e.Achievements))
		}
	} else {
		b.WriteString("No experience specified\n")
	}
	b.WriteString("\n")

	b.WriteString(`Based on this profile, please provide:
1. 5-7 specific technical skills they should develop to advance in their desired role
2. 3-5 relevant certifications that would boost their career
3. A suggested career progression path with 3-4 steps
4. Any gaps in their current skill set that need attention

Format your response as a JSON object with the following structure:
{
  "suggestedSkills": ["skill1", "skill2", "skill3"],
  "suggestedCertifications": ["cert1", "cert2", "cert3"],
  "careerPath": ["step1", "step2", "step3"],
  "skillGaps": ["gap1", "gap2", "gap3"],
  "analysis": "Brief analysis of their profile and recommendations"
}
`)

	return b.String()
}

func buildQuestionPrompt(topic, difficulty string, count int) string {
	return fmt.Sprintf(`Generate %d %s level questions about %s.

Each question should have:
- A clear, specific question
- 4 multiple choice options (A, B, C, D)
- One correct answer
- A brief explanation

Format as JSON:
{
  "questions": [
    {
      "question": "Question text here?",
      "options": {
        "A": "Option A",
        "B": "Option B",
        "C": "Option C",
        "D": "Option D"
      },
      "correctAnswer": "A",
      "explanation": "Brief explanation of why this is correct"
    }
  ]
}
`, count, difficulty, topic)
}

// ExtractJSONObject finds the first balanced top-level {...} block in
// free text. Braces inside JSON strings are ignored. Markdown code
// fences around the object are tolerated.
func ExtractJSONObject(s string) (string, bool) {
	s = stripCodeFences(s)

	start := strings.IndexByte(s, '{')
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
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// stripCodeFences removes a surrounding ```json ... ``` block if present.
func stripCodeFences(s string) string {
	clean := strings.TrimSpace(s)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func joinOrDefault(items []string) string {
	if len(items) == 0 {
		return "None specified"
	}
	return strings.Join(items, ", ")
}
