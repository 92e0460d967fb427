package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/lib/pq"
)

// Test categories and difficulties accepted by the catalog.
var (
	TestCategories = []string{
		"programming", "data-science", "cloud-computing", "cybersecurity",
		"project-management", "design", "marketing", "business",
		"soft-skills", "general",
	}
	TestDifficulties = []string{"beginner", "intermediate", "advanced", "expert"}
)

const (
	QuestionMultipleChoice = "multiple-choice"
	QuestionTrueFalse      = "true-false"
	QuestionFillBlank      = "fill-blank"
	QuestionCode           = "code"
)

// Question is stored inline on the test as part of a JSONB column.
// CorrectAnswer is an opaque JSON value whose shape depends on the
// question type; it is omitted from user-facing payloads.
type Question struct {
	ID            string          `json:"id"`
	Text          string          `json:"question"`
	Type          string          `json:"type"`
	Options       []string        `json:"options,omitempty"`
	CorrectAnswer json.RawMessage `json:"correctAnswer,omitempty"`
	Explanation   string          `json:"explanation,omitempty"`
	Points        int             `json:"points"`
	TimeLimit     int             `json:"timeLimit,omitempty"`
}

// QuestionList serializes the whole question set as one JSONB document.
type QuestionList []Question

func (q QuestionList) Value() (driver.Value, error) {
	if q == nil {
		return "[]", nil
	}
	b, err := json.Marshal(q)
	return string(b), err
}

func (q *QuestionList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, q)
	case string:
		return json.Unmarshal([]byte(v), q)
	case nil:
		*q = nil
		return nil
	}
	return errors.New("unsupported type for QuestionList")
}

type Test struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Title         string         `gorm:"not null" json:"title"`
	Description   string         `json:"description"`
	Category      string         `gorm:"index;not null" json:"category"`
	Difficulty    string         `gorm:"index;not null" json:"difficulty"`
	Duration      int            `json:"duration"` // minutes
	Questions     QuestionList   `gorm:"type:jsonb" json:"questions,omitempty"`
	TotalPoints   int            `json:"totalPoints"`
	PassingScore  float64        `json:"passingScore"` // percent
	MaxAttempts   int            `gorm:"default:3" json:"maxAttempts"`
	IsActive      bool           `gorm:"default:true" json:"isActive"`
	CreatedBy     uint           `json:"createdBy"`
	Tags          pq.StringArray `gorm:"type:text[]" json:"tags"`
	Skills        pq.StringArray `gorm:"type:text[]" json:"skills"`
	Prerequisites pq.StringArray `gorm:"type:text[]" json:"prerequisites"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// ComputeTotalPoints sums question points, counting unset points as 1.
// Called on every write that replaces the question set.
func (t *Test) ComputeTotalPoints() int {
	total := 0
	for _, q := range t.Questions {
		p := q.Points
		if p <= 0 {
			p = 1
		}
		total += p
	}
	return total
}

// QuestionByID finds a question on the test. Returns nil when the id
// does not belong to this test.
func (t *Test) QuestionByID(id string) *Question {
	for i := range t.Questions {
		if t.Questions[i].ID == id {
			return &t.Questions[i]
		}
	}
	return nil
}

// SanitizedQuestions returns copies of the questions with the answer
// key removed, for serving to a test taker.
func (t *Test) SanitizedQuestions() QuestionList {
	out := make(QuestionList, len(t.Questions))
	for i, q := range t.Questions {
		q.CorrectAnswer = nil
		out[i] = q
	}
	return out
}

func ValidCategory(c string) bool {
	for _, v := range TestCategories {
		if v == c {
			return true
		}
	}
	return false
}

func ValidDifficulty(d string) bool {
	for _, v := range TestDifficulties {
		if v == d {
			return true
		}
	}
	return false
}
