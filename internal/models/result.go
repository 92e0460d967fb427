package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// AnswerRecord is one graded answer inside a stored result.
type AnswerRecord struct {
	QuestionID string          `json:"questionId"`
	Answer     json.RawMessage `json:"answer"`
	IsCorrect  bool            `json:"isCorrect"`
	Points     int             `json:"points"`
	TimeSpent  int             `json:"timeSpent"` // seconds
}

type AnswerRecordList []AnswerRecord

func (a AnswerRecordList) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	return string(b), err
}

func (a *AnswerRecordList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	case nil:
		*a = nil
		return nil
	}
	return errors.New("unsupported type for AnswerRecordList")
}

// TestResult is immutable once written. Uniqueness of
// (user_id, test_id, attempt_number) is enforced by the database so a
// concurrent double-submit cannot exceed the attempt limit.
type TestResult struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	UserID        uint             `gorm:"not null;index" json:"userId"`
	TestID        uint             `gorm:"not null;index" json:"testId"`
	Answers       AnswerRecordList `gorm:"type:jsonb" json:"answers"`
	Score         int              `json:"score"`
	Percentage    float64          `json:"percentage"`
	Passed        bool             `json:"passed"`
	TimeSpent     int              `json:"timeSpent"` // seconds
	AttemptNumber int              `gorm:"not null" json:"attemptNumber"`
	StartedAt     time.Time        `json:"startedAt"`
	CompletedAt   time.Time        `json:"completedAt"`
	CreatedAt     time.Time        `json:"createdAt"`
}
