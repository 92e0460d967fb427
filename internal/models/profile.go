package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/lib/pq"
)

// Profile sections are independent per-user documents, one row per
// user per section. Embedded lists (projects, certifications,
// experience entries) live in JSONB columns.

type BasicDetails struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"uniqueIndex;not null" json:"userId"`
	FirstName      string    `gorm:"not null" json:"firstName"`
	LastName       string    `gorm:"not null" json:"lastName"`
	Email          string    `gorm:"not null" json:"email"`
	Phone          string    `json:"phone"`
	LinkedIn       string    `json:"linkedin"`
	GitHub         string    `json:"github"`
	ProfilePicture string    `json:"profilePicture"`
	Portfolio      string    `json:"portfolio"`
	Bio            string    `json:"bio"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Skills struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"uniqueIndex;not null" json:"userId"`
	Languages    pq.StringArray `gorm:"type:text[]" json:"languages"`
	Technologies pq.StringArray `gorm:"type:text[]" json:"technologies"`
	Frameworks   pq.StringArray `gorm:"type:text[]" json:"frameworks"`
	Tools        pq.StringArray `gorm:"type:text[]" json:"tools"`
	SoftSkills   pq.StringArray `gorm:"type:text[]" json:"softSkills"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

type Project struct {
	Name       string   `json:"name"`
	Details    []string `json:"details"`
	GitHubLink string   `json:"githubLink,omitempty"`
	LiveURL    string   `json:"liveUrl,omitempty"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate,omitempty"`
	SkillsUsed []string `json:"skillsUsed"`
	Image      string   `json:"image,omitempty"`
}

type ProjectList []Project

type Projects struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	UserID    uint        `gorm:"uniqueIndex;not null" json:"userId"`
	Projects  ProjectList `gorm:"type:jsonb" json:"projects"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

type Certification struct {
	Name      string   `json:"name"`
	Platform  string   `json:"platform"`
	Skills    []string `json:"skills"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate,omitempty"`
}

type CertificationList []Certification

type Certifications struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	UserID         uint              `gorm:"uniqueIndex;not null" json:"userId"`
	Certifications CertificationList `gorm:"type:jsonb" json:"certifications"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

type ExperienceEntry struct {
	CompanyName  string   `json:"companyName"`
	Position     string   `json:"position"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	IsCurrent    bool     `json:"isCurrent"`
	Skills       []string `json:"skills"`
	Achievements []string `json:"achievements"`
	Description  string   `json:"description,omitempty"`
}

type ExperienceList []ExperienceEntry

type Experience struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"uniqueIndex;not null" json:"userId"`
	Experiences ExperienceList `gorm:"type:jsonb" json:"experiences"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type JobRoles struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	UserID          uint           `gorm:"uniqueIndex;not null" json:"userId"`
	DesiredJobRoles pq.StringArray `gorm:"type:text[]" json:"desiredJobRoles"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

func jsonbValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	return string(b), err
}

func jsonbScan(dst interface{}, value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	case nil:
		return nil
	}
	return errors.New("unsupported type for jsonb column")
}

func (l ProjectList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return jsonbValue(l)
}

func (l *ProjectList) Scan(value interface{}) error { return jsonbScan(l, value) }

func (l CertificationList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return jsonbValue(l)
}

func (l *CertificationList) Scan(value interface{}) error { return jsonbScan(l, value) }

func (l ExperienceList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return jsonbValue(l)
}

func (l *ExperienceList) Scan(value interface{}) error { return jsonbScan(l, value) }
