package models

import (
	"database/sql/driver"
	"time"

	"github.com/lib/pq"
)

// Certificate categories accepted by the catalog. Broader than the test
// categories: industry certifications span fields tests do not cover.
var CertificateCategories = []string{
	"programming", "data-science", "cloud-computing", "cybersecurity",
	"networking", "project-management", "design", "marketing",
	"business", "other",
}

// CertificateSkill is one skill the certificate teaches or requires.
type CertificateSkill struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

type CertificateSkillList []CertificateSkill

func (l CertificateSkillList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return jsonbValue(l)
}

func (l *CertificateSkillList) Scan(value interface{}) error { return jsonbScan(l, value) }

// ExamDetails describes how the certification exam is administered.
type ExamDetails struct {
	Format       string  `json:"format,omitempty"`
	Duration     string  `json:"duration,omitempty"`
	PassingScore float64 `json:"passingScore,omitempty"`
	Attempts     int     `json:"attempts,omitempty"`
}

func (e ExamDetails) Value() (driver.Value, error) { return jsonbValue(e) }

func (e *ExamDetails) Scan(value interface{}) error { return jsonbScan(e, value) }

type CostInfo struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Free     bool    `json:"free"`
}

type SalaryRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

type RatingInfo struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type Certificate struct {
	ID                  uint                 `gorm:"primaryKey" json:"id"`
	Name                string               `gorm:"not null" json:"name"`
	Provider            string               `gorm:"not null" json:"provider"`
	Description         string               `json:"description"`
	Category            string               `gorm:"index;not null" json:"category"`
	Difficulty          string               `gorm:"index;not null" json:"difficulty"`
	Duration            string               `json:"duration"`
	Validity            string               `json:"validity"`
	Language            string               `json:"language"`
	Skills              CertificateSkillList `gorm:"type:jsonb" json:"skills"`
	Topics              pq.StringArray       `gorm:"type:text[]" json:"topics"`
	Prerequisites       pq.StringArray       `gorm:"type:text[]" json:"prerequisites"`
	Format              pq.StringArray       `gorm:"type:text[]" json:"format"`
	Benefits            pq.StringArray       `gorm:"type:text[]" json:"benefits"`
	TargetAudience      pq.StringArray       `gorm:"type:text[]" json:"targetAudience"`
	JobRoles            pq.StringArray       `gorm:"type:text[]" json:"jobRoles"`
	Exam                ExamDetails          `gorm:"type:jsonb" json:"examDetails"`
	Cost                CostInfo             `gorm:"embedded;embeddedPrefix:cost_" json:"cost"`
	AverageSalary       SalaryRange          `gorm:"embedded;embeddedPrefix:salary_" json:"averageSalary"`
	Rating              RatingInfo           `gorm:"embedded;embeddedPrefix:rating_" json:"rating"`
	IndustryRecognition string               `json:"industryRecognition"`
	EnrollmentURL       string               `json:"enrollmentUrl"`
	OfficialWebsite     string               `json:"officialWebsite"`
	ImageURL            string               `json:"imageUrl"`
	IsActive            bool                 `gorm:"default:true" json:"isActive"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

// CertificateReview is one user's rating of a certificate. The database
// enforces one review per user per certificate.
type CertificateReview struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CertificateID uint      `gorm:"not null;index" json:"certificateId"`
	UserID        uint      `gorm:"not null" json:"userId"`
	Rating        int       `gorm:"not null" json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"createdAt"`
}

// AverageRating aggregates reviews into the rating stored on the
// certificate. An empty review set yields a zero rating.
func AverageRating(reviews []CertificateReview) RatingInfo {
	if len(reviews) == 0 {
		return RatingInfo{}
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	return RatingInfo{
		Average: float64(total) / float64(len(reviews)),
		Count:   len(reviews),
	}
}

func ValidCertificateCategory(c string) bool {
	for _, v := range CertificateCategories {
		if v == c {
			return true
		}
	}
	return false
}
