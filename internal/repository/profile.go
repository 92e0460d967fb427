package repository

import (
	"context"

	"github.com/Aditya122221/ElevateAI-sub001/internal/database"
	"github.com/Aditya122221/ElevateAI-sub001/internal/models"

	"gorm.io/gorm/clause"
)

// Each profile section is one row per user; saves are upserts keyed on
// user_id, matching the one-document-per-section data shape.

var conflictOnUser = clause.OnConflict{
	Columns:   []clause.Column{{Name: "user_id"}},
	UpdateAll: true,
}

func UpsertBasicDetails(ctx context.Context, details *models.BasicDetails) error {
	return database.DB.WithContext(ctx).Clauses(conflictOnUser).Create(details).Error
}

func GetBasicDetails(ctx context.Context, userID uint) (*models.BasicDetails, error) {
	var details models.BasicDetails
	result := database.DB.WithContext(ctx).First(&details, "user_id = ?", userID)
	return &details, result.Error
}

func UpsertSkills(ctx context.Context, skills *models.Skills) error {
	return database.DB.WithContext(ctx).Clauses(conflictOnUser).Create(skills).Error
}

func GetSkills(ctx context.Context, userID uint) (*models.Skills, error) {
	var skills models.Skills
	result := database.DB.WithContext(ctx).First(&skills, "user_id = ?", userID)
	return &skills, result.Error
}

func UpsertProjects(ctx context.Context, projects *models.Projects) error {
	return database.DB.WithContext(ctx).Clauses(conflictOnUser).Create(projects).Error
}

func GetProjects(ctx context.Context, userID uint) (*models.Projects, error) {
	var projects models.Projects
	result := database.DB.WithContext(ctx).First(&projects, "user_id = ?", userID)
	return &projects, result.Error
}

func UpsertCertifications(ctx context.Context, certs *models.Certifications) error {
	return database.DB.WithContext(ctx).Clauses(conflictOnUser).Create(certs).Error
}

func GetCertifications(ctx context.Context, userID uint) (*models.Certifications, error) {
	var certs models.Certifications
	result := database.DB.WithContext(ctx).First(&certs, "user_id = ?", userID)
	return &certs, result.Error
}

func UpsertExperience(ctx context.Context, experience *models.Experience) error {
	return database.DB.WithContext(ctx).Clauses(conflictOnUser).Create(experience).Error
}

func GetExperience(ctx context.Context, userID uint) (*models.Experience, error) {
	var experience models.Experience
	result := database.DB.WithContext(ctx).First(&experience, "user_id = ?", userID)
	return &experience, result.Error
}

func UpsertJobRoles(ctx context.Context, roles *models.JobRoles) error {
	return database.DB.WithContext(ctx).Clauses(conflictOnUser).Create(roles).Error
}

func GetJobRoles(ctx context.Context, userID uint) (*models.JobRoles, error) {
	var roles models.JobRoles
	result := database.DB.WithContext(ctx).First(&roles, "user_id = ?", userID)
	return &roles, result.Error
}
