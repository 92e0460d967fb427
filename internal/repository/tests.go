package repository

import (
	"context"
	"strings"

	"github.com/Aditya122221/ElevateAI-sub001/internal/database"
	"github.com/Aditya122221/ElevateAI-sub001/internal/models"
)

// listColumns excludes the questions document so catalog listings stay light.
const listColumns = "id, title, description, category, difficulty, duration, total_points, passing_score, max_attempts, is_active, created_by, tags, skills, prerequisites, created_at, updated_at"

// TestFilter narrows the public catalog listing.
type TestFilter struct {
	Category   string
	Difficulty string
	Search     string
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
}

// Pagination mirrors the response shape the client expects.
type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
	HasNext bool  `json:"hasNext"`
	HasPrev bool  `json:"hasPrev"`
}

// NewPagination derives page flags from a page/limit/total triple.
func NewPagination(page, limit int, total int64) Pagination {
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return Pagination{
		Current: page,
		Pages:   pages,
		Total:   total,
		HasNext: int64(page*limit) < total,
		HasPrev: page > 1,
	}
}

var sortColumns = map[string]string{
	"createdAt":   "created_at",
	"title":       "title",
	"difficulty":  "difficulty",
	"duration":    "duration",
	"totalPoints": "total_points",
}

// ListTests returns active tests matching the filter, question bodies omitted.
func ListTests(ctx context.Context, filter TestFilter) ([]models.Test, Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	query := database.DB.WithContext(ctx).Model(&models.Test{}).Where("is_active = ?", true)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		direction = "ASC"
	}

	var tests []models.Test
	err := query.
		Select(listColumns).
		Order(column + " " + direction).
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&tests).Error
	if err != nil {
		return nil, Pagination{}, err
	}

	return tests, NewPagination(filter.Page, filter.Limit, total), nil
}

// ListActiveTests feeds the recommendation prompt with the whole
// active catalog, question bodies omitted.
func ListActiveTests(ctx context.Context) ([]models.Test, error) {
	var tests []models.Test
	err := database.DB.WithContext(ctx).
		Select(listColumns).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&tests).Error
	return tests, err
}

// GetTest returns the full document including the answer key. Callers
// serving test takers must strip correct answers themselves.
func GetTest(ctx context.Context, id uint) (*models.Test, error) {
	var test models.Test
	result := database.DB.WithContext(ctx).First(&test, id)
	return &test, result.Error
}

func CreateTest(ctx context.Context, test *models.Test) error {
	return database.DB.WithContext(ctx).Create(test).Error
}

func SaveTest(ctx context.Context, test *models.Test) error {
	return database.DB.WithContext(ctx).Save(test).Error
}

// SoftDeleteTest flips is_active; the document is never removed.
func SoftDeleteTest(ctx context.Context, id uint) error {
	result := database.DB.WithContext(ctx).Model(&models.Test{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
