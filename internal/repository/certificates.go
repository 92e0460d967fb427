package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/Aditya122221/ElevateAI-sub001/internal/database"
	"github.com/Aditya122221/ElevateAI-sub001/internal/models"

	"gorm.io/gorm"
)

// ErrDuplicateReview signals that the user already reviewed this
// certificate; the unique review index rejected the insert.
var ErrDuplicateReview = errors.New("certificate already reviewed by this user")

// CertificateFilter narrows the public certificate catalog listing.
type CertificateFilter struct {
	Category   string
	Difficulty string
	Search     string
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
}

var certificateSortColumns = map[string]string{
	"createdAt":  "created_at",
	"name":       "name",
	"provider":   "provider",
	"difficulty": "difficulty",
	"rating":     "rating_average",
}

// ListCertificates returns active certificates matching the filter.
// Reviews live in their own table, so listings never carry them.
func ListCertificates(ctx context.Context, filter CertificateFilter) ([]models.Certificate, Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	query := database.DB.WithContext(ctx).Model(&models.Certificate{}).Where("is_active = ?", true)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ? OR provider ILIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	column, ok := certificateSortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		direction = "ASC"
	}

	var certificates []models.Certificate
	err := query.
		Order(column + " " + direction).
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&certificates).Error
	if err != nil {
		return nil, Pagination{}, err
	}

	return certificates, NewPagination(filter.Page, filter.Limit, total), nil
}

func GetCertificate(ctx context.Context, id uint) (*models.Certificate, error) {
	var certificate models.Certificate
	result := database.DB.WithContext(ctx).First(&certificate, id)
	return &certificate, result.Error
}

func CreateCertificate(ctx context.Context, certificate *models.Certificate) error {
	return database.DB.WithContext(ctx).Create(certificate).Error
}

func SaveCertificate(ctx context.Context, certificate *models.Certificate) error {
	return database.DB.WithContext(ctx).Save(certificate).Error
}

// SoftDeleteCertificate flips is_active; the document is never removed.
func SoftDeleteCertificate(ctx context.Context, id uint) error {
	result := database.DB.WithContext(ctx).Model(&models.Certificate{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListCertificateCategories returns the distinct categories in use by
// active certificates, not the full enum.
func ListCertificateCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := database.DB.WithContext(ctx).
		Model(&models.Certificate{}).
		Where("is_active = ?", true).
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

// ListActiveCertificates feeds the recommendation prompt with the whole
// active catalog.
func ListActiveCertificates(ctx context.Context) ([]models.Certificate, error) {
	var certificates []models.Certificate
	err := database.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&certificates).Error
	return certificates, err
}

func ListCertificateReviews(ctx context.Context, certificateID uint) ([]models.CertificateReview, error) {
	var reviews []models.CertificateReview
	err := database.DB.WithContext(ctx).
		Where("certificate_id = ?", certificateID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// AddCertificateReview inserts one review and recomputes the stored
// rating in the same transaction. A second review from the same user
// surfaces as ErrDuplicateReview.
func AddCertificateReview(ctx context.Context, review *models.CertificateReview) (models.RatingInfo, error) {
	var rating models.RatingInfo
	err := database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateReview
			}
			return err
		}

		var reviews []models.CertificateReview
		if err := tx.Where("certificate_id = ?", review.CertificateID).Find(&reviews).Error; err != nil {
			return err
		}
		rating = models.AverageRating(reviews)

		return tx.Model(&models.Certificate{}).
			Where("id = ?", review.CertificateID).
			Updates(map[string]interface{}{
				"rating_average": rating.Average,
				"rating_count":   rating.Count,
			}).Error
	})
	return rating, err
}
