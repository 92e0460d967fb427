package repository

import (
	"context"
	"errors"

	"github.com/Aditya122221/ElevateAI-sub001/internal/database"
	"github.com/Aditya122221/ElevateAI-sub001/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrNotFound aliases gorm's sentinel so handlers don't import gorm.
	ErrNotFound = gorm.ErrRecordNotFound

	// ErrDuplicateAttempt signals that a result with the same attempt
	// number already exists, i.e. a concurrent submit won the race.
	ErrDuplicateAttempt = errors.New("attempt number already recorded")
)

func CountResults(ctx context.Context, userID, testID uint) (int64, error) {
	var count int64
	err := database.DB.WithContext(ctx).
		Model(&models.TestResult{}).
		Where("user_id = ? AND test_id = ?", userID, testID).
		Count(&count).Error
	return count, err
}

// InsertResult writes one immutable result row. The compound unique
// index on (user_id, test_id, attempt_number) rejects duplicates.
func InsertResult(ctx context.Context, result *models.TestResult) error {
	err := database.DB.WithContext(ctx).Create(result).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateAttempt
	}
	return err
}

func ListUserResults(ctx context.Context, userID uint) ([]models.TestResult, error) {
	var results []models.TestResult
	err := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&results).Error
	return results, err
}

func ListTestResults(ctx context.Context, userID, testID uint) ([]models.TestResult, error) {
	var results []models.TestResult
	err := database.DB.WithContext(ctx).
		Where("user_id = ? AND test_id = ?", userID, testID).
		Order("completed_at DESC").
		Find(&results).Error
	return results, err
}
