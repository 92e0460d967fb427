package repository

import (
	"context"
	"time"

	"github.com/Aditya122221/ElevateAI-sub001/internal/database"
	"github.com/Aditya122221/ElevateAI-sub001/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func CreateUser(ctx context.Context, email, password, firstName, lastName string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:     email,
		Password:  string(hashedPassword),
		FirstName: firstName,
		LastName:  lastName,
	}
	result := database.DB.WithContext(ctx).Create(user)
	return user, result.Error
}

func GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	result := database.DB.WithContext(ctx).First(&user, "email = ?", email)
	return &user, result.Error
}

func GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	result := database.DB.WithContext(ctx).First(&user, id)
	return &user, result.Error
}

// UpdateUserPassword replaces the hash and invalidates any outstanding
// reset token.
func UpdateUserPassword(ctx context.Context, userID uint, newPassword string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return database.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"password":               string(hashedPassword),
		"password_reset_token":   "",
		"password_reset_expires": nil,
	}).Error
}

func SetPasswordResetToken(ctx context.Context, userID uint, tokenHash string, expires time.Time) error {
	return database.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"password_reset_token":   tokenHash,
		"password_reset_expires": expires,
	}).Error
}

// GetUserByResetToken resolves an unexpired reset token hash.
func GetUserByResetToken(ctx context.Context, tokenHash string) (*models.User, error) {
	var user models.User
	result := database.DB.WithContext(ctx).
		First(&user, "password_reset_token = ? AND password_reset_expires > ?", tokenHash, time.Now())
	return &user, result.Error
}

func SetProfileComplete(ctx context.Context, userID uint) error {
	return database.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update("is_profile_complete", true).Error
}

// GetUsersWithIncompleteProfiles feeds the reminder scheduler.
func GetUsersWithIncompleteProfiles(ctx context.Context) ([]models.User, error) {
	var users []models.User
	result := database.DB.WithContext(ctx).Where("is_profile_complete = ?", false).Find(&users)
	return users, result.Error
}
