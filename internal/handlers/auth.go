package handlers

import (
	"net/http"
	"time"

	"github.com/Aditya122221/ElevateAI-sub001/internal/auth"
	"github.com/Aditya122221/ElevateAI-sub001/internal/config"
	"github.com/Aditya122221/ElevateAI-sub001/internal/repository"
	"github.com/Aditya122221/ElevateAI-sub001/internal/services"
	"github.com/Aditya122221/ElevateAI-sub001/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	log          *zap.Logger
	emailService *services.EmailService
}

func NewAuthHandler(log *zap.Logger, emailService *services.EmailService) *AuthHandler {
	return &AuthHandler{log: log, emailService: emailService}
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = utils.NormalizeEmail(req.Email)
	if !utils.IsValidEmail(req.Email) {
		respondMessage(c, http.StatusBadRequest, "A valid email is required")
		return
	}
	if !utils.IsComplexPassword(req.Password) {
		respondMessage(c, http.StatusBadRequest, "Password must be at least 8 characters and contain upper, lower, number and special characters")
		return
	}

	if _, err := repository.GetUserByEmail(c.Request.Context(), req.Email); err == nil {
		respondMessage(c, http.StatusBadRequest, "User already exists")
		return
	}

	user, err := repository.CreateUser(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		h.log.Error("Failed to create user", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Server error while registering")
		return
	}

	go h.emailService.SendWelcomeEmail(*user)

	token, err := h.issueToken(user.ID, user.IsAdmin)
	if err != nil {
		h.log.Error("Failed to sign token", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Server error while registering")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := repository.GetUserByEmail(c.Request.Context(), utils.NormalizeEmail(req.Email))
	if err != nil || !user.CheckPassword(req.Password) {
		respondMessage(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.issueToken(user.ID, user.IsAdmin)
	if err != nil {
		h.log.Error("Failed to sign token", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Server error while logging in")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// Me returns the authenticated user's account.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

const resetTokenTTL = time.Hour

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Password string `json:"password"`
}

// ForgotPassword issues a reset token and mails the reset link. The
// token hash and expiry live on the user row; the raw token only ever
// appears in the email.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := utils.NormalizeEmail(req.Email)
	if !utils.IsValidEmail(email) {
		respondMessage(c, http.StatusBadRequest, "A valid email is required")
		return
	}

	user, err := repository.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		respondMessage(c, http.StatusNotFound, "User with that email does not exist.")
		return
	}

	token, hash, err := auth.NewResetToken()
	if err != nil {
		h.log.Error("Failed to generate reset token", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Server error during password reset request")
		return
	}

	expires := time.Now().Add(resetTokenTTL)
	if err := repository.SetPasswordResetToken(c.Request.Context(), user.ID, hash, expires); err != nil {
		h.log.Error("Failed to store reset token", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Server error during password reset request")
		return
	}

	resetURL := config.Conf.Server.ClientURL + "/reset-password/" + token
	go h.emailService.SendPasswordResetEmail(*user, resetURL)

	respondMessage(c, http.StatusOK, "Password reset link sent to your email.")
}

// ResetPassword consumes a reset token from the email link and sets a
// new password. The token is single use: the update clears it.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !utils.IsComplexPassword(req.Password) {
		respondMessage(c, http.StatusBadRequest, "Password must be at least 8 characters and contain upper, lower, number and special characters")
		return
	}

	hash := auth.HashResetToken(c.Param("token"))
	user, err := repository.GetUserByResetToken(c.Request.Context(), hash)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid or expired password reset token.")
		return
	}

	if err := repository.UpdateUserPassword(c.Request.Context(), user.ID, req.Password); err != nil {
		h.log.Error("Failed to reset password", zap.Error(err), zap.Uint("userID", user.ID))
		respondMessage(c, http.StatusInternalServerError, "Server error during password reset")
		return
	}

	respondMessage(c, http.StatusOK, "Password has been reset successfully.")
}

func (h *AuthHandler) issueToken(userID uint, isAdmin bool) (string, error) {
	authConf := config.Conf.Auth
	ttl := time.Duration(authConf.TokenTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return auth.GenerateToken(userID, isAdmin, authConf.JWTSecret, ttl)
}
