package services

import (
	"fmt"

	"github.com/Aditya122221/ElevateAI-sub001/internal/models"

	"go.uber.org/zap"
)

// EmailService is a placeholder for a real email sending service.
type EmailService struct {
	log *zap.Logger
}

func NewEmailService(log *zap.Logger) *EmailService {
	return &EmailService{log: log}
}

// SendWelcomeEmail simulates the post-registration welcome email.
func (s *EmailService) SendWelcomeEmail(user models.User) {
	s.log.Info("Sending welcome email",
		zap.String("to", user.Email),
		zap.String("name", user.FirstName),
	)
	fmt.Printf("--- SIMULATING EMAIL ---\nTo: %s\nSubject: Welcome to ElevateAI\nHi %s,\nYour account is ready. Complete your profile to unlock personalized recommendations.\n\n", user.Email, user.FirstName)
}

// SendPasswordResetEmail simulates the reset-link email.
func (s *EmailService) SendPasswordResetEmail(user models.User, resetURL string) {
	s.log.Info("Sending password reset email",
		zap.String("to", user.Email),
		zap.String("name", user.FirstName),
	)
	fmt.Printf("--- SIMULATING EMAIL ---\nTo: %s\nSubject: Reset your password\nHi %s,\nUse the link below to choose a new password. The link expires in one hour.\n%s\n\n", user.Email, user.FirstName, resetURL)
}

// SendProfileReminderEmail simulates a nudge toward profile completion.
func (s *EmailService) SendProfileReminderEmail(user models.User) {
	s.log.Info("Sending profile reminder email",
		zap.String("to", user.Email),
		zap.String("name", user.FirstName),
	)
	fmt.Printf("--- SIMULATING EMAIL ---\nTo: %s\nSubject: Finish setting up your profile\nHi %s,\nYour profile is incomplete. Finish it to get tailored career recommendations and skill assessments.\n\n", user.Email, user.FirstName)
}
