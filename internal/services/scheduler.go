package services

import (
	"context"
	"time"

	"github.com/Aditya122221/ElevateAI-sub001/internal/models"
	"github.com/Aditya122221/ElevateAI-sub001/internal/repository"

	"go.uber.org/zap"
)

const reminderInterval = 24 * time.Hour

// Scheduler periodically nudges users who never finished their profile.
type Scheduler struct {
	log          *zap.Logger
	emailService *EmailService
}

func NewScheduler(log *zap.Logger, emailService *EmailService) *Scheduler {
	return &Scheduler{
		log:          log,
		emailService: emailService,
	}
}

// Start runs the scheduler in a goroutine.
func (s *Scheduler) Start() {
	s.log.Info("Starting profile reminder scheduler...")
	go func() {
		ticker := time.NewTicker(reminderInterval)
		defer ticker.Stop()

		for {
			<-ticker.C
			s.runReminderCheck()
		}
	}()
}

func (s *Scheduler) runReminderCheck() {
	s.log.Debug("Running profile completion reminder check")

	users, err := repository.GetUsersWithIncompleteProfiles(context.Background())
	if err != nil {
		s.log.Error("Failed to get users for profile reminder", zap.Error(err))
		return
	}

	for _, user := range users {
		go s.sendReminder(user)
	}
}

func (s *Scheduler) sendReminder(user models.User) {
	s.emailService.SendProfileReminderEmail(user)
}
