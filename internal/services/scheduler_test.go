package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReminderInterval_Daily(t *testing.T) {
	// Reminders are a daily nudge, not a minute-level poll.
	assert.Equal(t, 24*time.Hour, reminderInterval)
}
