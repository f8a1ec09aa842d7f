package notification

import (
	"testing"
	"time"

	"handyhub/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecorderDrainAndLimit(t *testing.T) {
	at := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	r := NewRecorder(2, func() time.Time { return at })

	r.Info("one")
	r.Success("two")
	r.Error("three")

	assert.Equal(t, []string{"success: two", "error: three"}, r.Messages())

	got := r.Drain()
	assert.Len(t, got, 2)
	assert.Equal(t, models.NotifyError, got[1].Level)
	assert.Equal(t, at, got[1].CreatedAt)
	assert.Empty(t, r.Drain())
}

func TestMultiFansOutToLogAndRecorder(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := NewRecorder(0, nil)
	n := Multi(Log{Logger: zap.New(core)}, r, nil)

	n.Error("Invalid email or password.")
	n.Success("Welcome back, John Customer!")

	assert.Equal(t, 2, logs.Len())
	assert.Equal(t, "Invalid email or password.", logs.All()[0].Message)
	assert.Equal(t, []string{"error: Invalid email or password.", "success: Welcome back, John Customer!"}, r.Messages())
}
