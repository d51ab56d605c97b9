package services_test

import (
	"testing"
	"time"

	"laundryops/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestSlaEvaluator_Classify(t *testing.T) {
	evaluator := services.NewSlaEvaluator()

	tests := []struct {
		name            string
		promisedAt      time.Time
		wantUrgency     services.Urgency
		wantLabel       string
		wantMinutesLeft int
	}{
		{
			name:            "half an hour left is urgent",
			promisedAt:      testNow.Add(30 * time.Minute),
			wantUrgency:     services.UrgencyUrgent,
			wantLabel:       "due in 30m",
			wantMinutesLeft: 30,
		},
		{
			name:            "exactly one hour left is still urgent",
			promisedAt:      testNow.Add(60 * time.Minute),
			wantUrgency:     services.UrgencyUrgent,
			wantLabel:       "due in 1h 0m",
			wantMinutesLeft: 60,
		},
		{
			name:            "three hours left is approaching",
			promisedAt:      testNow.Add(3 * time.Hour),
			wantUrgency:     services.UrgencyApproaching,
			wantLabel:       "due in 3h 0m",
			wantMinutesLeft: 180,
		},
		{
			name:            "five hours left shows the absolute deadline",
			promisedAt:      testNow.Add(5 * time.Hour),
			wantUrgency:     services.UrgencyNormal,
			wantLabel:       "10/03/2025 14:00",
			wantMinutesLeft: 300,
		},
		{
			name:            "seconds before the deadline is urgent, not overdue",
			promisedAt:      testNow.Add(45 * time.Second),
			wantUrgency:     services.UrgencyUrgent,
			wantLabel:       "due in 0m",
			wantMinutesLeft: 0,
		},
		{
			name:            "seconds past the deadline is already overdue",
			promisedAt:      testNow.Add(-30 * time.Second),
			wantUrgency:     services.UrgencyOverdue,
			wantLabel:       "1m overdue",
			wantMinutesLeft: -1,
		},
		{
			name:            "ten minutes past the deadline",
			promisedAt:      testNow.Add(-10 * time.Minute),
			wantUrgency:     services.UrgencyOverdue,
			wantLabel:       "10m overdue",
			wantMinutesLeft: -10,
		},
		{
			name:            "day-old order renders hours and minutes",
			promisedAt:      testNow.Add(-26*time.Hour - 15*time.Minute),
			wantUrgency:     services.UrgencyOverdue,
			wantLabel:       "26h 15m overdue",
			wantMinutesLeft: -1575,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evaluator.Classify(tt.promisedAt, testNow)

			assert.Equal(t, tt.wantUrgency, got.Urgency)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, tt.wantMinutesLeft, got.MinutesRemaining)
		})
	}
}

func TestSlaEvaluator_BreakageRate(t *testing.T) {
	evaluator := services.NewSlaEvaluator()

	assert.Equal(t, 0, evaluator.BreakageRate(0, 0), "no orders means no rate")
	assert.Equal(t, 0, evaluator.BreakageRate(0, 42))
	assert.Equal(t, 25, evaluator.BreakageRate(1, 4))
	assert.Equal(t, 33, evaluator.BreakageRate(1, 3))
	assert.Equal(t, 67, evaluator.BreakageRate(2, 3))
	assert.Equal(t, 100, evaluator.BreakageRate(5, 5))
}

func TestUrgency_String(t *testing.T) {
	assert.Equal(t, "overdue", services.UrgencyOverdue.String())
	assert.Equal(t, "unknown", services.Urgency(99).String())
}
