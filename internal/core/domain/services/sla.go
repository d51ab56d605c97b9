package services

import (
	"fmt"
	"math"
	"time"
)

// Urgency buckets an order's distance to its promise deadline.
type Urgency int

const (
	UrgencyUnknown Urgency = iota

	// UrgencyNormal: more than four hours of slack remain.
	UrgencyNormal

	// UrgencyApproaching: four hours or less remain. Shown but not flagged.
	UrgencyApproaching

	// UrgencyUrgent: one hour or less remains.
	UrgencyUrgent

	// UrgencyOverdue: the deadline has passed.
	UrgencyOverdue
)

func getUrgencyStrings() map[Urgency]string {
	return map[Urgency]string{
		UrgencyUnknown:     "unknown",
		UrgencyNormal:      "normal",
		UrgencyApproaching: "approaching",
		UrgencyUrgent:      "urgent",
		UrgencyOverdue:     "overdue",
	}
}

// String returns the lower-case urgency name.
func (u Urgency) String() string {
	if str, ok := getUrgencyStrings()[u]; ok {
		return str
	}
	return "unknown"
}

// SlaClassification is the derived deadline state of one order at one instant.
type SlaClassification struct {
	// Urgency is the bucket the order falls into.
	Urgency Urgency

	// Label is the human-readable rendering: elapsed overdue time for late
	// orders, remaining time for tight ones, the absolute deadline otherwise.
	Label string

	// MinutesRemaining is minutes until the deadline, negative when overdue.
	MinutesRemaining int
}

const (
	urgentWindowMinutes      = 60
	approachingWindowMinutes = 240
	deadlineLabelLayout      = "02/01/2006 15:04"
)

// SlaEvaluator derives on-time/late classification from the promise deadline.
// It holds no state and performs no I/O; callers supply the clock value so
// the result is deterministic.
type SlaEvaluator struct{}

// NewSlaEvaluator creates an SLA evaluator.
func NewSlaEvaluator() SlaEvaluator {
	return SlaEvaluator{}
}

// Classify buckets the order's deadline relative to now.
func (SlaEvaluator) Classify(promisedAt, now time.Time) SlaClassification {
	// Floor, not truncate: a deadline seconds in the past must already read
	// as overdue, never as "due in 0m".
	minutes := int(math.Floor(promisedAt.Sub(now).Minutes()))

	switch {
	case minutes < 0:
		return SlaClassification{
			Urgency:          UrgencyOverdue,
			Label:            fmt.Sprintf("%s overdue", formatSpan(-minutes)),
			MinutesRemaining: minutes,
		}
	case minutes <= urgentWindowMinutes:
		return SlaClassification{
			Urgency:          UrgencyUrgent,
			Label:            fmt.Sprintf("due in %s", formatSpan(minutes)),
			MinutesRemaining: minutes,
		}
	case minutes <= approachingWindowMinutes:
		return SlaClassification{
			Urgency:          UrgencyApproaching,
			Label:            fmt.Sprintf("due in %s", formatSpan(minutes)),
			MinutesRemaining: minutes,
		}
	default:
		return SlaClassification{
			Urgency:          UrgencyNormal,
			Label:            promisedAt.Format(deadlineLabelLayout),
			MinutesRemaining: minutes,
		}
	}
}

// BreakageRate returns the percentage of late orders over total orders,
// rounded to the nearest integer. A period with no orders has a zero rate,
// never a division error.
func (SlaEvaluator) BreakageRate(lateCount, totalCount int) int {
	if totalCount == 0 {
		return 0
	}
	return int(math.Round(100 * float64(lateCount) / float64(totalCount)))
}

// formatSpan renders a minute count as "Xh Ym", dropping the hour part for
// sub-hour spans.
func formatSpan(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
