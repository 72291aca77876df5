package reminder

import (
	"context"
	"time"
)

// SweepSummary is the ephemeral result of one notification sweep. It is
// reported to the caller and never persisted by the core.
type SweepSummary struct {
	RemindersSent int       `json:"remindersSent"`
	Errors        []string  `json:"errors"`
	Timestamp     time.Time `json:"timestamp"`
}

// SweepEvent is one per-record outcome emitted while a sweep is running.
type SweepEvent struct {
	ReminderID ID        `json:"reminder_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	LeadDays   LeadDays  `json:"lead_days"`
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
	At         time.Time `json:"at"`
}

// SweepEventPublisher streams per-record sweep outcomes to observers.
// Publishing is best-effort; implementations must not return errors.
type SweepEventPublisher interface {
	PublishSweepEvent(ctx context.Context, event SweepEvent)
}
