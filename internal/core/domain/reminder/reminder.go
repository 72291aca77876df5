package reminder

import (
	"reemind/internal/core/domain/calendar"
	c "reemind/internal/core/domain/common"
	e "reemind/internal/core/domain/errors"
	"time"
)

type ID int64

// Reminder is one person's birthday reminder owned by one requester.
// The owner is identified by email address only; one owner may have any
// number of reminders.
type Reminder struct {
	ID        ID
	Email     c.Email
	Name      string
	Month     int
	Day       int
	LeadDays  LeadDays
	CreatedAt time.Time
}

func (r *Reminder) Validate() error {
	if r.Name == "" {
		return e.NewInvalidStateError("reminder name must not be empty")
	}
	if r.Email == "" {
		return e.NewInvalidStateError("reminder email must not be empty")
	}
	if r.Month < 1 || r.Month > 12 {
		return e.NewInvalidStateError("reminder month must be between 1 and 12")
	}
	if r.Day < 1 || r.Day > calendar.MaxDaysInMonth(r.Month) {
		return e.NewInvalidStateError("reminder day is out of range for the month")
	}
	if r.LeadDays < 1 {
		return e.NewInvalidStateError("reminder lead days must be positive")
	}
	return nil
}

// Occurrence returns the reminder's yearly date.
func (r *Reminder) Occurrence() calendar.MonthDay {
	return calendar.MonthDay{Month: r.Month, Day: r.Day}
}

// DaysLeft returns the number of days from ref until the next occurrence.
func (r *Reminder) DaysLeft(ref time.Time) int {
	return calendar.DaysUntilNextOccurrence(ref, r.Month, r.Day)
}
