package response

import (
	"reemind/internal/core/domain/reminder"
	"time"
)

type Reminder struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Month     int       `json:"month"`
	Day       int       `json:"day"`
	LeadDays  int       `json:"lead_days"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Reminder) FromDomainType(dr reminder.Reminder) {
	r.ID = int64(dr.ID)
	r.Email = string(dr.Email)
	r.Name = dr.Name
	r.Month = dr.Month
	r.Day = dr.Day
	r.LeadDays = int(dr.LeadDays)
	r.CreatedAt = dr.CreatedAt
}

// ReminderWithDaysLeft decorates a reminder with the number of days until
// its next occurrence, the way the dashboard lists them.
type ReminderWithDaysLeft struct {
	Reminder
	DaysLeft int `json:"days_left"`
}
