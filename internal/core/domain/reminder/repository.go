package reminder

import (
	"context"
	"reemind/internal/core/domain/calendar"
	c "reemind/internal/core/domain/common"
	"time"
)

type CreateInput struct {
	Email     c.Email
	Name      string
	Month     int
	Day       int
	LeadDays  LeadDays
	CreatedAt time.Time
}

type ReadOptions struct {
	EmailEquals      c.Optional[c.Email]
	OccurrenceEquals c.Optional[calendar.MonthDay]
	LeadDaysEquals   c.Optional[LeadDays]
	OrderBy          OrderBy
}

type UpdateInput struct {
	ID                 ID
	DoNameUpdate       bool
	Name               string
	DoOccurrenceUpdate bool
	Month              int
	Day                int
	DoLeadDaysUpdate   bool
	LeadDays           LeadDays
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Reminder, error)
	GetByID(ctx context.Context, id ID) (Reminder, error)
	Read(ctx context.Context, options ReadOptions) ([]Reminder, error)
	Update(ctx context.Context, input UpdateInput) (Reminder, error)
	Delete(ctx context.Context, id ID) error
}

// NotificationLog is one recorded delivery attempt. Entries are append-only;
// retention is an external concern.
type NotificationLog struct {
	ID         int64
	ReminderID ID
	SentAt     time.Time
	Success    bool
	Error      c.Optional[string]
	LeadDays   LeadDays
}

type CreateLogInput struct {
	ReminderID ID
	SentAt     time.Time
	Success    bool
	Error      c.Optional[string]
	LeadDays   LeadDays
}

type LogRepository interface {
	Create(ctx context.Context, input CreateLogInput) (NotificationLog, error)
}
