package reminder

import (
	"context"
	"sync"
)

type TestRepository struct {
	Reminders   []Reminder
	CreateError error
	ReadError   error
	GetError    error
	UpdateError error
	DeleteError error
	ReadWith    []ReadOptions
	Deleted     []ID
	Updated     []UpdateInput
	nextID      ID
	lock        sync.Mutex
}

func NewTestRepository() *TestRepository {
	return &TestRepository{}
}

func (r *TestRepository) Create(ctx context.Context, input CreateInput) (rem Reminder, err error) {
	if r.CreateError != nil {
		return rem, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.nextID++
	rem = Reminder{
		ID:        r.nextID,
		Email:     input.Email,
		Name:      input.Name,
		Month:     input.Month,
		Day:       input.Day,
		LeadDays:  input.LeadDays,
		CreatedAt: input.CreatedAt,
	}
	r.Reminders = append(r.Reminders, rem)
	return rem, nil
}

func (r *TestRepository) GetByID(ctx context.Context, id ID) (rem Reminder, err error) {
	if r.GetError != nil {
		return rem, r.GetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, candidate := range r.Reminders {
		if candidate.ID == id {
			return candidate, nil
		}
	}
	return rem, ErrReminderDoesNotExist
}

func (r *TestRepository) Read(ctx context.Context, options ReadOptions) ([]Reminder, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReadWith = append(r.ReadWith, options)

	reminders := make([]Reminder, 0, len(r.Reminders))
	for _, candidate := range r.Reminders {
		if options.EmailEquals.IsPresent && candidate.Email != options.EmailEquals.Value {
			continue
		}
		if options.OccurrenceEquals.IsPresent && candidate.Occurrence() != options.OccurrenceEquals.Value {
			continue
		}
		if options.LeadDaysEquals.IsPresent && candidate.LeadDays != options.LeadDaysEquals.Value {
			continue
		}
		reminders = append(reminders, candidate)
	}
	return reminders, nil
}

func (r *TestRepository) Update(ctx context.Context, input UpdateInput) (rem Reminder, err error) {
	if r.UpdateError != nil {
		return rem, r.UpdateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Updated = append(r.Updated, input)
	for ix := range r.Reminders {
		if r.Reminders[ix].ID != input.ID {
			continue
		}
		if input.DoNameUpdate {
			r.Reminders[ix].Name = input.Name
		}
		if input.DoOccurrenceUpdate {
			r.Reminders[ix].Month = input.Month
			r.Reminders[ix].Day = input.Day
		}
		if input.DoLeadDaysUpdate {
			r.Reminders[ix].LeadDays = input.LeadDays
		}
		return r.Reminders[ix], nil
	}
	return rem, ErrReminderDoesNotExist
}

func (r *TestRepository) Delete(ctx context.Context, id ID) error {
	if r.DeleteError != nil {
		return r.DeleteError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Reminders {
		if r.Reminders[ix].ID == id {
			r.Reminders = append(r.Reminders[:ix], r.Reminders[ix+1:]...)
			r.Deleted = append(r.Deleted, id)
			return nil
		}
	}
	return ErrReminderDoesNotExist
}

type TestLogRepository struct {
	Logs        []NotificationLog
	CreateError error
	nextID      int64
	lock        sync.Mutex
}

func NewTestLogRepository() *TestLogRepository {
	return &TestLogRepository{}
}

func (r *TestLogRepository) Create(ctx context.Context, input CreateLogInput) (log NotificationLog, err error) {
	if r.CreateError != nil {
		return log, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.nextID++
	log = NotificationLog{
		ID:         r.nextID,
		ReminderID: input.ReminderID,
		SentAt:     input.SentAt,
		Success:    input.Success,
		Error:      input.Error,
		LeadDays:   input.LeadDays,
	}
	r.Logs = append(r.Logs, log)
	return log, nil
}

// TestNotifier records sent reminders and fails for addresses listed in
// FailFor.
type TestNotifier struct {
	Sent      []Reminder
	SentError error
	FailFor   map[string]error
	lock      sync.Mutex
}

func NewTestNotifier() *TestNotifier {
	return &TestNotifier{}
}

func (n *TestNotifier) SendReminder(ctx context.Context, r Reminder) error {
	n.lock.Lock()
	defer n.lock.Unlock()
	if n.SentError != nil {
		return n.SentError
	}
	if err, ok := n.FailFor[string(r.Email)]; ok {
		return err
	}
	n.Sent = append(n.Sent, r)
	return nil
}

type TestConfirmationEnqueuer struct {
	Enqueued []Reminder
	Error    error
	lock     sync.Mutex
}

func NewTestConfirmationEnqueuer() *TestConfirmationEnqueuer {
	return &TestConfirmationEnqueuer{}
}

func (e *TestConfirmationEnqueuer) EnqueueConfirmation(ctx context.Context, r Reminder) error {
	e.lock.Lock()
	defer e.lock.Unlock()
	if e.Error != nil {
		return e.Error
	}
	e.Enqueued = append(e.Enqueued, r)
	return nil
}

type TestSweepEventPublisher struct {
	Published []SweepEvent
	lock      sync.Mutex
}

func NewTestSweepEventPublisher() *TestSweepEventPublisher {
	return &TestSweepEventPublisher{}
}

func (p *TestSweepEventPublisher) PublishSweepEvent(ctx context.Context, event SweepEvent) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Published = append(p.Published, event)
}
