package reminder

import (
	"context"
	"errors"
	c "reemind/internal/core/domain/common"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validReminder() Reminder {
	return Reminder{
		ID:       ID(1),
		Email:    c.NewEmail("test@test.com"),
		Name:     "Alice",
		Month:    12,
		Day:      25,
		LeadDays: LeadDays(7),
	}
}

func TestReminderValidate(t *testing.T) {
	cases := []struct {
		id      string
		mutate  func(r *Reminder)
		isValid bool
	}{
		{id: "valid", mutate: func(r *Reminder) {}, isValid: true},
		{id: "empty name", mutate: func(r *Reminder) { r.Name = "" }, isValid: false},
		{id: "empty email", mutate: func(r *Reminder) { r.Email = "" }, isValid: false},
		{id: "month too small", mutate: func(r *Reminder) { r.Month = 0 }, isValid: false},
		{id: "month too big", mutate: func(r *Reminder) { r.Month = 13 }, isValid: false},
		{id: "day too small", mutate: func(r *Reminder) { r.Day = 0 }, isValid: false},
		{id: "day 31 in June", mutate: func(r *Reminder) { r.Month = 6; r.Day = 31 }, isValid: false},
		{id: "Feb 29 accepted", mutate: func(r *Reminder) { r.Month = 2; r.Day = 29 }, isValid: true},
		{id: "Feb 30 rejected", mutate: func(r *Reminder) { r.Month = 2; r.Day = 30 }, isValid: false},
		{id: "zero lead days", mutate: func(r *Reminder) { r.LeadDays = 0 }, isValid: false},
		{id: "lead days outside catalog still valid", mutate: func(r *Reminder) { r.LeadDays = 5 }, isValid: true},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			rem := validReminder()
			testcase.mutate(&rem)
			err := rem.Validate()
			if testcase.isValid {
				assert.Nil(t, err)
			} else {
				assert.NotNil(t, err)
			}
		})
	}
}

func TestSortByUpcoming(t *testing.T) {
	// Reference date is June 15th.
	ref := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)

	reminders := []Reminder{
		{ID: 1, Month: 6, Day: 1},   // passed, next year
		{ID: 2, Month: 6, Day: 20},  // in 5 days
		{ID: 3, Month: 12, Day: 25}, // this winter
		{ID: 4, Month: 6, Day: 20},  // same day as ID 2, higher ID
		{ID: 5, Month: 6, Day: 15},  // today
	}

	SortByUpcoming(reminders, ref)

	ids := make([]ID, 0, len(reminders))
	for _, r := range reminders {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []ID{5, 2, 4, 3, 1}, ids)
}

func TestNotifierFakeIsSafeForConcurrentSends(t *testing.T) {
	notifier := NewTestNotifier()
	notifier.FailFor = map[string]error{"bad@x.com": errors.New("mailbox unavailable")}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		rem := validReminder()
		rem.ID = ID(i + 1)
		if i%4 == 0 {
			rem.Email = c.NewEmail("bad@x.com")
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			notifier.SendReminder(context.Background(), rem)
		}()
	}
	wg.Wait()

	assert.Len(t, notifier.Sent, 12)
}
