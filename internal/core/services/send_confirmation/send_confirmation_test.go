package sendconfirmation

import (
	"context"
	"errors"
	c "reemind/internal/core/domain/common"
	"reemind/internal/core/domain/logging"
	"reemind/internal/core/domain/reminder"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []reminder.Reminder
	err  error
	lock sync.Mutex
}

func (s *recordingSender) SendConfirmation(ctx context.Context, r reminder.Reminder) error {
	if s.err != nil {
		return s.err
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.sent = append(s.sent, r)
	return nil
}

func TestConfirmationSent(t *testing.T) {
	// Setup ---
	sender := &recordingSender{}
	service := New(logging.NewFakeLogger(), sender)
	rem := reminder.Reminder{
		ID:       reminder.ID(1),
		Email:    c.NewEmail("test@test.com"),
		Name:     "Alice",
		Month:    12,
		Day:      25,
		LeadDays: 7,
	}

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Reminder: rem})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal([]reminder.Reminder{rem}, sender.sent)
}

func TestSenderErrorPropagated(t *testing.T) {
	// Setup ---
	sender := &recordingSender{err: errors.New("test error")}
	service := New(logging.NewFakeLogger(), sender)

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Reminder: reminder.Reminder{ID: 1}})

	// Verify ---
	require.ErrorIs(t, err, sender.err)
}
