package updatereminder

import (
	"context"
	c "reemind/internal/core/domain/common"
	"reemind/internal/core/domain/logging"
	"reemind/internal/core/domain/reminder"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*reminder.TestRepository, reminder.Reminder) {
	repo := reminder.NewTestRepository()
	rem, err := repo.Create(context.Background(), reminder.CreateInput{
		Email:    c.NewEmail("owner@test.com"),
		Name:     "Alice",
		Month:    12,
		Day:      25,
		LeadDays: 7,
	})
	require.NoError(t, err)
	return repo, rem
}

func TestReminderUpdatedSuccessfully(t *testing.T) {
	// Setup ---
	repo, rem := setupRepo(t)
	service := New(logging.NewFakeLogger(), repo)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		Email:              rem.Email,
		ReminderID:         rem.ID,
		DoNameUpdate:       true,
		Name:               "Bob",
		DoOccurrenceUpdate: true,
		Month:              1,
		Day:                31,
		DoLeadDaysUpdate:   true,
		LeadDays:           14,
	})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal("Bob", result.Reminder.Name)
	assert.Equal(1, result.Reminder.Month)
	assert.Equal(31, result.Reminder.Day)
	assert.Equal(reminder.LeadDays(14), result.Reminder.LeadDays)
}

func TestPartialUpdateKeepsOtherFields(t *testing.T) {
	// Setup ---
	repo, rem := setupRepo(t)
	service := New(logging.NewFakeLogger(), repo)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		Email:        rem.Email,
		ReminderID:   rem.ID,
		DoNameUpdate: true,
		Name:         "Bob",
	})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal("Bob", result.Reminder.Name)
	assert.Equal(12, result.Reminder.Month)
	assert.Equal(25, result.Reminder.Day)
	assert.Equal(reminder.LeadDays(7), result.Reminder.LeadDays)
}

func TestUpdateRejectedForAnotherOwner(t *testing.T) {
	// Setup ---
	repo, rem := setupRepo(t)
	service := New(logging.NewFakeLogger(), repo)

	// Exercise ---
	_, err := service.Run(context.Background(), Input{
		Email:        c.NewEmail("intruder@test.com"),
		ReminderID:   rem.ID,
		DoNameUpdate: true,
		Name:         "Hacked",
	})

	// Verify ---
	assert := require.New(t)
	assert.ErrorIs(err, reminder.ErrReminderPermission)
	assert.Len(repo.Updated, 0)
}

func TestUpdateRejectsInvalidOccurrence(t *testing.T) {
	// Setup ---
	repo, rem := setupRepo(t)
	service := New(logging.NewFakeLogger(), repo)

	// Exercise ---
	_, err := service.Run(context.Background(), Input{
		Email:              rem.Email,
		ReminderID:         rem.ID,
		DoOccurrenceUpdate: true,
		Month:              2,
		Day:                30,
	})

	// Verify ---
	require.ErrorIs(t, err, reminder.ErrInvalidOccurrence)
}

func TestUpdateUnknownReminder(t *testing.T) {
	// Setup ---
	repo := reminder.NewTestRepository()
	service := New(logging.NewFakeLogger(), repo)

	// Exercise ---
	_, err := service.Run(context.Background(), Input{
		Email:      c.NewEmail("owner@test.com"),
		ReminderID: reminder.ID(42),
	})

	// Verify ---
	require.ErrorIs(t, err, reminder.ErrReminderDoesNotExist)
}
