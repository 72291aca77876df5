package selectduereminders

import (
	"context"
	"errors"
	c "reemind/internal/core/domain/common"
	"reemind/internal/core/domain/logging"
	"reemind/internal/core/domain/reminder"
	"reemind/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// December 18th, one week before Christmas.
var At time.Time = time.Date(2023, 12, 18, 7, 0, 0, 0, time.UTC)

func create(
	t *testing.T,
	repo *reminder.TestRepository,
	name string,
	month int,
	day int,
	leadDays reminder.LeadDays,
) reminder.Reminder {
	t.Helper()
	rem, err := repo.Create(context.Background(), reminder.CreateInput{
		Email:    c.NewEmail("owner@test.com"),
		Name:     name,
		Month:    month,
		Day:      day,
		LeadDays: leadDays,
	})
	require.NoError(t, err)
	return rem
}

func setup(repo *reminder.TestRepository) services.Service[Input, Result] {
	return New(logging.NewFakeLogger(), repo)
}

func TestReminderDueExactlyOneLeadTimeAhead(t *testing.T) {
	// Setup ---
	repo := reminder.NewTestRepository()
	due := create(t, repo, "Christmas", 12, 25, 7)
	service := setup(repo)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{At: At})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal([]reminder.Reminder{due}, result.Reminders)
}

func TestLeadTimeMustMatchBucket(t *testing.T) {
	// Setup ---
	// Both reminders point at Dec 25th, but only the 7-day one matches the
	// distance from Dec 18th.
	repo := reminder.NewTestRepository()
	due := create(t, repo, "Christmas", 12, 25, 7)
	create(t, repo, "Christmas early", 12, 25, 14)
	create(t, repo, "Christmas eve", 12, 24, 7)
	service := setup(repo)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{At: At})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal([]reminder.Reminder{due}, result.Reminders)
}

func TestLeadTimeOutsideCatalogNeverSelected(t *testing.T) {
	// Setup ---
	// Dec 23rd is 5 days ahead, but 5 is not a catalog lead time.
	repo := reminder.NewTestRepository()
	create(t, repo, "Soon", 12, 23, 5)
	service := setup(repo)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{At: At})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Len(result.Reminders, 0)
}

func TestResultsOrderedByCatalogThenID(t *testing.T) {
	// Setup ---
	repo := reminder.NewTestRepository()
	monthAhead := create(t, repo, "January 17th", 1, 17, 30)
	tomorrow := create(t, repo, "December 19th", 12, 19, 1)
	weekAhead := create(t, repo, "Christmas", 12, 25, 7)
	service := setup(repo)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{At: At})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal([]reminder.Reminder{tomorrow, weekAhead, monthAhead}, result.Reminders)
}

func TestOneBucketQueryPerCatalogEntry(t *testing.T) {
	// Setup ---
	repo := reminder.NewTestRepository()
	service := setup(repo)

	// Exercise ---
	_, err := service.Run(context.Background(), Input{At: At})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Len(repo.ReadWith, len(reminder.LeadDaysCatalog))
	for ix, options := range repo.ReadWith {
		assert.Equal(reminder.LeadDaysCatalog[ix], options.LeadDaysEquals.Value)
		assert.True(options.OccurrenceEquals.IsPresent)
		assert.False(options.EmailEquals.IsPresent)
	}
}

func TestFeb29SelectedInNonLeapYear(t *testing.T) {
	// Setup ---
	// 2023 is not a leap year, so the Feb 29th birthday falls on Mar 1st
	// and is due one week ahead of Feb 22nd.
	repo := reminder.NewTestRepository()
	due := create(t, repo, "Leap day", 2, 29, 7)
	service := setup(repo)

	// Exercise ---
	result, err := service.Run(
		context.Background(),
		Input{At: time.Date(2023, 2, 22, 7, 0, 0, 0, time.UTC)},
	)

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal([]reminder.Reminder{due}, result.Reminders)
}

func TestFeb29SelectedInLeapYear(t *testing.T) {
	// Setup ---
	// In 2024 Feb 29th exists, so the occurrence matches directly and no
	// Mar 1st reminder is pulled in with it.
	repo := reminder.NewTestRepository()
	due := create(t, repo, "Leap day", 2, 29, 7)
	create(t, repo, "March 1st", 3, 1, 7)
	service := setup(repo)

	// Exercise ---
	result, err := service.Run(
		context.Background(),
		Input{At: time.Date(2024, 2, 22, 7, 0, 0, 0, time.UTC)},
	)

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal([]reminder.Reminder{due}, result.Reminders)
}

func TestMar1BucketQueriesFeb29Alias(t *testing.T) {
	// Setup ---
	repo := reminder.NewTestRepository()
	service := setup(repo)

	// Exercise ---
	_, err := service.Run(
		context.Background(),
		Input{At: time.Date(2023, 2, 22, 7, 0, 0, 0, time.UTC)},
	)

	// Verify ---
	// The 7-day bucket targets Mar 1st, which queries twice; every other
	// bucket queries once.
	assert := require.New(t)
	assert.Nil(err)
	assert.Len(repo.ReadWith, len(reminder.LeadDaysCatalog)+1)

	queried := make(map[string][]reminder.LeadDays)
	for _, options := range repo.ReadWith {
		occurrence := options.OccurrenceEquals.Value.String()
		queried[occurrence] = append(queried[occurrence], options.LeadDaysEquals.Value)
	}
	assert.Equal([]reminder.LeadDays{7}, queried["03-01"])
	assert.Equal([]reminder.LeadDays{7}, queried["02-29"])
}

func TestRepositoryErrorIsFatal(t *testing.T) {
	// Setup ---
	repo := reminder.NewTestRepository()
	repo.ReadError = errors.New("test error")
	service := setup(repo)

	// Exercise ---
	_, err := service.Run(context.Background(), Input{At: At})

	// Verify ---
	require.ErrorIs(t, err, repo.ReadError)
}
