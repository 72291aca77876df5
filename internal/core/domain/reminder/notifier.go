package reminder

import (
	"context"
)

// Notifier delivers one birthday notification to the reminder's owner.
// The transport is swappable; the selection logic never depends on it.
type Notifier interface {
	SendReminder(ctx context.Context, r Reminder) error
}

// ConfirmationSender delivers the "reminder saved" email after creation.
// Failures are never fatal to the creation itself.
type ConfirmationSender interface {
	SendConfirmation(ctx context.Context, r Reminder) error
}

// ConfirmationEnqueuer hands a confirmation off to the outgoing queue.
type ConfirmationEnqueuer interface {
	EnqueueConfirmation(ctx context.Context, r Reminder) error
}
