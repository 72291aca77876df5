package reminder

import "errors"

var (
	ErrReminderDoesNotExist = errors.New("reminder does not exist")
	ErrReminderPermission   = errors.New("reminder belongs to another owner")
	ErrInvalidOccurrence    = errors.New("reminder month or day is out of range")
	ErrInvalidLeadDays      = errors.New("reminder lead days must be positive")
	ErrParseLeadDays        = errors.New("invalid lead days value")
)
