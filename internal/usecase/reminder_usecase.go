package usecase

import "context"

// ReminderSummary reports the outcome of one reminder sweep.
type ReminderSummary struct {
	Candidates int // appointments inside the reminder window
	Sent       int // reminders dispatched
	Skipped    int // already reminded under the once policy
	Failed     int // per-item errors, logged and skipped
}

// ReminderUsecase dispatches confirmation reminders for upcoming appointments.
type ReminderUsecase interface {
	// Run executes one sweep over the configured day window.
	Run(ctx context.Context) (*ReminderSummary, error)
}
