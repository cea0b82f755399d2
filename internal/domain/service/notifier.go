package service

import "context"

// NotificationKind identifies the message template a notification maps to.
// Rendering the actual content is outside the core; the kind plus context must
// carry everything the renderer needs.
type NotificationKind string

const (
	NotificationActivationLink   NotificationKind = "activation_link"
	NotificationResetLink        NotificationKind = "reset_link"
	NotificationReminder         NotificationKind = "reminder"
	NotificationAutoCancelNotice NotificationKind = "auto_cancel_notice"
)

// Notification is one outbound message to a patient.
type Notification struct {
	Kind      NotificationKind  `json:"kind"`
	Recipient string            `json:"recipient"` // Patient email address.
	Context   map[string]string `json:"context"`   // Template context, e.g. token value, appointment summary.
}

// Notifier dispatches notifications. The production implementation is
// asynchronous and fire-and-forget: Send enqueues and returns, the outcome is
// logged, and a failure never reverses the state change that triggered it.
type Notifier interface {
	Send(ctx context.Context, notification *Notification) error
}
