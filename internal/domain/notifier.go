package domain

// NotifyAction is an inline affordance attached to a notification
// (e.g. accept/decline buttons on a guarantor call).
type NotifyAction struct {
	Label string
	Data  string
}

type Notification struct {
	Text    string
	Actions []NotifyAction
}

// MessageRef identifies a previously sent notification so it can be edited.
type MessageRef struct {
	ChatID    int64
	MessageID int
}

// NotificationSink is the abstract chat transport. Delivery is best-effort:
// callers log failures and never let them fail the state transition that
// triggered the notification.
type NotificationSink interface {
	Send(userID int64, notification Notification) (MessageRef, error)
	Edit(ref MessageRef, notification Notification) error
}

// BatchResult is the per-recipient delivery tally of a fan-out.
type BatchResult struct {
	Sent   int
	Failed int
}
