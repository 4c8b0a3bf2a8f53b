package domain

import "time"

// AuditEntry records a state-changing action with its actor and subject.
type AuditEntry struct {
	ID        uint
	Action    string
	UserID    int64
	DealID    string
	Details   string
	Timestamp time.Time
}

type AuditLogger interface {
	LogAction(action string, userID int64, dealID string, details string) error
	GetLogs(limit int) ([]*AuditEntry, error)
}
