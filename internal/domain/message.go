package domain

import "time"

// SystemSenderID is the reserved sender for system-generated thread
// messages (joins, guarantor assignment, closure notices).
const SystemSenderID int64 = 0

type MessageKind string

const (
	MessageKindUser   MessageKind = "user"
	MessageKindSystem MessageKind = "system"
)

type DealMessage struct {
	ID            string
	DealID        string
	SenderID      int64
	Text          string
	Kind          MessageKind
	ReadByPartner bool
	CreatedAt     time.Time
}

type ThreadSummary struct {
	DealID       string
	Code         string
	Status       DealStatus
	MessageCount int64
	LastMessage  time.Time
}

type MessageRepository interface {
	AddMessage(message *DealMessage) error
	GetMessages(dealID string, limit int) ([]*DealMessage, error)
	UnreadCount(dealID string, readerID int64) (int64, error)
	// MarkRead flips read_by_partner on every message in the deal not
	// authored by readerID.
	MarkRead(dealID string, readerID int64) error
	SearchMessages(term string, limit int) ([]*DealMessage, error)
	ThreadSummaries(limit int) ([]*ThreadSummary, error)
}
