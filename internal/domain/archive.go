package domain

// TranscriptArchive uploads an exported chat transcript to an external
// paste service. Best-effort: on failure callers fall back to an inline
// truncated transcript.
type TranscriptArchive interface {
	Upload(title, text string) (string, error)
}

// GuarantorDispatcher fans a waiting deal out to eligible guarantors and
// returns the per-recipient delivery tally.
type GuarantorDispatcher interface {
	Dispatch(deal *Deal) (BatchResult, error)
}
