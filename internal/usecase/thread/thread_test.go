package thread

import (
	"fmt"
	"strings"
	"testing"

	"escrow-deal-service/internal/domain"
	"escrow-deal-service/internal/infrastructure/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testMetrics = metrics.NewDealMetrics()

const adminID int64 = 999

type memMessageRepo struct {
	messages []*domain.DealMessage
}

func (r *memMessageRepo) AddMessage(message *domain.DealMessage) error {
	copied := *message
	copied.ID = fmt.Sprintf("m%d", len(r.messages)+1)
	r.messages = append(r.messages, &copied)
	return nil
}

func (r *memMessageRepo) GetMessages(dealID string, limit int) ([]*domain.DealMessage, error) {
	var result []*domain.DealMessage
	for _, message := range r.messages {
		if message.DealID == dealID {
			result = append(result, message)
		}
	}
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *memMessageRepo) UnreadCount(dealID string, readerID int64) (int64, error) {
	var count int64
	for _, message := range r.messages {
		if message.DealID == dealID && message.SenderID != readerID && !message.ReadByPartner {
			count++
		}
	}
	return count, nil
}

func (r *memMessageRepo) MarkRead(dealID string, readerID int64) error {
	for _, message := range r.messages {
		if message.DealID == dealID && message.SenderID != readerID {
			message.ReadByPartner = true
		}
	}
	return nil
}

func (r *memMessageRepo) SearchMessages(term string, limit int) ([]*domain.DealMessage, error) {
	var result []*domain.DealMessage
	for _, message := range r.messages {
		if strings.Contains(message.Text, term) {
			result = append(result, message)
		}
	}
	return result, nil
}

func (r *memMessageRepo) ThreadSummaries(limit int) ([]*domain.ThreadSummary, error) {
	return []*domain.ThreadSummary{}, nil
}

type stubDealRepo struct {
	domain.DealRepository
	deals map[string]*domain.Deal
}

func (r *stubDealRepo) GetDealByID(dealID string) (*domain.Deal, error) {
	deal, ok := r.deals[dealID]
	if !ok {
		return nil, domain.ErrDealNotFound
	}
	return deal, nil
}

type stubArchive struct {
	url  string
	err  error
	rows int
}

func (a *stubArchive) Upload(title, text string) (string, error) {
	a.rows++
	if a.err != nil {
		return "", a.err
	}
	return a.url, nil
}

type nopAudit struct{}

func (nopAudit) LogAction(string, int64, string, string) error { return nil }
func (nopAudit) GetLogs(int) ([]*domain.AuditEntry, error)     { return nil, nil }

func ptr(v int64) *int64 { return &v }

func fixture(status domain.DealStatus) (*DefaultThreadUsecase, *memMessageRepo, *stubArchive) {
	messages := &memMessageRepo{}
	deals := &stubDealRepo{deals: map[string]*domain.Deal{
		"d1": {
			ID:       "d1",
			Code:     "AB12CD",
			SellerID: 1,
			BuyerID:  ptr(2),
			Status:   status,
		},
	}}
	archive := &stubArchive{url: "https://paste.example/abc"}
	uc := NewDefaultThreadUsecase(messages, deals, archive, nopAudit{}, testMetrics, zap.NewNop(), adminID, 1000)
	return uc, messages, archive
}

func TestPostMessage(t *testing.T) {
	uc, messages, _ := fixture(domain.StatusInProgress)

	posted, err := uc.PostMessage("d1", 1, "hello there")
	require.NoError(t, err)
	assert.Equal(t, domain.MessageKindUser, posted.Kind)
	assert.Len(t, messages.messages, 1)
}

func TestPostMessageSystemSender(t *testing.T) {
	uc, _, _ := fixture(domain.StatusWaitingGuarantor)

	posted, err := uc.PostMessage("d1", domain.SystemSenderID, "Buyer joined the deal")
	require.NoError(t, err)
	assert.Equal(t, domain.MessageKindSystem, posted.Kind)
}

func TestPostMessageRejections(t *testing.T) {
	t.Run("outsider", func(t *testing.T) {
		uc, _, _ := fixture(domain.StatusInProgress)
		_, err := uc.PostMessage("d1", 7, "let me in")
		assert.ErrorIs(t, err, domain.ErrNotParticipant)
	})

	t.Run("closed chat", func(t *testing.T) {
		uc, _, _ := fixture(domain.StatusCompleted)
		_, err := uc.PostMessage("d1", 1, "anyone here?")
		assert.ErrorIs(t, err, domain.ErrChatClosed)
	})

	t.Run("empty", func(t *testing.T) {
		uc, _, _ := fixture(domain.StatusInProgress)
		_, err := uc.PostMessage("d1", 1, "   ")
		assert.ErrorIs(t, err, domain.ErrEmptyMessage)
	})

	t.Run("too long", func(t *testing.T) {
		uc, _, _ := fixture(domain.StatusInProgress)
		_, err := uc.PostMessage("d1", 1, strings.Repeat("a", 1001))
		assert.ErrorIs(t, err, domain.ErrMessageTooLong)
	})

	t.Run("unknown deal", func(t *testing.T) {
		uc, _, _ := fixture(domain.StatusInProgress)
		_, err := uc.PostMessage("nope", 1, "hello")
		assert.ErrorIs(t, err, domain.ErrDealNotFound)
	})
}

func TestUnreadAndMarkRead(t *testing.T) {
	uc, _, _ := fixture(domain.StatusInProgress)

	_, err := uc.PostMessage("d1", 1, "first")
	require.NoError(t, err)
	_, err = uc.PostMessage("d1", 1, "second")
	require.NoError(t, err)

	count, err := uc.UnreadCount("d1", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// The author has nothing unread.
	count, err = uc.UnreadCount("d1", 1)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, uc.MarkRead("d1", 2))
	count, err = uc.UnreadCount("d1", 2)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMessagesAccess(t *testing.T) {
	uc, _, _ := fixture(domain.StatusInProgress)
	_, err := uc.PostMessage("d1", 1, "hello")
	require.NoError(t, err)

	t.Run("participant", func(t *testing.T) {
		messages, err := uc.Messages("d1", 2, 0)
		require.NoError(t, err)
		assert.Len(t, messages, 1)
	})

	t.Run("admin", func(t *testing.T) {
		messages, err := uc.Messages("d1", adminID, 0)
		require.NoError(t, err)
		assert.Len(t, messages, 1)
	})

	t.Run("outsider", func(t *testing.T) {
		_, err := uc.Messages("d1", 7, 0)
		assert.ErrorIs(t, err, domain.ErrNotParticipant)
	})
}

func TestExport(t *testing.T) {
	uc, _, archive := fixture(domain.StatusInProgress)
	_, err := uc.PostMessage("d1", 1, "selling headphones")
	require.NoError(t, err)
	_, err = uc.PostMessage("d1", 2, "deal")
	require.NoError(t, err)

	export, err := uc.Export("d1", 1)
	require.NoError(t, err)
	assert.Equal(t, archive.url, export.ArchiveURL)
	assert.Empty(t, export.Inline)
	assert.Equal(t, 1, export.MessageCounts[1])
	assert.Equal(t, 1, export.MessageCounts[2])
}

func TestExportInlineFallback(t *testing.T) {
	uc, _, archive := fixture(domain.StatusInProgress)
	archive.err = fmt.Errorf("archive unreachable")

	_, err := uc.PostMessage("d1", 1, "selling headphones")
	require.NoError(t, err)

	export, err := uc.Export("d1", 1)
	require.NoError(t, err)
	assert.Empty(t, export.ArchiveURL)
	assert.Contains(t, export.Inline, "selling headphones")
	assert.Contains(t, export.Inline, "AB12CD")
}

func TestAdminSurfaces(t *testing.T) {
	uc, _, _ := fixture(domain.StatusInProgress)
	_, err := uc.PostMessage("d1", 1, "needle in haystack")
	require.NoError(t, err)

	t.Run("search requires admin", func(t *testing.T) {
		_, err := uc.SearchMessages(1, "needle", 10)
		assert.ErrorIs(t, err, domain.ErrNotAllowed)
	})

	t.Run("search", func(t *testing.T) {
		found, err := uc.SearchMessages(adminID, "needle", 10)
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})

	t.Run("summaries require admin", func(t *testing.T) {
		_, err := uc.ThreadSummaries(2, 10)
		assert.ErrorIs(t, err, domain.ErrNotAllowed)
	})
}
