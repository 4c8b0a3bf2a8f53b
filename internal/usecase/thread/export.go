package thread

import (
	"fmt"
	"strings"

	"escrow-deal-service/internal/domain"
	"go.uber.org/zap"
)

// inlineTranscriptLimit caps the fallback transcript returned when the
// archive service is unreachable.
const inlineTranscriptLimit = 3500

// TranscriptExport is the result of exporting a deal thread. Exactly one
// of ArchiveURL and Inline is set.
type TranscriptExport struct {
	Deal          *domain.Deal
	MessageCounts map[int64]int
	ArchiveURL    string
	Inline        string
}

// Export renders the full thread transcript and uploads it to the
// archive service. When the upload fails the transcript is returned
// inline, truncated, so the requester still gets something.
func (uc *DefaultThreadUsecase) Export(dealID string, requesterID int64) (*TranscriptExport, error) {
	deal, err := uc.dealRepo.GetDealByID(dealID)
	if err != nil {
		return nil, err
	}
	if !uc.canRead(deal, requesterID) {
		return nil, domain.ErrNotParticipant
	}

	messages, err := uc.messageRepo.GetMessages(dealID, 0)
	if err != nil {
		return nil, err
	}

	counts := make(map[int64]int)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Deal %s (%s %s)\nStatus: %s\n\n",
		deal.Code, deal.Amount.String(), deal.Currency, deal.Status))
	for _, m := range messages {
		counts[m.SenderID]++
		sender := fmt.Sprintf("ID%d", m.SenderID)
		if m.SenderID == domain.SystemSenderID {
			sender = "system"
		}
		sb.WriteString(fmt.Sprintf("[%s] %s: %s\n",
			m.CreatedAt.Format("2006-01-02 15:04:05"), sender, m.Text))
	}
	transcript := sb.String()

	export := &TranscriptExport{Deal: deal, MessageCounts: counts}

	title := fmt.Sprintf("Deal %s transcript", deal.Code)
	url, err := uc.archive.Upload(title, transcript)
	if err != nil {
		uc.log.Warn("transcript upload failed, falling back to inline",
			zap.String("deal_id", dealID), zap.Error(err))
		if len(transcript) > inlineTranscriptLimit {
			transcript = transcript[:inlineTranscriptLimit] + "\n... (truncated)"
		}
		export.Inline = transcript
		return export, nil
	}
	export.ArchiveURL = url

	if err := uc.audit.LogAction("transcript_exported", requesterID, dealID, url); err != nil {
		uc.log.Error("audit log write failed", zap.Error(err))
	}
	return export, nil
}
