package thread

import (
	"strings"
	"unicode/utf8"

	"escrow-deal-service/internal/domain"
	"go.uber.org/zap"
)

// PostMessage appends a message to the deal thread. The chat is read-only
// once the deal reaches a terminal status; only the ledger's closure
// notice bypasses this gate, and it does so without going through here.
func (uc *DefaultThreadUsecase) PostMessage(dealID string, senderID int64, text string) (*domain.DealMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyMessage
	}
	if utf8.RuneCountInString(text) > uc.maxMessageLen {
		return nil, domain.ErrMessageTooLong
	}

	deal, err := uc.dealRepo.GetDealByID(dealID)
	if err != nil {
		return nil, err
	}
	if senderID != domain.SystemSenderID && !deal.IsParticipant(senderID) {
		return nil, domain.ErrNotParticipant
	}
	if deal.Status.IsTerminal() {
		return nil, domain.ErrChatClosed
	}

	kind := domain.MessageKindUser
	if senderID == domain.SystemSenderID {
		kind = domain.MessageKindSystem
	}

	message := &domain.DealMessage{
		DealID:   dealID,
		SenderID: senderID,
		Text:     text,
		Kind:     kind,
	}
	if err := uc.messageRepo.AddMessage(message); err != nil {
		uc.metrics.DealErrorsTotal.WithLabelValues("post_message").Inc()
		return nil, err
	}

	uc.metrics.ChatMessagesTotal.WithLabelValues(string(kind)).Inc()
	if err := uc.audit.LogAction("message_sent", senderID, dealID, "kind: "+string(kind)); err != nil {
		uc.log.Error("audit log write failed", zap.Error(err))
	}

	return message, nil
}
