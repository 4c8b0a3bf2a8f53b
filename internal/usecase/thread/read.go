package thread

import (
	"escrow-deal-service/internal/domain"
)

func (uc *DefaultThreadUsecase) Messages(dealID string, requesterID int64, limit int) ([]*domain.DealMessage, error) {
	deal, err := uc.dealRepo.GetDealByID(dealID)
	if err != nil {
		return nil, err
	}
	if !uc.canRead(deal, requesterID) {
		return nil, domain.ErrNotParticipant
	}
	if limit <= 0 {
		limit = defaultMessageLimit
	}
	return uc.messageRepo.GetMessages(dealID, limit)
}

// MarkRead flips the partner-read flag on every message in the deal not
// authored by the reader.
func (uc *DefaultThreadUsecase) MarkRead(dealID string, readerID int64) error {
	deal, err := uc.dealRepo.GetDealByID(dealID)
	if err != nil {
		return err
	}
	if !deal.IsParticipant(readerID) {
		return domain.ErrNotParticipant
	}
	return uc.messageRepo.MarkRead(dealID, readerID)
}

// UnreadCount badges the chat-entry affordance.
func (uc *DefaultThreadUsecase) UnreadCount(dealID string, readerID int64) (int64, error) {
	deal, err := uc.dealRepo.GetDealByID(dealID)
	if err != nil {
		return 0, err
	}
	if !uc.canRead(deal, readerID) {
		return 0, domain.ErrNotParticipant
	}
	return uc.messageRepo.UnreadCount(dealID, readerID)
}
