package thread

import (
	"escrow-deal-service/internal/domain"
)

// ThreadSummaries lists per-deal message totals for the ops surface.
func (uc *DefaultThreadUsecase) ThreadSummaries(requesterID int64, limit int) ([]*domain.ThreadSummary, error) {
	if !uc.isAdmin(requesterID) {
		return nil, domain.ErrNotAllowed
	}
	return uc.messageRepo.ThreadSummaries(limit)
}

// SearchMessages scans message text across all threads. Admin only.
func (uc *DefaultThreadUsecase) SearchMessages(requesterID int64, query string, limit int) ([]*domain.DealMessage, error) {
	if !uc.isAdmin(requesterID) {
		return nil, domain.ErrNotAllowed
	}
	return uc.messageRepo.SearchMessages(query, limit)
}
