package ledger

import (
	"strings"

	"escrow-deal-service/internal/domain"
)

func (uc *DefaultLedgerUsecase) GetDealByID(dealID string) (*domain.Deal, error) {
	return uc.dealRepo.GetDealByID(dealID)
}

func (uc *DefaultLedgerUsecase) GetDealByCode(code string) (*domain.Deal, error) {
	return uc.dealRepo.GetDealByCode(strings.ToUpper(strings.TrimSpace(code)))
}

// ActiveDeal returns the user's current non-terminal deal as seller or
// buyer, or nil.
func (uc *DefaultLedgerUsecase) ActiveDeal(userID int64) (*domain.Deal, error) {
	return uc.dealRepo.ActiveDealForParticipant(userID)
}

// ActiveGuarantorDeal returns the deal the guarantor currently mediates,
// or nil.
func (uc *DefaultLedgerUsecase) ActiveGuarantorDeal(guarantorID int64) (*domain.Deal, error) {
	return uc.dealRepo.ActiveDealForGuarantor(guarantorID)
}

func (uc *DefaultLedgerUsecase) PendingDeals() ([]*domain.Deal, error) {
	return uc.dealRepo.PendingDeals()
}

// DealsHistory returns every deal the user took part in, in any role.
func (uc *DefaultLedgerUsecase) DealsHistory(userID int64) ([]*domain.Deal, error) {
	return uc.dealRepo.DealsHistory(userID)
}
