package ledger

import (
	"fmt"

	"escrow-deal-service/internal/domain"
	"go.uber.org/zap"
)

// AssignGuarantor handles a guarantor accepting a call. Returns
// (false, nil) when the assignment race was lost: the deal is simply no
// longer available, which is not an error.
func (uc *DefaultLedgerUsecase) AssignGuarantor(dealID string, guarantorID int64) (bool, error) {
	guarantor, err := uc.userRepo.GetUserByID(guarantorID)
	if err != nil {
		return false, err
	}
	if !guarantor.IsGuarantor || guarantor.IsBanned {
		return false, domain.ErrNotGuarantor
	}

	busy, err := uc.dealRepo.ActiveDealForGuarantor(guarantorID)
	if err != nil {
		return false, err
	}
	if busy != nil {
		return false, domain.ErrGuarantorBusy
	}

	accepted, err := uc.dealRepo.AssignGuarantor(dealID, guarantorID)
	if err != nil {
		if err == domain.ErrGuarantorBusy {
			return false, err
		}
		uc.metrics.DealErrorsTotal.WithLabelValues("assign").Inc()
		return false, err
	}
	if !accepted {
		uc.metrics.GuarantorRaceLostTotal.Inc()
		return false, nil
	}

	deal, err := uc.dealRepo.GetDealByID(dealID)
	if err != nil {
		return true, err
	}

	uc.appendSystemMessage(dealID, fmt.Sprintf(
		"Guarantor %s accepted the deal. The deal is now in progress.", formatParticipant(guarantor)))
	uc.logAction("guarantor_assigned", guarantorID, dealID, "")
	uc.metrics.GuarantorAcceptsTotal.Inc()
	uc.publishEvent(deal, "assigning")

	text := fmt.Sprintf(
		"Guarantor %s accepted deal %s. The deal chat is now open for all three parties.",
		formatParticipant(guarantor), deal.Code)
	uc.notify(deal.SellerID, text)
	if deal.BuyerID != nil {
		uc.notify(*deal.BuyerID, text)
	}

	uc.log.Info("guarantor assigned",
		zap.String("deal_id", dealID),
		zap.Int64("guarantor_id", guarantorID))

	return true, nil
}
