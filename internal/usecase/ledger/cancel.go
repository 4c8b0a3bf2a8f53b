package ledger

import (
	"fmt"

	"escrow-deal-service/internal/domain"
	"go.uber.org/zap"
)

// Cancel aborts a non-terminal deal. Any participant or the admin may
// cancel. Returns (false, nil) when the deal already reached a terminal
// status.
func (uc *DefaultLedgerUsecase) Cancel(dealID string, actingUserID int64) (bool, error) {
	deal, err := uc.dealRepo.GetDealByID(dealID)
	if err != nil {
		return false, err
	}
	if !deal.IsParticipant(actingUserID) && !uc.isAdmin(actingUserID) {
		return false, domain.ErrNotAllowed
	}
	if deal.Status.IsTerminal() {
		return false, domain.ErrWrongStatus
	}

	cancelled, err := uc.dealRepo.CancelDeal(dealID)
	if err != nil {
		uc.metrics.DealErrorsTotal.WithLabelValues("cancel").Inc()
		return false, err
	}
	if !cancelled {
		return false, nil
	}

	uc.appendSystemMessage(dealID, "Chat closed. The deal was cancelled.")

	action := "deal_cancelled"
	if uc.isAdmin(actingUserID) && !deal.IsParticipant(actingUserID) {
		action = "deal_cancelled_admin"
	}
	uc.logAction(action, actingUserID, dealID, "")
	uc.metrics.DealsCancelledTotal.WithLabelValues(string(deal.Currency)).Inc()

	deal.Status = domain.StatusCancelled
	uc.publishEvent(deal, "cancelling")

	text := fmt.Sprintf("Deal %s was cancelled.", deal.Code)
	for _, participant := range []*int64{&deal.SellerID, deal.BuyerID, deal.GuarantorID} {
		if participant == nil || *participant == actingUserID {
			continue
		}
		uc.notify(*participant, text)
	}

	uc.log.Info("deal cancelled",
		zap.String("deal_id", dealID),
		zap.Int64("acting_user_id", actingUserID))

	return true, nil
}
