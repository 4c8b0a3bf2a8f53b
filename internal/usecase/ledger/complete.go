package ledger

import (
	"fmt"

	"escrow-deal-service/internal/domain"
	"go.uber.org/zap"
)

// Complete finishes an in_progress deal. Only the assigned guarantor or
// the configured admin may complete. Returns (false, nil) when the status
// guard did not match: the deal was already completed or cancelled by a
// concurrent writer.
func (uc *DefaultLedgerUsecase) Complete(dealID string, actingUserID int64) (bool, error) {
	deal, err := uc.dealRepo.GetDealByID(dealID)
	if err != nil {
		return false, err
	}
	isGuarantor := deal.GuarantorID != nil && *deal.GuarantorID == actingUserID
	if !isGuarantor && !uc.isAdmin(actingUserID) {
		return false, domain.ErrNotAllowed
	}
	if deal.Status != domain.StatusInProgress {
		return false, domain.ErrWrongStatus
	}

	completed, err := uc.dealRepo.CompleteDeal(dealID)
	if err != nil {
		uc.metrics.DealErrorsTotal.WithLabelValues("complete").Inc()
		return false, err
	}
	if !completed {
		// Second writer of a double-completion race.
		return false, nil
	}

	// Closure notice bypasses the thread write-gate: the ledger emits it
	// at the moment of transition.
	uc.appendSystemMessage(dealID, "Chat closed. The deal was completed successfully.")

	// Paired counter increments. Best-effort relative to the status flip;
	// a failure here is recoverable by reconciliation.
	participants := []int64{deal.SellerID}
	if deal.BuyerID != nil {
		participants = append(participants, *deal.BuyerID)
	}
	if err := uc.userRepo.IncrementDealStats(participants...); err != nil {
		uc.log.Error("failed to increment deal stats",
			zap.String("deal_id", dealID),
			zap.Error(err))
	}

	action := "deal_completed"
	if uc.isAdmin(actingUserID) && !isGuarantor {
		action = "deal_completed_admin"
	}
	uc.logAction(action, actingUserID, dealID, "")
	uc.metrics.DealsCompletedTotal.WithLabelValues(string(deal.Currency)).Inc()

	deal.Status = domain.StatusCompleted
	uc.publishEvent(deal, "completing")

	text := fmt.Sprintf("Deal %s is completed. You can now rate your counterparty.", deal.Code)
	uc.notify(deal.SellerID, text)
	if deal.BuyerID != nil {
		uc.notify(*deal.BuyerID, text)
	}

	uc.log.Info("deal completed",
		zap.String("deal_id", dealID),
		zap.Int64("acting_user_id", actingUserID))

	return true, nil
}
