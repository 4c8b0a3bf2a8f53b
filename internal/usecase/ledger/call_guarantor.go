package ledger

import (
	"fmt"

	"escrow-deal-service/internal/domain"
	"go.uber.org/zap"
)

// CallGuarantor sets the one-shot call latch and fans the deal out to
// eligible guarantors. When nobody could be notified the latch is rolled
// back so the parties may retry.
func (uc *DefaultLedgerUsecase) CallGuarantor(dealID string, callerID int64) (int, error) {
	deal, err := uc.dealRepo.GetDealByID(dealID)
	if err != nil {
		return 0, err
	}
	if !deal.IsParticipant(callerID) {
		return 0, domain.ErrNotParticipant
	}
	if deal.Status != domain.StatusWaitingGuarantor {
		return 0, domain.ErrWrongStatus
	}
	if deal.GuarantorCalled {
		return 0, domain.ErrGuarantorAlreadyCalled
	}

	if err := uc.dealRepo.SetGuarantorCalled(dealID, true); err != nil {
		uc.metrics.DealErrorsTotal.WithLabelValues("call_guarantor").Inc()
		return 0, err
	}
	uc.metrics.GuarantorCallsTotal.Inc()

	result, err := uc.dispatcher.Dispatch(deal)
	if err != nil {
		// Roll the latch back; dispatch never partially succeeded.
		if resetErr := uc.dealRepo.SetGuarantorCalled(dealID, false); resetErr != nil {
			uc.log.Error("failed to reset guarantor-call latch",
				zap.String("deal_id", dealID),
				zap.Error(resetErr))
		}
		return 0, err
	}
	if result.Sent == 0 {
		if resetErr := uc.dealRepo.SetGuarantorCalled(dealID, false); resetErr != nil {
			uc.log.Error("failed to reset guarantor-call latch",
				zap.String("deal_id", dealID),
				zap.Error(resetErr))
		}
		return 0, domain.ErrNoGuarantorsAvailable
	}

	uc.logAction("guarantor_called", callerID, dealID,
		fmt.Sprintf("notified: %d, failed: %d", result.Sent, result.Failed))

	// Tell the other party the call went out.
	if partner, ok := deal.Partner(callerID); ok {
		uc.notify(partner, fmt.Sprintf(
			"A guarantor has been called for deal %s. Waiting for one to accept.", deal.Code))
	}

	uc.log.Info("guarantor call dispatched",
		zap.String("deal_id", dealID),
		zap.Int("notified", result.Sent),
		zap.Int("failed", result.Failed))

	return result.Sent, nil
}
