package ledger

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ReapExpiredDeals purges waiting_buyer deals older than the configured
// TTL. Idempotent and safe to run concurrently with normal traffic: it
// only touches deals nobody joined. Reserved codes are never released.
func (uc *DefaultLedgerUsecase) ReapExpiredDeals() (int64, error) {
	cutoff := time.Now().Add(-uc.cfg.WaitingBuyerTTL)
	reaped, err := uc.dealRepo.DeleteExpiredWaiting(cutoff)
	if err != nil {
		uc.metrics.DealErrorsTotal.WithLabelValues("reap").Inc()
		return 0, err
	}
	if reaped > 0 {
		uc.metrics.DealsReapedTotal.Add(float64(reaped))
		uc.logAction("expired_deals_deleted", 0, "", fmt.Sprintf("deleted: %d", reaped))
		uc.log.Info("expired deals reaped", zap.Int64("count", reaped))
	}
	return reaped, nil
}

// ResetStaleGuarantorCalls clears call latches that never produced an
// assignment, so the parties can call again. Covers guarantors that went
// offline between notification and accept.
func (uc *DefaultLedgerUsecase) ResetStaleGuarantorCalls() (int64, error) {
	cutoff := time.Now().Add(-uc.cfg.GuarantorCallTTL)
	reset, err := uc.dealRepo.ResetStaleGuarantorCalls(cutoff)
	if err != nil {
		uc.metrics.DealErrorsTotal.WithLabelValues("latch_reset").Inc()
		return 0, err
	}
	if reset > 0 {
		uc.logAction("guarantor_call_reset", 0, "", fmt.Sprintf("reset: %d", reset))
		uc.log.Info("stale guarantor calls reset", zap.Int64("count", reset))
	}
	return reset, nil
}
