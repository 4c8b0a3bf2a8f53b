package dispatch

import (
	"fmt"

	"escrow-deal-service/internal/domain"
	"escrow-deal-service/internal/infrastructure/metrics"
	"go.uber.org/zap"
)

const (
	ActionAcceptPrefix  = "accept_deal_"
	ActionDeclinePrefix = "decline_deal_"
)

// DefaultDispatchUsecase fans a waiting deal out to every eligible
// guarantor. Busy guarantors are skipped, not queued.
type DefaultDispatchUsecase struct {
	userRepo domain.UserRepository
	dealRepo domain.DealRepository
	sink     domain.NotificationSink
	metrics  *metrics.DealMetrics
	log      *zap.Logger
}

func NewDefaultDispatchUsecase(
	userRepo domain.UserRepository,
	dealRepo domain.DealRepository,
	sink domain.NotificationSink,
	dealMetrics *metrics.DealMetrics,
	log *zap.Logger,
) *DefaultDispatchUsecase {
	return &DefaultDispatchUsecase{
		userRepo: userRepo,
		dealRepo: dealRepo,
		sink:     sink,
		metrics:  dealMetrics,
		log:      log,
	}
}

// Dispatch delivers the deal summary with accept/decline affordances to
// every free guarantor and returns the per-recipient tally. Delivery is
// best-effort per recipient: one failed send never aborts the fan-out.
func (uc *DefaultDispatchUsecase) Dispatch(deal *domain.Deal) (domain.BatchResult, error) {
	guarantors, err := uc.userRepo.ListGuarantors()
	if err != nil {
		return domain.BatchResult{}, err
	}

	notification := uc.buildNotification(deal)

	var result domain.BatchResult
	for _, guarantor := range guarantors {
		busy, err := uc.dealRepo.ActiveDealForGuarantor(guarantor.ID)
		if err != nil {
			uc.log.Error("failed to check guarantor busy-state",
				zap.Int64("guarantor_id", guarantor.ID),
				zap.Error(err))
			continue
		}
		if busy != nil {
			continue
		}

		if _, err := uc.sink.Send(guarantor.ID, notification); err != nil {
			result.Failed++
			uc.log.Warn("guarantor notification failed",
				zap.Int64("guarantor_id", guarantor.ID),
				zap.Error(err))
			continue
		}
		result.Sent++
	}

	uc.metrics.GuarantorsNotified.Add(float64(result.Sent))

	uc.log.Info("guarantor dispatch finished",
		zap.String("deal_id", deal.ID),
		zap.Int("sent", result.Sent),
		zap.Int("failed", result.Failed))

	return result, nil
}

func (uc *DefaultDispatchUsecase) buildNotification(deal *domain.Deal) domain.Notification {
	text := fmt.Sprintf(
		"Deal %s needs a guarantor.\nAmount: %s %s\nDescription: %s",
		deal.Code, deal.Amount.String(), deal.Currency, deal.Description)
	return domain.Notification{
		Text: text,
		Actions: []domain.NotifyAction{
			{Label: "Accept", Data: ActionAcceptPrefix + deal.ID},
			{Label: "Decline", Data: ActionDeclinePrefix + deal.ID},
		},
	}
}
