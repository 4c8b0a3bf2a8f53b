package background

import (
	"escrow-deal-service/internal/usecase/ledger"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type BackgroundTasks struct {
	LedgerUsecase *ledger.DefaultLedgerUsecase
	log           *zap.Logger
	cron          *cron.Cron
}

func NewBackgroundTasks(ledgerUC *ledger.DefaultLedgerUsecase, log *zap.Logger) *BackgroundTasks {
	return &BackgroundTasks{
		LedgerUsecase: ledgerUC,
		log:           log,
		cron:          cron.New(),
	}
}

// StartAll schedules the minutely maintenance jobs: purging unjoined
// deals past their TTL and unlatching guarantor calls that never led to
// an assignment.
func (bt *BackgroundTasks) StartAll() error {
	if _, err := bt.cron.AddFunc("@every 1m", bt.reapExpiredDeals); err != nil {
		return err
	}
	if _, err := bt.cron.AddFunc("@every 1m", bt.resetStaleGuarantorCalls); err != nil {
		return err
	}
	bt.cron.Start()
	return nil
}

func (bt *BackgroundTasks) Stop() {
	<-bt.cron.Stop().Done()
}

func (bt *BackgroundTasks) reapExpiredDeals() {
	if _, err := bt.LedgerUsecase.ReapExpiredDeals(); err != nil {
		bt.log.Error("expired deal reaping failed", zap.Error(err))
	}
}

func (bt *BackgroundTasks) resetStaleGuarantorCalls() {
	if _, err := bt.LedgerUsecase.ResetStaleGuarantorCalls(); err != nil {
		bt.log.Error("guarantor call reset failed", zap.Error(err))
	}
}
