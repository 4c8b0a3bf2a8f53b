package ledger

import (
	"fmt"

	"escrow-deal-service/internal/config"
	"escrow-deal-service/internal/domain"
	"escrow-deal-service/internal/infrastructure/metrics"
	"go.uber.org/zap"
)

// CodeGenerator produces a candidate deal code. Uniqueness is enforced
// against the reservation table, not by the generator.
type CodeGenerator func() string

type DefaultLedgerUsecase struct {
	dealRepo     domain.DealRepository
	userRepo     domain.UserRepository
	walletRepo   domain.WalletRepository
	scammerRepo  domain.ScammerRepository
	settingsRepo domain.SettingsRepository
	messageRepo  domain.MessageRepository
	dispatcher   domain.GuarantorDispatcher
	publisher    domain.DealEventPublisher
	sink         domain.NotificationSink
	audit        domain.AuditLogger
	metrics      *metrics.DealMetrics
	log          *zap.Logger
	cfg          config.DealSettings
	adminID      int64
	generateCode CodeGenerator
}

func NewDefaultLedgerUsecase(
	dealRepo domain.DealRepository,
	userRepo domain.UserRepository,
	walletRepo domain.WalletRepository,
	scammerRepo domain.ScammerRepository,
	settingsRepo domain.SettingsRepository,
	messageRepo domain.MessageRepository,
	dispatcher domain.GuarantorDispatcher,
	publisher domain.DealEventPublisher,
	sink domain.NotificationSink,
	audit domain.AuditLogger,
	dealMetrics *metrics.DealMetrics,
	log *zap.Logger,
	cfg config.DealSettings,
	adminID int64,
	generateCode CodeGenerator,
) *DefaultLedgerUsecase {
	return &DefaultLedgerUsecase{
		dealRepo:     dealRepo,
		userRepo:     userRepo,
		walletRepo:   walletRepo,
		scammerRepo:  scammerRepo,
		settingsRepo: settingsRepo,
		messageRepo:  messageRepo,
		dispatcher:   dispatcher,
		publisher:    publisher,
		sink:         sink,
		audit:        audit,
		metrics:      dealMetrics,
		log:          log,
		cfg:          cfg,
		adminID:      adminID,
		generateCode: generateCode,
	}
}

func (uc *DefaultLedgerUsecase) isAdmin(userID int64) bool {
	return uc.adminID != 0 && userID == uc.adminID
}

func (uc *DefaultLedgerUsecase) maintenanceEnabled() bool {
	value, err := uc.settingsRepo.GetSetting(domain.SettingMaintenanceMode, "false")
	if err != nil {
		uc.log.Error("failed to read maintenance setting", zap.Error(err))
		return false
	}
	return value == "true"
}

func (uc *DefaultLedgerUsecase) publishEvent(deal *domain.Deal, stage string) {
	event := domain.DealEvent{
		DealID:   deal.ID,
		Code:     deal.Code,
		SellerID: deal.SellerID,
		Status:   string(deal.Status),
		Amount:   deal.Amount.String(),
		Currency: string(deal.Currency),
	}
	if deal.BuyerID != nil {
		event.BuyerID = *deal.BuyerID
	}
	if deal.GuarantorID != nil {
		event.GuarantorID = *deal.GuarantorID
	}

	go func(event domain.DealEvent) {
		if err := uc.publisher.PublishDeal(event); err != nil {
			uc.log.Error("failed to publish deal event",
				zap.String("stage", stage),
				zap.String("deal_id", event.DealID),
				zap.Error(err))
		}
	}(event)
}

// notify is best-effort: a delivery failure never fails the transition
// that triggered it.
func (uc *DefaultLedgerUsecase) notify(userID int64, text string) {
	if _, err := uc.sink.Send(userID, domain.Notification{Text: text}); err != nil {
		uc.log.Warn("notification delivery failed",
			zap.Int64("user_id", userID),
			zap.Error(err))
	}
}

func (uc *DefaultLedgerUsecase) appendSystemMessage(dealID, text string) {
	message := &domain.DealMessage{
		DealID:   dealID,
		SenderID: domain.SystemSenderID,
		Text:     text,
		Kind:     domain.MessageKindSystem,
	}
	if err := uc.messageRepo.AddMessage(message); err != nil {
		uc.log.Error("failed to append system message",
			zap.String("deal_id", dealID),
			zap.Error(err))
	}
}

func (uc *DefaultLedgerUsecase) logAction(action string, userID int64, dealID, details string) {
	if err := uc.audit.LogAction(action, userID, dealID, details); err != nil {
		uc.log.Error("audit log write failed",
			zap.String("action", action),
			zap.Error(err))
	}
}

func formatParticipant(user *domain.User) string {
	if user == nil {
		return "unknown"
	}
	if user.FirstName != "" {
		return user.FirstName
	}
	if user.Username != "" {
		return user.Username
	}
	return fmt.Sprintf("ID%d", user.ID)
}
