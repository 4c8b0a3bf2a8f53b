package identity

import (
	"escrow-deal-service/internal/domain"
	"go.uber.org/zap"
)

type DefaultIdentityUsecase struct {
	userRepo     domain.UserRepository
	walletRepo   domain.WalletRepository
	scammerRepo  domain.ScammerRepository
	settingsRepo domain.SettingsRepository
	audit        domain.AuditLogger
	log          *zap.Logger
	adminID      int64
}

func NewDefaultIdentityUsecase(
	userRepo domain.UserRepository,
	walletRepo domain.WalletRepository,
	scammerRepo domain.ScammerRepository,
	settingsRepo domain.SettingsRepository,
	audit domain.AuditLogger,
	log *zap.Logger,
	adminID int64,
) *DefaultIdentityUsecase {
	return &DefaultIdentityUsecase{
		userRepo:     userRepo,
		walletRepo:   walletRepo,
		scammerRepo:  scammerRepo,
		settingsRepo: settingsRepo,
		audit:        audit,
		log:          log,
		adminID:      adminID,
	}
}

func (uc *DefaultIdentityUsecase) isAdmin(userID int64) bool {
	return uc.adminID != 0 && userID == uc.adminID
}

func (uc *DefaultIdentityUsecase) logAction(action string, userID int64, details string) {
	if err := uc.audit.LogAction(action, userID, "", details); err != nil {
		uc.log.Error("audit log write failed", zap.Error(err))
	}
}
