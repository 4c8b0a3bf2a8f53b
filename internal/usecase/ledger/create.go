package ledger

import (
	"fmt"
	"time"
	"unicode/utf8"

	"escrow-deal-service/internal/domain"
	dealdto "escrow-deal-service/internal/usecase/dto/deal"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// codeAttempts bounds the retry-until-unique loop. With a 36^6 code space
// exhausting it means the generator is broken, not the space.
const codeAttempts = 10

func (uc *DefaultLedgerUsecase) CreateDeal(input *dealdto.CreateDealInput) (*domain.Deal, error) {
	if uc.maintenanceEnabled() {
		return nil, domain.ErrMaintenanceMode
	}
	if !input.Currency.Valid() {
		return nil, domain.ErrInvalidCurrency
	}
	if input.Amount.LessThanOrEqual(decimal.Zero) ||
		input.Amount.GreaterThan(decimal.NewFromFloat(uc.cfg.MaxAmount)) {
		return nil, domain.ErrInvalidAmount
	}
	descLen := utf8.RuneCountInString(input.Description)
	if descLen < uc.cfg.MinDescriptionLen || descLen > uc.cfg.MaxDescriptionLen {
		return nil, domain.ErrInvalidDescription
	}

	seller, err := uc.userRepo.GetUserByID(input.SellerID)
	if err != nil {
		return nil, err
	}
	if seller.IsBanned {
		return nil, domain.ErrUserBanned
	}

	flagged, err := uc.scammerRepo.IsScammer(input.SellerID)
	if err != nil {
		return nil, err
	}
	if flagged {
		return nil, domain.ErrScammerFlagged
	}

	active, err := uc.dealRepo.ActiveDealForParticipant(input.SellerID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, domain.ErrActiveDealExists
	}

	compatible, err := uc.hasCompatibleWallet(input.SellerID, input.Currency)
	if err != nil {
		return nil, err
	}
	if !compatible {
		return nil, domain.ErrNoCompatibleWallet
	}

	code, err := uc.reserveUniqueCode()
	if err != nil {
		return nil, err
	}

	deal := &domain.Deal{
		ID:                uuid.NewString(),
		Code:              code,
		SellerID:          input.SellerID,
		Currency:          input.Currency,
		Amount:            input.Amount,
		Description:       input.Description,
		Status:            domain.StatusWaitingBuyer,
		CommissionPercent: uc.cfg.CommissionPercent,
		CreatedAt:         time.Now(),
	}

	if err := uc.dealRepo.CreateDeal(deal); err != nil {
		uc.metrics.DealErrorsTotal.WithLabelValues("create").Inc()
		return nil, err
	}

	uc.logAction("deal_created", input.SellerID, deal.ID, fmt.Sprintf("code: %s", code))
	uc.metrics.DealsCreatedTotal.WithLabelValues(string(deal.Currency)).Inc()
	uc.publishEvent(deal, "creating")

	uc.log.Info("deal created",
		zap.String("deal_id", deal.ID),
		zap.String("code", code),
		zap.Int64("seller_id", input.SellerID))

	return deal, nil
}

func (uc *DefaultLedgerUsecase) hasCompatibleWallet(userID int64, currency domain.Currency) (bool, error) {
	wallets, err := uc.walletRepo.GetUserWallets(userID)
	if err != nil {
		return false, err
	}
	for _, wallet := range wallets {
		for _, walletType := range domain.CompatibleWalletTypes(currency) {
			if wallet.Type == walletType {
				return true, nil
			}
		}
	}
	return false, nil
}

func (uc *DefaultLedgerUsecase) reserveUniqueCode() (string, error) {
	for i := 0; i < codeAttempts; i++ {
		code := uc.generateCode()
		ok, err := uc.dealRepo.ReserveCode(code)
		if err != nil {
			return "", err
		}
		if ok {
			return code, nil
		}
	}
	return "", fmt.Errorf("failed to reserve a unique deal code after %d attempts", codeAttempts)
}
