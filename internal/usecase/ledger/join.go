package ledger

import (
	"fmt"
	"strings"

	"escrow-deal-service/internal/domain"
	"go.uber.org/zap"
)

// JoinDeal attaches buyerID to the deal behind code. The storage-level
// guard on buyer_id IS NULL arbitrates concurrent joiners: the loser gets
// ErrDealUnavailable, which callers render as "no longer available".
func (uc *DefaultLedgerUsecase) JoinDeal(code string, buyerID int64) (*domain.Deal, error) {
	if uc.maintenanceEnabled() {
		return nil, domain.ErrMaintenanceMode
	}

	code = strings.ToUpper(strings.TrimSpace(code))

	buyer, err := uc.userRepo.GetUserByID(buyerID)
	if err != nil {
		return nil, err
	}
	if buyer.IsBanned {
		return nil, domain.ErrUserBanned
	}

	flagged, err := uc.scammerRepo.IsScammer(buyerID)
	if err != nil {
		return nil, err
	}
	if flagged {
		return nil, domain.ErrScammerFlagged
	}

	active, err := uc.dealRepo.ActiveDealForParticipant(buyerID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, domain.ErrActiveDealExists
	}

	deal, err := uc.dealRepo.GetDealByCode(code)
	if err != nil {
		return nil, err
	}
	if deal.SellerID == buyerID {
		return nil, domain.ErrCannotJoinOwnDeal
	}
	if deal.Status != domain.StatusWaitingBuyer {
		return nil, domain.ErrDealUnavailable
	}

	joined, err := uc.dealRepo.JoinDeal(code, buyerID)
	if err != nil {
		uc.metrics.DealErrorsTotal.WithLabelValues("join").Inc()
		return nil, err
	}
	if !joined {
		// Another buyer committed first.
		return nil, domain.ErrDealUnavailable
	}

	deal, err = uc.dealRepo.GetDealByCode(code)
	if err != nil {
		return nil, err
	}

	uc.appendSystemMessage(deal.ID, fmt.Sprintf("Buyer %s joined the deal", formatParticipant(buyer)))
	uc.logAction("buyer_joined", buyerID, deal.ID, fmt.Sprintf("code: %s", code))
	uc.metrics.DealsJoinedTotal.WithLabelValues(string(deal.Currency)).Inc()
	uc.publishEvent(deal, "joining")

	uc.notify(deal.SellerID, fmt.Sprintf(
		"Buyer %s joined deal %s. Call a guarantor when you are ready.",
		formatParticipant(buyer), deal.Code))

	uc.log.Info("buyer joined deal",
		zap.String("deal_id", deal.ID),
		zap.Int64("buyer_id", buyerID))

	return deal, nil
}

// SellerFlag reports whether the seller behind a deal code is on the
// scammer list. The chat boundary uses it to warn a joining buyer before
// the join is submitted.
func (uc *DefaultLedgerUsecase) SellerFlag(code string) (*domain.ScammerRecord, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	deal, err := uc.dealRepo.GetDealByCode(code)
	if err != nil {
		return nil, err
	}
	return uc.scammerRepo.GetScammer(deal.SellerID)
}
