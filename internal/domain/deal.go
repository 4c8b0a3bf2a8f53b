package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DealStatus string

const (
	StatusWaitingBuyer     DealStatus = "waiting_buyer"
	StatusWaitingGuarantor DealStatus = "waiting_guarantor"
	StatusInProgress       DealStatus = "in_progress"
	StatusCompleted        DealStatus = "completed"
	StatusCancelled        DealStatus = "cancelled"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s DealStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// allowedTransitions is the single source of truth for the deal state machine.
var allowedTransitions = map[DealStatus][]DealStatus{
	StatusWaitingBuyer:     {StatusWaitingGuarantor, StatusCancelled},
	StatusWaitingGuarantor: {StatusInProgress, StatusCancelled},
	StatusInProgress:       {StatusCompleted, StatusCancelled},
	StatusCompleted:        {},
	StatusCancelled:        {},
}

func CanTransition(from, to DealStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Currency string

const (
	CurrencyRub    Currency = "rub"
	CurrencyCrypto Currency = "crypto"
	CurrencyStars  Currency = "stars"
)

func (c Currency) Valid() bool {
	return c == CurrencyRub || c == CurrencyCrypto || c == CurrencyStars
}

type Deal struct {
	ID                string
	Code              string
	SellerID          int64
	BuyerID           *int64
	GuarantorID       *int64
	Currency          Currency
	Amount            decimal.Decimal
	Description       string
	Status            DealStatus
	CommissionPercent float64
	GuarantorCalled   bool
	GuarantorCalledAt *time.Time
	CreatedAt         time.Time
	StartedAt         *time.Time
	CompletedAt       *time.Time
}

// IsParticipant reports whether userID is the seller, buyer or guarantor.
func (d *Deal) IsParticipant(userID int64) bool {
	if d.SellerID == userID {
		return true
	}
	if d.BuyerID != nil && *d.BuyerID == userID {
		return true
	}
	if d.GuarantorID != nil && *d.GuarantorID == userID {
		return true
	}
	return false
}

// Partner returns the counterparty of userID among seller and buyer.
func (d *Deal) Partner(userID int64) (int64, bool) {
	if d.BuyerID == nil {
		return 0, false
	}
	switch userID {
	case d.SellerID:
		return *d.BuyerID, true
	case *d.BuyerID:
		return d.SellerID, true
	}
	return 0, false
}

type DealRepository interface {
	CreateDeal(deal *Deal) error
	// ReserveCode inserts code into the permanent reservation table.
	// Returns false when the code was already taken.
	ReserveCode(code string) (bool, error)
	GetDealByID(dealID string) (*Deal, error)
	GetDealByCode(code string) (*Deal, error)
	// JoinDeal is a conditional single-row update guarded on
	// buyer_id IS NULL AND status = waiting_buyer. Returns false when
	// the guard did not match (race lost or wrong status).
	JoinDeal(code string, buyerID int64) (bool, error)
	// AssignGuarantor is guarded on status = waiting_guarantor so that
	// of N racing guarantors exactly one wins.
	AssignGuarantor(dealID string, guarantorID int64) (bool, error)
	SetGuarantorCalled(dealID string, called bool) error
	// CompleteDeal is guarded on status = in_progress.
	CompleteDeal(dealID string) (bool, error)
	// CancelDeal is guarded on status being non-terminal; also clears
	// the guarantor-called latch.
	CancelDeal(dealID string) (bool, error)
	ActiveDealForParticipant(userID int64) (*Deal, error)
	ActiveDealForGuarantor(guarantorID int64) (*Deal, error)
	PendingDeals() ([]*Deal, error)
	DealsHistory(userID int64) ([]*Deal, error)
	ListDeals() ([]*Deal, error)
	// DeleteExpiredWaiting hard-deletes waiting_buyer deals created
	// before cutoff. Reserved codes are kept.
	DeleteExpiredWaiting(cutoff time.Time) (int64, error)
	ResetStaleGuarantorCalls(cutoff time.Time) (int64, error)
}
