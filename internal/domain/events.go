package domain

// DealEvent is published to the deal-events topic on every lifecycle
// transition. Consumed by reporting and broadcast services.
type DealEvent struct {
	DealID      string `json:"deal_id"`
	Code        string `json:"deal_code"`
	SellerID    int64  `json:"seller_id"`
	BuyerID     int64  `json:"buyer_id,omitempty"`
	GuarantorID int64  `json:"guarantor_id,omitempty"`
	Status      string `json:"status"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
}

type DealEventPublisher interface {
	PublishDeal(event DealEvent) error
}
