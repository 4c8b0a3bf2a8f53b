package ledger

import (
	"fmt"
	"sync"
	"time"

	"escrow-deal-service/internal/domain"
	"github.com/shopspring/decimal"
)

type fakeDealRepo struct {
	mu    sync.Mutex
	deals map[string]*domain.Deal
	codes map[string]bool
}

func newFakeDealRepo() *fakeDealRepo {
	return &fakeDealRepo{
		deals: make(map[string]*domain.Deal),
		codes: make(map[string]bool),
	}
}

func (r *fakeDealRepo) CreateDeal(deal *domain.Deal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *deal
	r.deals[deal.ID] = &copied
	return nil
}

func (r *fakeDealRepo) ReserveCode(code string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.codes[code] {
		return false, nil
	}
	r.codes[code] = true
	return true, nil
}

func (r *fakeDealRepo) GetDealByID(dealID string) (*domain.Deal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	deal, ok := r.deals[dealID]
	if !ok {
		return nil, domain.ErrDealNotFound
	}
	copied := *deal
	return &copied, nil
}

func (r *fakeDealRepo) GetDealByCode(code string) (*domain.Deal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, deal := range r.deals {
		if deal.Code == code {
			copied := *deal
			return &copied, nil
		}
	}
	return nil, domain.ErrDealNotFound
}

func (r *fakeDealRepo) JoinDeal(code string, buyerID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, deal := range r.deals {
		if deal.Code != code {
			continue
		}
		if deal.BuyerID != nil || deal.Status != domain.StatusWaitingBuyer {
			return false, nil
		}
		deal.BuyerID = &buyerID
		deal.Status = domain.StatusWaitingGuarantor
		return true, nil
	}
	return false, nil
}

func (r *fakeDealRepo) AssignGuarantor(dealID string, guarantorID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	deal, ok := r.deals[dealID]
	if !ok || deal.Status != domain.StatusWaitingGuarantor {
		return false, nil
	}
	now := time.Now()
	deal.GuarantorID = &guarantorID
	deal.Status = domain.StatusInProgress
	deal.StartedAt = &now
	return true, nil
}

func (r *fakeDealRepo) SetGuarantorCalled(dealID string, called bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	deal, ok := r.deals[dealID]
	if !ok {
		return domain.ErrDealNotFound
	}
	deal.GuarantorCalled = called
	if called {
		now := time.Now()
		deal.GuarantorCalledAt = &now
	} else {
		deal.GuarantorCalledAt = nil
	}
	return nil
}

func (r *fakeDealRepo) CompleteDeal(dealID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	deal, ok := r.deals[dealID]
	if !ok || deal.Status != domain.StatusInProgress {
		return false, nil
	}
	now := time.Now()
	deal.Status = domain.StatusCompleted
	deal.CompletedAt = &now
	return true, nil
}

func (r *fakeDealRepo) CancelDeal(dealID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	deal, ok := r.deals[dealID]
	if !ok || deal.Status.IsTerminal() {
		return false, nil
	}
	now := time.Now()
	deal.Status = domain.StatusCancelled
	deal.CompletedAt = &now
	deal.GuarantorCalled = false
	deal.GuarantorCalledAt = nil
	return true, nil
}

func (r *fakeDealRepo) ActiveDealForParticipant(userID int64) (*domain.Deal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, deal := range r.deals {
		if deal.Status.IsTerminal() {
			continue
		}
		if deal.SellerID == userID || (deal.BuyerID != nil && *deal.BuyerID == userID) {
			copied := *deal
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeDealRepo) ActiveDealForGuarantor(guarantorID int64) (*domain.Deal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, deal := range r.deals {
		if deal.Status == domain.StatusInProgress &&
			deal.GuarantorID != nil && *deal.GuarantorID == guarantorID {
			copied := *deal
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeDealRepo) PendingDeals() ([]*domain.Deal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var pending []*domain.Deal
	for _, deal := range r.deals {
		if deal.Status == domain.StatusWaitingGuarantor {
			copied := *deal
			pending = append(pending, &copied)
		}
	}
	return pending, nil
}

func (r *fakeDealRepo) DealsHistory(userID int64) ([]*domain.Deal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var history []*domain.Deal
	for _, deal := range r.deals {
		if deal.IsParticipant(userID) {
			copied := *deal
			history = append(history, &copied)
		}
	}
	return history, nil
}

func (r *fakeDealRepo) ListDeals() ([]*domain.Deal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	deals := make([]*domain.Deal, 0, len(r.deals))
	for _, deal := range r.deals {
		copied := *deal
		deals = append(deals, &copied)
	}
	return deals, nil
}

func (r *fakeDealRepo) DeleteExpiredWaiting(cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for id, deal := range r.deals {
		if deal.Status == domain.StatusWaitingBuyer && deal.CreatedAt.Before(cutoff) {
			delete(r.deals, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *fakeDealRepo) ResetStaleGuarantorCalls(cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var reset int64
	for _, deal := range r.deals {
		if deal.Status == domain.StatusWaitingGuarantor && deal.GuarantorCalled &&
			deal.GuarantorCalledAt != nil && deal.GuarantorCalledAt.Before(cutoff) {
			deal.GuarantorCalled = false
			deal.GuarantorCalledAt = nil
			reset++
		}
	}
	return reset, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[int64]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.User)}
}

func (r *fakeUserRepo) CreateUser(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; ok {
		return nil
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetUserByID(userID int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) SetBanned(userID int64, banned bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[userID]; ok {
		user.IsBanned = banned
	}
	return nil
}

func (r *fakeUserRepo) SetGuarantor(userID int64, isGuarantor bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[userID]; ok {
		user.IsGuarantor = isGuarantor
	}
	return nil
}

func (r *fakeUserRepo) UpdateRating(userID int64, rating float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[userID]; ok {
		user.Rating = rating
	}
	return nil
}

func (r *fakeUserRepo) AdjustBalance(userID int64, currency domain.Currency, delta decimal.Decimal) error {
	return nil
}

func (r *fakeUserRepo) IncrementDealStats(userIDs ...int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range userIDs {
		if user, ok := r.users[id]; ok {
			user.TotalDeals++
			user.CompletedDeals++
		}
	}
	return nil
}

func (r *fakeUserRepo) ListGuarantors() ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var guarantors []*domain.User
	for _, user := range r.users {
		if user.IsGuarantor && !user.IsBanned {
			copied := *user
			guarantors = append(guarantors, &copied)
		}
	}
	return guarantors, nil
}

func (r *fakeUserRepo) ListUsers() ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]*domain.User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

type fakeWalletRepo struct {
	mu      sync.Mutex
	wallets map[int64][]*domain.Wallet
}

func newFakeWalletRepo() *fakeWalletRepo {
	return &fakeWalletRepo{wallets: make(map[int64][]*domain.Wallet)}
}

func (r *fakeWalletRepo) CreateWallet(wallet *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *wallet
	r.wallets[wallet.UserID] = append(r.wallets[wallet.UserID], &copied)
	return nil
}

func (r *fakeWalletRepo) GetUserWallets(userID int64) ([]*domain.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var active []*domain.Wallet
	for _, wallet := range r.wallets[userID] {
		if wallet.Active {
			active = append(active, wallet)
		}
	}
	return active, nil
}

func (r *fakeWalletRepo) DeactivateWallet(walletID string, userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, wallet := range r.wallets[userID] {
		if wallet.ID == walletID && wallet.Active {
			wallet.Active = false
			return true, nil
		}
	}
	return false, nil
}

type fakeScammerRepo struct {
	mu      sync.Mutex
	flagged map[int64]*domain.ScammerRecord
}

func newFakeScammerRepo() *fakeScammerRepo {
	return &fakeScammerRepo{flagged: make(map[int64]*domain.ScammerRecord)}
}

func (r *fakeScammerRepo) AddScammer(record *domain.ScammerRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *record
	r.flagged[record.UserID] = &copied
	return nil
}

func (r *fakeScammerRepo) RemoveScammer(userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.flagged[userID]; !ok {
		return false, nil
	}
	delete(r.flagged, userID)
	return true, nil
}

func (r *fakeScammerRepo) IsScammer(userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.flagged[userID]
	return ok, nil
}

func (r *fakeScammerRepo) GetScammer(userID int64) (*domain.ScammerRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.flagged[userID]
	if !ok {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

func (r *fakeScammerRepo) ListScammers() ([]*domain.ScammerRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	records := make([]*domain.ScammerRecord, 0, len(r.flagged))
	for _, record := range r.flagged {
		copied := *record
		records = append(records, &copied)
	}
	return records, nil
}

type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings map[string]string
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: make(map[string]string)}
}

func (r *fakeSettingsRepo) GetSetting(key, defaultValue string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if value, ok := r.settings[key]; ok {
		return value, nil
	}
	return defaultValue, nil
}

func (r *fakeSettingsRepo) SetSetting(key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings[key] = value
	return nil
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []*domain.DealMessage
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{}
}

func (r *fakeMessageRepo) AddMessage(message *domain.DealMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *message
	copied.CreatedAt = time.Now()
	r.messages = append(r.messages, &copied)
	return nil
}

func (r *fakeMessageRepo) GetMessages(dealID string, limit int) ([]*domain.DealMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*domain.DealMessage
	for _, message := range r.messages {
		if message.DealID == dealID {
			copied := *message
			result = append(result, &copied)
		}
	}
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeMessageRepo) UnreadCount(dealID string, readerID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, message := range r.messages {
		if message.DealID == dealID && message.SenderID != readerID && !message.ReadByPartner {
			count++
		}
	}
	return count, nil
}

func (r *fakeMessageRepo) MarkRead(dealID string, readerID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, message := range r.messages {
		if message.DealID == dealID && message.SenderID != readerID {
			message.ReadByPartner = true
		}
	}
	return nil
}

func (r *fakeMessageRepo) SearchMessages(term string, limit int) ([]*domain.DealMessage, error) {
	return nil, nil
}

func (r *fakeMessageRepo) ThreadSummaries(limit int) ([]*domain.ThreadSummary, error) {
	return nil, nil
}

type fakeDispatcher struct {
	mu     sync.Mutex
	result domain.BatchResult
	err    error
	calls  int
}

func (d *fakeDispatcher) Dispatch(deal *domain.Deal) (domain.BatchResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	return d.result, d.err
}

type fakePublisher struct {
	mu     sync.Mutex
	events []domain.DealEvent
}

func (p *fakePublisher) PublishDeal(event domain.DealEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

type fakeSink struct {
	mu     sync.Mutex
	sent   map[int64][]domain.Notification
	fail   bool
	nextID int
}

func newFakeSink() *fakeSink {
	return &fakeSink{sent: make(map[int64][]domain.Notification)}
}

func (s *fakeSink) Send(userID int64, notification domain.Notification) (domain.MessageRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return domain.MessageRef{}, fmt.Errorf("send failed")
	}
	s.sent[userID] = append(s.sent[userID], notification)
	s.nextID++
	return domain.MessageRef{ChatID: userID, MessageID: s.nextID}, nil
}

func (s *fakeSink) Edit(ref domain.MessageRef, notification domain.Notification) error {
	return nil
}

type fakeAudit struct {
	mu      sync.Mutex
	actions []string
}

func (a *fakeAudit) LogAction(action string, userID int64, dealID string, details string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.actions = append(a.actions, action)
	return nil
}

func (a *fakeAudit) GetLogs(limit int) ([]*domain.AuditEntry, error) {
	return nil, nil
}

func (a *fakeAudit) has(action string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, logged := range a.actions {
		if logged == action {
			return true
		}
	}
	return false
}
