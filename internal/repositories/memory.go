package repositories

import (
	"sort"
	"sync"
	"time"

	"campuspay/internal/models"

	"github.com/shopspring/decimal"
)

// memoryStore is a map-backed Store used by tests and for running the
// server without PostgreSQL. InTransaction serializes callers on one
// mutex, which gives the same single-writer guarantee the SQL store
// gets from row locking. There is no rollback: callers validate before
// writing, which all current services do.
type memoryStore struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	users         map[uint]models.User
	wallets       map[uint]models.Wallet
	transactions  map[uint]models.Transaction
	cards         map[uint]models.VirtualCard
	paylater      map[uint]models.PaylaterAccount
	emiPlans      map[uint]models.EmiPlan
	subscriptions map[uint]models.Subscription
	chat          map[uint]models.ChatMessage

	nextID uint
}

// NewMemoryStore creates an empty in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{
		users:         make(map[uint]models.User),
		wallets:       make(map[uint]models.Wallet),
		transactions:  make(map[uint]models.Transaction),
		cards:         make(map[uint]models.VirtualCard),
		paylater:      make(map[uint]models.PaylaterAccount),
		emiPlans:      make(map[uint]models.EmiPlan),
		subscriptions: make(map[uint]models.Subscription),
		chat:          make(map[uint]models.ChatMessage),
	}
}

func (s *memoryStore) Users() UserRepository                 { return &memUserRepo{s} }
func (s *memoryStore) Wallets() WalletRepository             { return &memWalletRepo{s} }
func (s *memoryStore) Transactions() TransactionRepository   { return &memTransactionRepo{s} }
func (s *memoryStore) Cards() CardRepository                 { return &memCardRepo{s} }
func (s *memoryStore) Paylater() PaylaterRepository          { return &memPaylaterRepo{s} }
func (s *memoryStore) EmiPlans() EmiPlanRepository           { return &memEmiPlanRepo{s} }
func (s *memoryStore) Subscriptions() SubscriptionRepository { return &memSubscriptionRepo{s} }
func (s *memoryStore) Chat() ChatRepository                  { return &memChatRepo{s} }

func (s *memoryStore) InTransaction(fn func(tx Store) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(s)
}

func (s *memoryStore) assignID() uint {
	s.nextID++
	return s.nextID
}

type memUserRepo struct{ s *memoryStore }

func (r *memUserRepo) Create(user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user.ID = r.s.assignID()
	user.CreatedAt = time.Now()
	if user.CreditScore == 0 {
		user.CreditScore = models.DefaultCreditScore
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *memUserRepo) GetByID(id uint) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (r *memUserRepo) GetByEmail(email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, user := range r.s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *memUserRepo) UpdateCreditScore(userID uint, score int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if user, ok := r.s.users[userID]; ok {
		user.CreditScore = score
		r.s.users[userID] = user
	}
	return nil
}

type memWalletRepo struct{ s *memoryStore }

func (r *memWalletRepo) Create(wallet *models.Wallet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	wallet.ID = r.s.assignID()
	wallet.CreatedAt = time.Now()
	if wallet.Unit == "" {
		wallet.Unit = models.UnitINR
	}
	r.s.wallets[wallet.ID] = *wallet
	return nil
}

func (r *memWalletRepo) GetByID(id uint) (*models.Wallet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	wallet, ok := r.s.wallets[id]
	if !ok {
		return nil, ErrWalletNotFound
	}
	return &wallet, nil
}

func (r *memWalletRepo) GetByIDForUpdate(id uint) (*models.Wallet, error) {
	// Writers are already serialized by InTransaction.
	return r.GetByID(id)
}

func (r *memWalletRepo) GetByUser(userID uint) ([]models.Wallet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var wallets []models.Wallet
	for _, w := range r.s.wallets {
		if w.UserID == userID {
			wallets = append(wallets, w)
		}
	}
	sort.Slice(wallets, func(i, j int) bool { return wallets[i].ID < wallets[j].ID })
	return wallets, nil
}

func (r *memWalletRepo) GetByUserAndType(userID uint, walletType string) (*models.Wallet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, w := range r.s.wallets {
		if w.UserID == userID && w.Type == walletType {
			wallet := w
			return &wallet, nil
		}
	}
	return nil, ErrWalletNotFound
}

func (r *memWalletRepo) UpdateBalance(id uint, balance decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if wallet, ok := r.s.wallets[id]; ok {
		wallet.Balance = balance
		wallet.UpdatedAt = time.Now()
		r.s.wallets[id] = wallet
	}
	return nil
}

type memTransactionRepo struct{ s *memoryStore }

func (r *memTransactionRepo) Create(txn *models.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	txn.ID = r.s.assignID()
	txn.CreatedAt = time.Now()
	r.s.transactions[txn.ID] = *txn
	return nil
}

func (r *memTransactionRepo) GetByID(id uint) (*models.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	txn, ok := r.s.transactions[id]
	if !ok {
		return nil, ErrTransactionNotFound
	}
	return &txn, nil
}

func (r *memTransactionRepo) GetByUser(userID uint, limit int) ([]models.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var txns []models.Transaction
	for _, t := range r.s.transactions {
		if t.UserID == userID {
			txns = append(txns, t)
		}
	}
	sort.Slice(txns, func(i, j int) bool {
		if !txns[i].Date.Equal(txns[j].Date) {
			return txns[i].Date.After(txns[j].Date)
		}
		return txns[i].ID > txns[j].ID
	})
	if limit > 0 && len(txns) > limit {
		txns = txns[:limit]
	}
	return txns, nil
}

type memCardRepo struct{ s *memoryStore }

func (r *memCardRepo) Create(card *models.VirtualCard) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	card.ID = r.s.assignID()
	card.CreatedAt = time.Now()
	if card.Status == "" {
		card.Status = models.CardStatusActive
	}
	r.s.cards[card.ID] = *card
	return nil
}

func (r *memCardRepo) GetByUser(userID uint) (*models.VirtualCard, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.cards {
		if c.UserID == userID {
			card := c
			return &card, nil
		}
	}
	return nil, ErrCardNotFound
}

func (r *memCardRepo) UpdateStatus(id uint, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if card, ok := r.s.cards[id]; ok {
		card.Status = status
		r.s.cards[id] = card
	}
	return nil
}

type memPaylaterRepo struct{ s *memoryStore }

func (r *memPaylaterRepo) Create(account *models.PaylaterAccount) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	account.ID = r.s.assignID()
	account.CreatedAt = time.Now()
	if account.Status == "" {
		account.Status = models.PaylaterStatusActive
	}
	r.s.paylater[account.ID] = *account
	return nil
}

func (r *memPaylaterRepo) GetByUser(userID uint) (*models.PaylaterAccount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.paylater {
		if a.UserID == userID {
			account := a
			return &account, nil
		}
	}
	return nil, ErrPaylaterNotFound
}

func (r *memPaylaterRepo) UpdateUsed(id uint, used decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if account, ok := r.s.paylater[id]; ok {
		account.Used = used
		r.s.paylater[id] = account
	}
	return nil
}

type memEmiPlanRepo struct{ s *memoryStore }

func (r *memEmiPlanRepo) Create(plan *models.EmiPlan) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	plan.ID = r.s.assignID()
	plan.CreatedAt = time.Now()
	if plan.Status == "" {
		plan.Status = models.EmiStatusActive
	}
	r.s.emiPlans[plan.ID] = *plan
	return nil
}

func (r *memEmiPlanRepo) GetByID(id uint) (*models.EmiPlan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	plan, ok := r.s.emiPlans[id]
	if !ok {
		return nil, ErrEmiPlanNotFound
	}
	return &plan, nil
}

func (r *memEmiPlanRepo) GetByUser(userID uint) ([]models.EmiPlan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var plans []models.EmiPlan
	for _, p := range r.s.emiPlans {
		if p.UserID == userID {
			plans = append(plans, p)
		}
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].ID > plans[j].ID })
	return plans, nil
}

type memSubscriptionRepo struct{ s *memoryStore }

func (r *memSubscriptionRepo) Create(sub *models.Subscription) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sub.ID = r.s.assignID()
	sub.CreatedAt = time.Now()
	if sub.Status == "" {
		sub.Status = models.SubscriptionStatusActive
	}
	r.s.subscriptions[sub.ID] = *sub
	return nil
}

func (r *memSubscriptionRepo) GetByID(id uint) (*models.Subscription, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sub, ok := r.s.subscriptions[id]
	if !ok {
		return nil, ErrSubscriptionNotFound
	}
	return &sub, nil
}

func (r *memSubscriptionRepo) GetActiveByUser(userID uint) ([]models.Subscription, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var subs []models.Subscription
	for _, sub := range r.s.subscriptions {
		if sub.UserID == userID && sub.Status == models.SubscriptionStatusActive {
			subs = append(subs, sub)
		}
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].NextDue.Before(subs[j].NextDue) })
	return subs, nil
}

func (r *memSubscriptionRepo) UpdateStatus(id uint, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if sub, ok := r.s.subscriptions[id]; ok {
		sub.Status = status
		r.s.subscriptions[id] = sub
	}
	return nil
}

type memChatRepo struct{ s *memoryStore }

func (r *memChatRepo) Create(msg *models.ChatMessage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	msg.ID = r.s.assignID()
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	r.s.chat[msg.ID] = *msg
	return nil
}

func (r *memChatRepo) GetByUser(userID uint) ([]models.ChatMessage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var msgs []models.ChatMessage
	for _, m := range r.s.chat {
		if m.UserID == userID {
			msgs = append(msgs, m)
		}
	}
	sort.Slice(msgs, func(i, j int) bool {
		if !msgs[i].Timestamp.Equal(msgs[j].Timestamp) {
			return msgs[i].Timestamp.Before(msgs[j].Timestamp)
		}
		return msgs[i].ID < msgs[j].ID
	})
	return msgs, nil
}
