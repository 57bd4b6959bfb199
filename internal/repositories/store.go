// Package repositories provides the data access layer.
// Each entity family gets a small repository interface; Store bundles
// them and lets services run multiple writes in one database transaction.
package repositories

import "gorm.io/gorm"

// Store is the single entry point to persisted state. InTransaction
// yields a Store bound to an open transaction; every repository call
// made through it commits or rolls back together.
type Store interface {
	Users() UserRepository
	Wallets() WalletRepository
	Transactions() TransactionRepository
	Cards() CardRepository
	Paylater() PaylaterRepository
	EmiPlans() EmiPlanRepository
	Subscriptions() SubscriptionRepository
	Chat() ChatRepository

	InTransaction(fn func(tx Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

// NewStore creates a Store backed by the given gorm connection.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Users() UserRepository                 { return &userRepository{db: s.db} }
func (s *gormStore) Wallets() WalletRepository             { return &walletRepository{db: s.db} }
func (s *gormStore) Transactions() TransactionRepository   { return &transactionRepository{db: s.db} }
func (s *gormStore) Cards() CardRepository                 { return &cardRepository{db: s.db} }
func (s *gormStore) Paylater() PaylaterRepository          { return &paylaterRepository{db: s.db} }
func (s *gormStore) EmiPlans() EmiPlanRepository           { return &emiPlanRepository{db: s.db} }
func (s *gormStore) Subscriptions() SubscriptionRepository { return &subscriptionRepository{db: s.db} }
func (s *gormStore) Chat() ChatRepository                  { return &chatRepository{db: s.db} }

func (s *gormStore) InTransaction(fn func(tx Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}
