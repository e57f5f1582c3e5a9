package memory

import (
	"context"
	"sync"

	"github.com/Xausdorf/tenant-ledger/internal/domain/entity"
)

type accountKey struct {
	tenant   string
	document string
}

// Store keeps accounts and their extracts in process memory. The mutex only
// protects the maps; it does not serialize ledger operations.
type Store struct {
	mu           sync.RWMutex
	accounts     map[accountKey]*entity.Account
	transactions map[accountKey][]*entity.AccountTransaction
}

func NewStore() *Store {
	return &Store{
		accounts:     make(map[accountKey]*entity.Account),
		transactions: make(map[accountKey][]*entity.AccountTransaction),
	}
}

func (s *Store) FindAccount(_ context.Context, tenant, document string) (*entity.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[accountKey{tenant: tenant, document: document}]
	if !ok {
		return nil, nil
	}
	return acc.Snapshot(), nil
}

func (s *Store) FindAccountValid(ctx context.Context, tenant, document string) (*entity.Account, error) {
	acc, err := s.FindAccount(ctx, tenant, document)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, entity.NotFoundError(tenant, document)
	}
	return acc, nil
}

func (s *Store) CreateAccount(_ context.Context, account *entity.Account) (*entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := accountKey{tenant: account.Tenant(), document: account.Document()}
	if _, ok := s.accounts[key]; ok {
		return nil, entity.AlreadyExistsError(account.Tenant(), account.Document())
	}
	s.accounts[key] = account.Snapshot()
	return account, nil
}

func (s *Store) UpdateAccount(_ context.Context, account *entity.Account) (*entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := accountKey{tenant: account.Tenant(), document: account.Document()}
	if _, ok := s.accounts[key]; !ok {
		return nil, entity.UpdateNotFoundError(account.Tenant(), account.Document())
	}
	s.accounts[key] = account.Snapshot()
	return account, nil
}

func (s *Store) CreateAccountTransaction(
	_ context.Context,
	transaction *entity.AccountTransaction,
) (*entity.AccountTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, document := range transaction.Participants() {
		key := accountKey{tenant: transaction.Tenant(), document: document}
		s.transactions[key] = append(s.transactions[key], transaction)
	}
	return transaction, nil
}

func (s *Store) FindAccountTransactions(
	_ context.Context,
	tenant, document string,
) ([]*entity.AccountTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.transactions[accountKey{tenant: tenant, document: document}]
	out := make([]*entity.AccountTransaction, len(stored))
	copy(out, stored)
	return out, nil
}
