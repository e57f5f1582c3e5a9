package repository

import (
	"context"

	"github.com/Xausdorf/tenant-ledger/internal/domain/entity"
)

// AccountRepository is the storage port of the ledger. Every call is
// tenant-scoped and independent; implementations give no atomicity across calls.
type AccountRepository interface {
	// FindAccount returns nil, nil when the account does not exist.
	FindAccount(ctx context.Context, tenant, document string) (*entity.Account, error)
	// FindAccountValid fails with entity.ErrNotFound when the account does not exist.
	FindAccountValid(ctx context.Context, tenant, document string) (*entity.Account, error)
	CreateAccount(ctx context.Context, account *entity.Account) (*entity.Account, error)
	UpdateAccount(ctx context.Context, account *entity.Account) (*entity.Account, error)
	// CreateAccountTransaction stores one row per participant of the transaction.
	CreateAccountTransaction(
		ctx context.Context,
		transaction *entity.AccountTransaction,
	) (*entity.AccountTransaction, error)
	// FindAccountTransactions never returns nil on success.
	FindAccountTransactions(ctx context.Context, tenant, document string) ([]*entity.AccountTransaction, error)
}
