package singletable

import (
	"context"
	"fmt"

	"github.com/Xausdorf/tenant-ledger/internal/domain/entity"
)

// Repository maps accounts and transactions onto a single key-value table.
// Each method issues independent calls: a transfer is two puts here plus two
// balance updates from the caller, and a failure in between is not rolled back.
type Repository struct {
	table Table
}

func NewRepository(table Table) *Repository {
	return &Repository{table: table}
}

func (r *Repository) FindAccount(ctx context.Context, tenant, document string) (*entity.Account, error) {
	item, err := r.table.GetItem(ctx, AccountPartitionKey(tenant, document), AccountSortKey(document))
	if err != nil {
		return nil, fmt.Errorf("get account %s/%s: %w", tenant, document, err)
	}
	if item == nil || item.Balance == nil {
		return nil, nil
	}
	return entity.NewAccount(tenant, documentFromSortKey(item.SK), *item.Balance), nil
}

func (r *Repository) FindAccountValid(ctx context.Context, tenant, document string) (*entity.Account, error) {
	acc, err := r.FindAccount(ctx, tenant, document)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, entity.NotFoundError(tenant, document)
	}
	return acc, nil
}

// CreateAccount does not check for duplicates; the account manager does.
func (r *Repository) CreateAccount(ctx context.Context, account *entity.Account) (*entity.Account, error) {
	balance := account.Balance()
	err := r.table.PutItem(ctx, Item{
		PK:      AccountPartitionKey(account.Tenant(), account.Document()),
		SK:      AccountSortKey(account.Document()),
		Balance: &balance,
	})
	if err != nil {
		return nil, fmt.Errorf("put account %s/%s: %w", account.Tenant(), account.Document(), err)
	}
	return account, nil
}

func (r *Repository) UpdateAccount(ctx context.Context, account *entity.Account) (*entity.Account, error) {
	existing, err := r.FindAccount(ctx, account.Tenant(), account.Document())
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, entity.UpdateNotFoundError(account.Tenant(), account.Document())
	}

	err = r.table.UpdateBalance(ctx,
		AccountPartitionKey(account.Tenant(), account.Document()),
		AccountSortKey(account.Document()),
		account.Balance(),
	)
	if err != nil {
		return nil, fmt.Errorf("update balance %s/%s: %w", account.Tenant(), account.Document(), err)
	}
	return account, nil
}

func (r *Repository) CreateAccountTransaction(
	ctx context.Context,
	transaction *entity.AccountTransaction,
) (*entity.AccountTransaction, error) {
	for _, document := range transaction.Participants() {
		if err := r.table.PutItem(ctx, transactionItem(document, transaction)); err != nil {
			return nil, fmt.Errorf("put transaction %s under %s: %w", transaction.ID(), document, err)
		}
	}
	return transaction, nil
}

func (r *Repository) FindAccountTransactions(
	ctx context.Context,
	tenant, document string,
) ([]*entity.AccountTransaction, error) {
	items, err := r.table.QueryPrefix(ctx, AccountPartitionKey(tenant, document), TransactionSortKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("query transactions %s/%s: %w", tenant, document, err)
	}

	out := make([]*entity.AccountTransaction, 0, len(items))
	for _, item := range items {
		if item.Amount == nil || item.Type == "" {
			continue
		}
		typ, err := entity.ParseTransactionType(item.Type)
		if err != nil {
			return nil, fmt.Errorf("row %s/%s: %w", item.PK, item.SK, err)
		}
		out = append(out, entity.ReconstructAccountTransaction(
			tenant,
			transactionIDFromSortKey(item.SK),
			*item.Amount,
			typ,
			item.Payer,
			item.Receiver,
		))
	}
	return out, nil
}

func transactionItem(document string, transaction *entity.AccountTransaction) Item {
	amount := transaction.Amount()
	return Item{
		PK:       AccountPartitionKey(transaction.Tenant(), document),
		SK:       TransactionSortKey(transaction.ID()),
		Amount:   &amount,
		Type:     string(transaction.Type()),
		Payer:    transaction.Payer(),
		Receiver: transaction.Receiver(),
	}
}
