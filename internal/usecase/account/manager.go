package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Xausdorf/tenant-ledger/internal/domain/entity"
	"github.com/Xausdorf/tenant-ledger/internal/domain/repository"
)

//go:generate mockgen -source=../../domain/repository/repository.go -destination=mocks/repository.go -package=mocks

var minAmount = decimal.NewFromInt(1)

type Manager struct {
	repo  repository.AccountRepository
	newID func() string
}

type Option func(*Manager)

// WithIDGenerator replaces uuid.NewString for generated transaction ids.
func WithIDGenerator(fn func() string) Option {
	return func(m *Manager) {
		m.newID = fn
	}
}

func NewManager(repo repository.AccountRepository, opts ...Option) *Manager {
	m := &Manager{
		repo:  repo,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// TransferResult holds both accounts after a transfer.
type TransferResult struct {
	Transaction *entity.AccountTransaction
	Payer       *entity.Account
	Receiver    *entity.Account
}

func (m *Manager) CreateAccount(
	ctx context.Context,
	tenant, document string,
	balance decimal.Decimal,
) (*entity.Account, error) {
	if balance.IsNegative() {
		return nil, entity.InvalidAmountError(tenant, document, balance)
	}

	existing, err := m.repo.FindAccount(ctx, tenant, document)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, entity.AlreadyExistsError(tenant, document)
	}

	acc, err := m.repo.CreateAccount(ctx, entity.NewAccount(tenant, document, balance))
	if err != nil {
		return nil, err
	}

	if balance.IsPositive() {
		deposit := entity.NewDeposit(tenant, m.newID(), document, balance)
		if _, err := m.repo.CreateAccountTransaction(ctx, deposit); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

func (m *Manager) MakeDeposit(
	ctx context.Context,
	tenant, document string,
	amount decimal.Decimal,
) (*entity.Account, error) {
	if amount.LessThan(minAmount) {
		return nil, entity.InvalidAmountError(tenant, document, amount)
	}

	acc, err := m.repo.FindAccountValid(ctx, tenant, document)
	if err != nil {
		return nil, err
	}
	acc.Credit(amount)

	deposit := entity.NewDeposit(tenant, m.newID(), document, amount)
	if _, err := m.repo.CreateAccountTransaction(ctx, deposit); err != nil {
		return nil, err
	}

	return m.repo.UpdateAccount(ctx, acc)
}

func (m *Manager) MakeWithdraw(
	ctx context.Context,
	tenant, document string,
	amount decimal.Decimal,
) (*entity.Account, error) {
	if amount.LessThan(minAmount) {
		return nil, entity.InvalidAmountError(tenant, document, amount)
	}

	acc, err := m.repo.FindAccountValid(ctx, tenant, document)
	if err != nil {
		return nil, err
	}
	if err := acc.Debit(amount); err != nil {
		return nil, entity.WithdrawInsufficientFundsError(tenant, document, amount)
	}

	withdraw := entity.NewWithdraw(tenant, m.newID(), document, amount)
	if _, err := m.repo.CreateAccountTransaction(ctx, withdraw); err != nil {
		return nil, err
	}

	return m.repo.UpdateAccount(ctx, acc)
}

// Transfer moves amount from payer to receiver. The writes are issued one by
// one (transaction rows, then payer, then receiver) and a failure between them
// is returned as is, without compensation.
func (m *Manager) Transfer(
	ctx context.Context,
	tenant, id, payer, receiver string,
	amount decimal.Decimal,
) (*TransferResult, error) {
	if payer == receiver {
		return nil, entity.SameAccountError(tenant, payer)
	}
	if amount.LessThan(minAmount) {
		return nil, entity.InvalidAmountError(tenant, payer, amount)
	}

	from, err := m.repo.FindAccountValid(ctx, tenant, payer)
	if err != nil {
		return nil, err
	}
	to, err := m.repo.FindAccountValid(ctx, tenant, receiver)
	if err != nil {
		return nil, err
	}

	if err := from.Debit(amount); err != nil {
		return nil, entity.TransferInsufficientFundsError(tenant, payer, amount)
	}
	to.Credit(amount)

	if id == "" {
		id = m.newID()
	}
	txn, err := entity.NewTransfer(tenant, id, payer, receiver, amount)
	if err != nil {
		return nil, err
	}
	if _, err := m.repo.CreateAccountTransaction(ctx, txn); err != nil {
		return nil, err
	}

	if from, err = m.repo.UpdateAccount(ctx, from); err != nil {
		return nil, err
	}
	if to, err = m.repo.UpdateAccount(ctx, to); err != nil {
		return nil, err
	}

	return &TransferResult{Transaction: txn, Payer: from, Receiver: to}, nil
}

func (m *Manager) GetExtract(
	ctx context.Context,
	tenant, document string,
) ([]*entity.AccountTransaction, error) {
	if _, err := m.repo.FindAccountValid(ctx, tenant, document); err != nil {
		return nil, err
	}
	return m.repo.FindAccountTransactions(ctx, tenant, document)
}

func (m *Manager) GetBalance(ctx context.Context, tenant, document string) (decimal.Decimal, error) {
	acc, err := m.repo.FindAccountValid(ctx, tenant, document)
	if err != nil {
		return decimal.Zero, err
	}
	return acc.Balance(), nil
}
