package entity

import (
	"github.com/shopspring/decimal"
)

const AccountEntityName = "ACCOUNT"

type Account struct {
	tenant   string
	document string
	balance  decimal.Decimal
}

func NewAccount(tenant, document string, balance decimal.Decimal) *Account {
	return &Account{
		tenant:   tenant,
		document: document,
		balance:  balance,
	}
}

func (a *Account) Tenant() string {
	return a.tenant
}

func (a *Account) Document() string {
	return a.document
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Credit adds amount to the balance. Amount validation is the caller's job.
func (a *Account) Credit(amount decimal.Decimal) {
	a.balance = a.balance.Add(amount)
}

// Debit subtracts amount from the balance, refusing to go below zero.
func (a *Account) Debit(amount decimal.Decimal) error {
	if a.balance.Sub(amount).IsNegative() {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// Snapshot returns a copy that does not share state with a.
func (a *Account) Snapshot() *Account {
	cp := *a
	return &cp
}

// Equal reports whether both accounts carry the same identity and balance.
func (a *Account) Equal(other *Account) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.tenant == other.tenant &&
		a.document == other.document &&
		a.balance.Equal(other.balance)
}
