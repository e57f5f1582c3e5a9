package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const TransactionEntityName = "TRANSACTION"

type TransactionType string

const (
	TransactionDeposit  TransactionType = "DEPOSIT"
	TransactionWithdraw TransactionType = "WITHDRAW"
	TransactionTransfer TransactionType = "TRANSFER"
)

func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(s); t {
	case TransactionDeposit, TransactionWithdraw, TransactionTransfer:
		return t, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// AccountTransaction is immutable once built. A deposit only has a receiver,
// a withdraw only a payer, and a transfer has both.
type AccountTransaction struct {
	tenant   string
	id       string
	amount   decimal.Decimal
	typ      TransactionType
	payer    string
	receiver string
}

func NewDeposit(tenant, id, receiver string, amount decimal.Decimal) *AccountTransaction {
	return &AccountTransaction{
		tenant:   tenant,
		id:       id,
		amount:   amount,
		typ:      TransactionDeposit,
		receiver: receiver,
	}
}

func NewWithdraw(tenant, id, payer string, amount decimal.Decimal) *AccountTransaction {
	return &AccountTransaction{
		tenant: tenant,
		id:     id,
		amount: amount,
		typ:    TransactionWithdraw,
		payer:  payer,
	}
}

func NewTransfer(tenant, id, payer, receiver string, amount decimal.Decimal) (*AccountTransaction, error) {
	if payer == receiver {
		return nil, SameAccountError(tenant, payer)
	}
	return &AccountTransaction{
		tenant:   tenant,
		id:       id,
		amount:   amount,
		typ:      TransactionTransfer,
		payer:    payer,
		receiver: receiver,
	}, nil
}

func ReconstructAccountTransaction(
	tenant, id string,
	amount decimal.Decimal,
	typ TransactionType,
	payer, receiver string,
) *AccountTransaction {
	return &AccountTransaction{
		tenant:   tenant,
		id:       id,
		amount:   amount,
		typ:      typ,
		payer:    payer,
		receiver: receiver,
	}
}

func (t *AccountTransaction) Tenant() string {
	return t.tenant
}

func (t *AccountTransaction) ID() string {
	return t.id
}

func (t *AccountTransaction) Amount() decimal.Decimal {
	return t.amount
}

func (t *AccountTransaction) Type() TransactionType {
	return t.typ
}

// Payer is empty for deposits.
func (t *AccountTransaction) Payer() string {
	return t.payer
}

// Receiver is empty for withdraws.
func (t *AccountTransaction) Receiver() string {
	return t.receiver
}

// Participants lists the documents the transaction is recorded under,
// payer first.
func (t *AccountTransaction) Participants() []string {
	docs := make([]string, 0, 2)
	if t.payer != "" {
		docs = append(docs, t.payer)
	}
	if t.receiver != "" {
		docs = append(docs, t.receiver)
	}
	return docs
}

// SignedAmount is the effect of t on the balance of document.
func (t *AccountTransaction) SignedAmount(document string) decimal.Decimal {
	switch document {
	case t.payer:
		return t.amount.Neg()
	case t.receiver:
		return t.amount
	default:
		return decimal.Zero
	}
}
