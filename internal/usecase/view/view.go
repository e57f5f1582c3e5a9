package view

import (
	"github.com/shopspring/decimal"

	"github.com/Xausdorf/tenant-ledger/internal/domain/entity"
)

type Account struct {
	Tenant   string          `json:"tenant"`
	Document string          `json:"document"`
	Balance  decimal.Decimal `json:"balance"`
}

type Transaction struct {
	Tenant   string          `json:"tenant"`
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Type     string          `json:"type"`
	Payer    string          `json:"payer,omitempty"`
	Receiver string          `json:"receiver,omitempty"`
}

type Balance struct {
	Tenant   string          `json:"tenant"`
	Document string          `json:"document"`
	Balance  decimal.Decimal `json:"balance"`
}

func FromAccount(acc *entity.Account) Account {
	return Account{
		Tenant:   acc.Tenant(),
		Document: acc.Document(),
		Balance:  acc.Balance(),
	}
}

// FromAccounts keeps the order of accs; for a transfer that is payer, receiver.
func FromAccounts(accs ...*entity.Account) []Account {
	out := make([]Account, 0, len(accs))
	for _, acc := range accs {
		out = append(out, FromAccount(acc))
	}
	return out
}

func FromTransaction(txn *entity.AccountTransaction) Transaction {
	return Transaction{
		Tenant:   txn.Tenant(),
		ID:       txn.ID(),
		Amount:   txn.Amount(),
		Type:     string(txn.Type()),
		Payer:    txn.Payer(),
		Receiver: txn.Receiver(),
	}
}

func FromTransactions(txns []*entity.AccountTransaction) []Transaction {
	out := make([]Transaction, 0, len(txns))
	for _, txn := range txns {
		out = append(out, FromTransaction(txn))
	}
	return out
}
