package singletable

import (
	"context"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=table.go -destination=mocks/table.go -package=mocks

// Item is one row of the table. Account rows carry Balance; transaction rows
// carry Amount, Type and the participants.
type Item struct {
	PK       string
	SK       string
	Balance  *decimal.Decimal
	Amount   *decimal.Decimal
	Type     string
	Payer    string
	Receiver string
}

// Table is the key-value store behind the single-table repository.
type Table interface {
	// GetItem returns nil, nil when no row matches.
	GetItem(ctx context.Context, pk, sk string) (*Item, error)
	// QueryPrefix returns the rows of partition pk whose sort key starts with skPrefix.
	QueryPrefix(ctx context.Context, pk, skPrefix string) ([]Item, error)
	// PutItem writes the whole row, replacing any previous one.
	PutItem(ctx context.Context, item Item) error
	// UpdateBalance sets only the balance attribute of a row.
	UpdateBalance(ctx context.Context, pk, sk string, balance decimal.Decimal) error
}
