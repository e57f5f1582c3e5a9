package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/singletable"
)

const schema = `CREATE TABLE IF NOT EXISTS ledger_items (
	pk       TEXT NOT NULL,
	sk       TEXT NOT NULL,
	balance  NUMERIC,
	amount   NUMERIC,
	type     TEXT,
	payer    TEXT,
	receiver TEXT,
	PRIMARY KEY (pk, sk)
)`

// DB is satisfied by *pgxpool.Pool and pgx.Tx.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Table implements singletable.Table on a plain Postgres table. Numerics
// travel as text so no precision is lost on the way.
type Table struct {
	db DB
}

func NewTable(db DB) *Table {
	return &Table{db: db}
}

// EnsureSchema creates the ledger_items table when it is missing.
func EnsureSchema(ctx context.Context, db DB) error {
	_, err := db.Exec(ctx, schema)
	return err
}

func (t *Table) GetItem(ctx context.Context, pk, sk string) (*singletable.Item, error) {
	var row itemRow
	err := t.db.QueryRow(ctx,
		`SELECT sk, balance::text, amount::text, type, payer, receiver
		 FROM ledger_items WHERE pk = $1 AND sk = $2`,
		pk, sk,
	).Scan(&row.sk, &row.balance, &row.amount, &row.typ, &row.payer, &row.receiver)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.toItem(pk)
}

func (t *Table) QueryPrefix(ctx context.Context, pk, skPrefix string) ([]singletable.Item, error) {
	rows, err := t.db.Query(ctx,
		`SELECT sk, balance::text, amount::text, type, payer, receiver
		 FROM ledger_items WHERE pk = $1 AND starts_with(sk, $2)
		 ORDER BY sk`,
		pk, skPrefix,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []singletable.Item
	for rows.Next() {
		var row itemRow
		if err := rows.Scan(&row.sk, &row.balance, &row.amount, &row.typ, &row.payer, &row.receiver); err != nil {
			return nil, err
		}
		item, err := row.toItem(pk)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (t *Table) PutItem(ctx context.Context, item singletable.Item) error {
	_, err := t.db.Exec(ctx,
		`INSERT INTO ledger_items (pk, sk, balance, amount, type, payer, receiver)
		 VALUES ($1, $2, $3::numeric, $4::numeric, $5, $6, $7)
		 ON CONFLICT (pk, sk) DO UPDATE SET
		   balance = EXCLUDED.balance,
		   amount = EXCLUDED.amount,
		   type = EXCLUDED.type,
		   payer = EXCLUDED.payer,
		   receiver = EXCLUDED.receiver`,
		item.PK, item.SK,
		decimalText(item.Balance), decimalText(item.Amount),
		nullable(item.Type), nullable(item.Payer), nullable(item.Receiver),
	)
	return err
}

func (t *Table) UpdateBalance(ctx context.Context, pk, sk string, balance decimal.Decimal) error {
	_, err := t.db.Exec(ctx,
		`UPDATE ledger_items SET balance = $3::numeric WHERE pk = $1 AND sk = $2`,
		pk, sk, balance.String(),
	)
	return err
}

type itemRow struct {
	sk       string
	balance  *string
	amount   *string
	typ      *string
	payer    *string
	receiver *string
}

func (r itemRow) toItem(pk string) (*singletable.Item, error) {
	item := &singletable.Item{
		PK:       pk,
		SK:       r.sk,
		Type:     deref(r.typ),
		Payer:    deref(r.payer),
		Receiver: deref(r.receiver),
	}
	var err error
	if item.Balance, err = parseDecimal(r.balance); err != nil {
		return nil, fmt.Errorf("balance of %s/%s: %w", pk, r.sk, err)
	}
	if item.Amount, err = parseDecimal(r.amount); err != nil {
		return nil, fmt.Errorf("amount of %s/%s: %w", pk, r.sk, err)
	}
	return item, nil
}

func parseDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func decimalText(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
