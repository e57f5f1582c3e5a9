package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/singletable"
)

const DefaultKeyPrefix = "ledger:"

const (
	fieldBalance  = "balance"
	fieldAmount   = "amount"
	fieldType     = "type"
	fieldPayer    = "payer"
	fieldReceiver = "receiver"
)

// Table implements singletable.Table with one hash per row and one sorted set
// per partition. Every member of the set has score 0, so ZRANGEBYLEX walks the
// sort keys in byte order.
type Table struct {
	client goredis.UniversalClient
	prefix string
}

func NewTable(client goredis.UniversalClient, prefix string) *Table {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Table{client: client, prefix: prefix}
}

func (t *Table) rowKey(pk, sk string) string {
	return t.prefix + "row:" + pk + "|" + sk
}

func (t *Table) indexKey(pk string) string {
	return t.prefix + "idx:" + pk
}

func (t *Table) GetItem(ctx context.Context, pk, sk string) (*singletable.Item, error) {
	fields, err := t.client.HGetAll(ctx, t.rowKey(pk, sk)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return decodeItem(pk, sk, fields)
}

func (t *Table) QueryPrefix(ctx context.Context, pk, skPrefix string) ([]singletable.Item, error) {
	sortKeys, err := t.client.ZRangeByLex(ctx, t.indexKey(pk), &goredis.ZRangeBy{
		Min: "[" + skPrefix,
		Max: "[" + skPrefix + "\xff",
	}).Result()
	if err != nil {
		return nil, err
	}
	if len(sortKeys) == 0 {
		return nil, nil
	}

	cmds := make([]*goredis.MapStringStringCmd, len(sortKeys))
	_, err = t.client.Pipelined(ctx, func(p goredis.Pipeliner) error {
		for i, sk := range sortKeys {
			cmds[i] = p.HGetAll(ctx, t.rowKey(pk, sk))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	items := make([]singletable.Item, 0, len(sortKeys))
	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}
		item, err := decodeItem(pk, sortKeys[i], fields)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

func (t *Table) PutItem(ctx context.Context, item singletable.Item) error {
	row := t.rowKey(item.PK, item.SK)
	_, err := t.client.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.Del(ctx, row)
		p.HSet(ctx, row, encodeItem(item))
		p.ZAdd(ctx, t.indexKey(item.PK), goredis.Z{Member: item.SK})
		return nil
	})
	return err
}

func (t *Table) UpdateBalance(ctx context.Context, pk, sk string, balance decimal.Decimal) error {
	return t.client.HSet(ctx, t.rowKey(pk, sk), fieldBalance, balance.String()).Err()
}

func encodeItem(item singletable.Item) map[string]any {
	fields := make(map[string]any, 5)
	if item.Balance != nil {
		fields[fieldBalance] = item.Balance.String()
	}
	if item.Amount != nil {
		fields[fieldAmount] = item.Amount.String()
	}
	if item.Type != "" {
		fields[fieldType] = item.Type
	}
	if item.Payer != "" {
		fields[fieldPayer] = item.Payer
	}
	if item.Receiver != "" {
		fields[fieldReceiver] = item.Receiver
	}
	return fields
}

func decodeItem(pk, sk string, fields map[string]string) (*singletable.Item, error) {
	item := &singletable.Item{
		PK:       pk,
		SK:       sk,
		Type:     fields[fieldType],
		Payer:    fields[fieldPayer],
		Receiver: fields[fieldReceiver],
	}
	if v, ok := fields[fieldBalance]; ok {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("balance of %s/%s: %w", pk, sk, err)
		}
		item.Balance = &d
	}
	if v, ok := fields[fieldAmount]; ok {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("amount of %s/%s: %w", pk, sk, err)
		}
		item.Amount = &d
	}
	return item, nil
}
