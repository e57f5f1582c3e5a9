package feed_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xausdorf/tenant-ledger/internal/delivery/feed"
	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/memory"
	"github.com/Xausdorf/tenant-ledger/internal/usecase/account"
	"github.com/Xausdorf/tenant-ledger/internal/usecase/operation"
)

const input = `[
  {"type": "CREATE_ACCOUNT", "document": "123", "balance": 0},
  {"type": "DEPOSIT", "document": "123", "amount": 100},
  {"type": "WITHDRAW", "document": "123", "amount": 500},
  {"type": "DEPOSIT", "document": "999", "amount": 1},
  {"type": "DEPOSIT", "document": "123"},
  {"type": "BALANCE", "document": "123"}
]`

func TestLoad(t *testing.T) {
	entries, err := feed.Load(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 6)

	assert.Equal(t, operation.TypeCreateAccount, entries[0].Operation.Type)
	assert.Equal(t, `{"type":"CREATE_ACCOUNT","document":"123","balance":0}`, string(entries[0].Raw))
}

func TestLoad_NotAnArray(t *testing.T) {
	_, err := feed.Load(strings.NewReader(`{"type":"BALANCE"}`))
	require.Error(t, err)
}

const mistyped = `[
  {"type": "CREATE_ACCOUNT", "tenant": "t", "document": "1", "balance": 10},
  {"type": "DEPOSIT", "tenant": "t", "document": 1, "amount": 5},
  {"type": "BALANCE", "tenant": "t", "document": "1"}
]`

func TestLoad_KeepsUndecodableRecord(t *testing.T) {
	entries, err := feed.Load(strings.NewReader(mistyped))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.NoError(t, entries[0].Err)
	assert.ErrorContains(t, entries[1].Err, "invalid record")
	assert.Equal(t, `{"type":"DEPOSIT","tenant":"t","document":1,"amount":5}`, string(entries[1].Raw))
	assert.NoError(t, entries[2].Err)
	assert.Equal(t, operation.TypeBalance, entries[2].Operation.Type)
}

func TestRun_UndecodableRecordDoesNotStopFeed(t *testing.T) {
	entries, err := feed.Load(strings.NewReader(mistyped))
	require.NoError(t, err)

	processor := operation.NewProcessor(account.NewManager(memory.NewStore()), "t", nil, nil)
	var out bytes.Buffer

	sum, err := feed.Run(context.Background(), processor, entries, feed.NewPrinter(&out, false))
	require.NoError(t, err)
	assert.Equal(t, feed.Summary{Succeeded: 2, Failed: 1}, sum)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t,
		`{"type":"CREATE_ACCOUNT","tenant":"t","document":"1","balance":10} => {"tenant":"t","document":"1","balance":"10"}`,
		lines[0],
	)
	assert.True(t, strings.HasPrefix(lines[1], `{"type":"DEPOSIT","tenant":"t","document":1,"amount":5} => invalid record: `), lines[1])
	assert.Equal(t,
		`{"type":"BALANCE","tenant":"t","document":"1"} => {"tenant":"t","document":"1","balance":"10"}`,
		lines[2],
	)
}

func TestRun_ContinuesAfterFailures(t *testing.T) {
	entries, err := feed.Load(strings.NewReader(input))
	require.NoError(t, err)

	processor := operation.NewProcessor(account.NewManager(memory.NewStore()), "t", nil, nil)
	var out bytes.Buffer

	sum, err := feed.Run(context.Background(), processor, entries, feed.NewPrinter(&out, false))
	require.NoError(t, err)
	assert.Equal(t, feed.Summary{Succeeded: 3, Failed: 3}, sum)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t,
		`{"type":"CREATE_ACCOUNT","document":"123","balance":0} => {"tenant":"t","document":"123","balance":"0"}`,
		lines[0],
	)
	assert.Equal(t,
		`{"type":"WITHDRAW","document":"123","amount":500} => saldo insuficiente para saque. tenant=t , document=123`,
		lines[2],
	)
	assert.Equal(t,
		`{"type":"DEPOSIT","document":"999","amount":1} => conta inexistente. tenant=t , document=999`,
		lines[3],
	)
	assert.Equal(t,
		`{"type":"DEPOSIT","document":"123"} => campo obrigatorio ausente. field=amount`,
		lines[4],
	)
	assert.Equal(t,
		`{"type":"BALANCE","document":"123"} => {"tenant":"t","document":"123","balance":"100"}`,
		lines[5],
	)
}

func TestRun_StopsOnCancel(t *testing.T) {
	entries, err := feed.Load(strings.NewReader(input))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	processor := operation.NewProcessor(account.NewManager(memory.NewStore()), "t", nil, nil)
	sum, err := feed.Run(ctx, processor, entries, feed.NewPrinter(&bytes.Buffer{}, false))

	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, sum.Succeeded+sum.Failed)
}
