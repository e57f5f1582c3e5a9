package redis

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/singletable"
)

var _ singletable.Table = (*Table)(nil)

func TestEncodeItem_SkipsEmptyAttributes(t *testing.T) {
	balance := decimal.RequireFromString("10.25")

	fields := encodeItem(singletable.Item{PK: "t#ACCOUNT#1", SK: "ACCOUNT#1", Balance: &balance})

	assert.Equal(t, map[string]any{fieldBalance: "10.25"}, fields)
}

func TestDecodeItem_Transaction(t *testing.T) {
	item, err := decodeItem("t#ACCOUNT#A", "TRANSACTION#tx1", map[string]string{
		fieldAmount:   "7",
		fieldType:     "TRANSFER",
		fieldPayer:    "A",
		fieldReceiver: "B",
	})
	require.NoError(t, err)

	assert.Nil(t, item.Balance)
	require.NotNil(t, item.Amount)
	assert.True(t, decimal.NewFromInt(7).Equal(*item.Amount))
	assert.Equal(t, "TRANSFER", item.Type)
	assert.Equal(t, "A", item.Payer)
	assert.Equal(t, "B", item.Receiver)
}

func TestDecodeItem_BadNumber(t *testing.T) {
	_, err := decodeItem("pk", "sk", map[string]string{fieldBalance: "ten"})
	require.Error(t, err)
}

func TestTable_Keys(t *testing.T) {
	table := NewTable(nil, "")

	assert.Equal(t, "ledger:row:t#ACCOUNT#1|ACCOUNT#1", table.rowKey("t#ACCOUNT#1", "ACCOUNT#1"))
	assert.Equal(t, "ledger:idx:t#ACCOUNT#1", table.indexKey("t#ACCOUNT#1"))
}
