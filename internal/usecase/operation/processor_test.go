package operation_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Xausdorf/tenant-ledger/internal/domain/entity"
	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/memory"
	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/metrics"
	"github.com/Xausdorf/tenant-ledger/internal/usecase/account"
	"github.com/Xausdorf/tenant-ledger/internal/usecase/operation"
	"github.com/Xausdorf/tenant-ledger/internal/usecase/operation/mocks"
	"github.com/Xausdorf/tenant-ledger/internal/usecase/view"
)

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestProcessor_MissingField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := operation.NewProcessor(mocks.NewMockAccountManager(ctrl), "default", nil, nil)

	tests := []struct {
		name  string
		op    operation.Operation
		field string
	}{
		{
			name:  "create without document",
			op:    operation.Operation{Type: operation.TypeCreateAccount, Balance: amount("1")},
			field: "document",
		},
		{
			name:  "create without balance",
			op:    operation.Operation{Type: operation.TypeCreateAccount, Document: "123"},
			field: "balance",
		},
		{
			name:  "deposit without amount",
			op:    operation.Operation{Type: operation.TypeDeposit, Document: "123"},
			field: "amount",
		},
		{
			name:  "transfer without transaction",
			op:    operation.Operation{Type: operation.TypeTransfer},
			field: "transaction",
		},
		{
			name: "transfer without payer",
			op: operation.Operation{
				Type:        operation.TypeTransfer,
				Transaction: &operation.Transaction{Receiver: "B", Amount: amount("1")},
			},
			field: "transaction.payer",
		},
		{
			name:  "extract without document",
			op:    operation.Operation{Type: operation.TypeExtract},
			field: "document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Execute(context.Background(), tt.op)

			require.ErrorIs(t, err, entity.ErrMissingField)
			var ledgerErr *entity.LedgerError
			require.ErrorAs(t, err, &ledgerErr)
			assert.Equal(t, tt.field, ledgerErr.Field)
		})
	}
}

func TestProcessor_Unsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := operation.NewProcessor(mocks.NewMockAccountManager(ctrl), "default", nil, nil)

	_, err := p.Execute(context.Background(), operation.Operation{Type: "REFUND"})
	require.ErrorIs(t, err, operation.ErrUnsupportedOperation)
}

func TestProcessor_TenantResolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mocks.NewMockAccountManager(ctrl)
	p := operation.NewProcessor(manager, "default", nil, nil)
	ctx := context.Background()

	gomock.InOrder(
		manager.EXPECT().GetBalance(gomock.Any(), "acme", "1").Return(decimal.Zero, nil),
		manager.EXPECT().GetBalance(gomock.Any(), "org", "1").Return(decimal.Zero, nil),
		manager.EXPECT().GetBalance(gomock.Any(), "default", "1").Return(decimal.Zero, nil),
	)

	_, err := p.Execute(ctx, operation.Operation{Type: operation.TypeBalance, Tenant: "acme", Organization: "org", Document: "1"})
	require.NoError(t, err)
	_, err = p.Execute(ctx, operation.Operation{Type: operation.TypeBalance, Organization: "org", Document: "1"})
	require.NoError(t, err)
	_, err = p.Execute(ctx, operation.Operation{Type: operation.TypeBalance, Document: "1"})
	require.NoError(t, err)
}

func TestProcessor_TransferReturnsBothAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mocks.NewMockAccountManager(ctrl)
	p := operation.NewProcessor(manager, "t", nil, nil)

	manager.EXPECT().
		Transfer(gomock.Any(), "t", "tx1", "A", "B", gomock.Any()).
		Return(&account.TransferResult{
			Payer:    entity.NewAccount("t", "A", decimal.Zero),
			Receiver: entity.NewAccount("t", "B", decimal.NewFromInt(10)),
		}, nil)

	res, err := p.Execute(context.Background(), operation.Operation{
		Type: operation.TypeTransfer,
		Transaction: &operation.Transaction{
			ID: "tx1", Payer: "A", Receiver: "B", Amount: amount("10"),
		},
	})

	require.NoError(t, err)
	accounts, ok := res.([]view.Account)
	require.True(t, ok)
	require.Len(t, accounts, 2)
	assert.Equal(t, "A", accounts[0].Document)
	assert.Equal(t, "B", accounts[1].Document)
}

func TestProcessor_CountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := operation.NewProcessor(account.NewManager(memory.NewStore()), "t", nil, metrics.New(reg))
	ctx := context.Background()

	_, err := p.Execute(ctx, operation.Operation{Type: operation.TypeCreateAccount, Document: "1", Balance: amount("0")})
	require.NoError(t, err)
	_, err = p.Execute(ctx, operation.Operation{Type: operation.TypeWithdraw, Document: "1", Amount: amount("5")})
	require.ErrorIs(t, err, entity.ErrInsufficientFunds)

	count, err := testutil.GatherAndCount(reg, "tenant_ledger_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestOperation_DecodesNumbersAndStrings(t *testing.T) {
	var ops []operation.Operation
	err := json.Unmarshal([]byte(`[
		{"type":"CREATE_ACCOUNT","document":"123","balance":10},
		{"type":"DEPOSIT","document":"123","amount":"2.5","organization":"acme"},
		{"type":"TRANSFER","transaction":{"id":"tx1","payer":"A","receiver":"B","amount":1}}
	]`), &ops)
	require.NoError(t, err)
	require.Len(t, ops, 3)

	assert.True(t, decimal.NewFromInt(10).Equal(*ops[0].Balance))
	assert.True(t, decimal.RequireFromString("2.5").Equal(*ops[1].Amount))
	assert.Equal(t, "acme", ops[1].Organization)
	require.NotNil(t, ops[2].Transaction)
	assert.Equal(t, "tx1", ops[2].Transaction.ID)
}
