package grpc_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	grpcdelivery "github.com/Xausdorf/tenant-ledger/internal/delivery/grpc"
	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/memory"
	"github.com/Xausdorf/tenant-ledger/internal/usecase/account"
	"github.com/Xausdorf/tenant-ledger/internal/usecase/operation"
)

func newHandler(t *testing.T) *grpcdelivery.Handler {
	t.Helper()

	manager := account.NewManager(memory.NewStore())
	_, err := manager.CreateAccount(context.Background(), "t", "A", decimal.NewFromInt(10))
	require.NoError(t, err)

	return grpcdelivery.NewHandler(operation.NewProcessor(manager, "t", nil, nil))
}

func request(t *testing.T, fields map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(fields)
	require.NoError(t, err)
	return s
}

func TestHandler_Execute_Balance(t *testing.T) {
	h := newHandler(t)

	resp, err := h.Execute(context.Background(), request(t, map[string]any{
		"type": "BALANCE", "document": "A",
	}))
	require.NoError(t, err)

	result := resp.GetFields()["result"].GetStructValue().GetFields()
	assert.Equal(t, "10", result["balance"].GetStringValue())
	assert.Equal(t, "A", result["document"].GetStringValue())
}

func TestHandler_Execute_StatusCodes(t *testing.T) {
	h := newHandler(t)

	tests := []struct {
		name   string
		req    map[string]any
		code   codes.Code
		reason string
	}{
		{
			name:   "not found",
			req:    map[string]any{"type": "BALANCE", "document": "404"},
			code:   codes.NotFound,
			reason: "NOT_FOUND",
		},
		{
			name:   "already exists",
			req:    map[string]any{"type": "CREATE_ACCOUNT", "document": "A", "balance": 1},
			code:   codes.AlreadyExists,
			reason: "ALREADY_EXISTS",
		},
		{
			name:   "insufficient funds",
			req:    map[string]any{"type": "WITHDRAW", "document": "A", "amount": 11},
			code:   codes.FailedPrecondition,
			reason: "INSUFFICIENT_FUNDS",
		},
		{
			name:   "invalid amount",
			req:    map[string]any{"type": "DEPOSIT", "document": "A", "amount": 0},
			code:   codes.InvalidArgument,
			reason: "INVALID_AMOUNT",
		},
		{
			name:   "missing field",
			req:    map[string]any{"type": "EXTRACT"},
			code:   codes.InvalidArgument,
			reason: "MISSING_FIELD",
		},
		{
			name: "unsupported",
			req:  map[string]any{"type": "REFUND"},
			code: codes.InvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Execute(context.Background(), request(t, tt.req))
			require.Error(t, err)

			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.code, st.Code())

			var reason string
			for _, d := range st.Details() {
				if info, ok := d.(*errdetails.ErrorInfo); ok {
					reason = info.GetReason()
				}
			}
			assert.Equal(t, tt.reason, reason)
		})
	}
}
