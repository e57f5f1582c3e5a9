package grpcclient_test

import (
	"context"
	"encoding/json"
	"net"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	grpcdelivery "github.com/Xausdorf/tenant-ledger/internal/delivery/grpc"
	"github.com/Xausdorf/tenant-ledger/internal/domain/entity"
	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/grpcclient"
	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/memory"
	"github.com/Xausdorf/tenant-ledger/internal/usecase/account"
	"github.com/Xausdorf/tenant-ledger/internal/usecase/operation"
)

const bufSize = 1024 * 1024

func newClient(t *testing.T) *grpcclient.Client {
	t.Helper()

	lis := bufconn.Listen(bufSize)
	srv := grpc.NewServer()
	processor := operation.NewProcessor(account.NewManager(memory.NewStore()), "t", nil, nil)
	grpcdelivery.RegisterLedgerServer(srv, grpcdelivery.NewHandler(processor))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return grpcclient.NewFromConn(conn)
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestClient_Execute(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	_, err := client.Execute(ctx, operation.Operation{
		Type: operation.TypeCreateAccount, Document: "A", Balance: dec("100.25"),
	})
	require.NoError(t, err)
	_, err = client.Execute(ctx, operation.Operation{
		Type: operation.TypeCreateAccount, Document: "B", Balance: dec("0"),
	})
	require.NoError(t, err)

	res, err := client.Execute(ctx, operation.Operation{
		Type:        operation.TypeTransfer,
		Transaction: &operation.Transaction{ID: "tx1", Payer: "A", Receiver: "B", Amount: dec("100")},
	})
	require.NoError(t, err)

	raw, ok := res.(json.RawMessage)
	require.True(t, ok)
	assert.JSONEq(t,
		`[{"tenant":"t","document":"A","balance":"0.25"},{"tenant":"t","document":"B","balance":"100"}]`,
		string(raw),
	)
}

func TestClient_Execute_KeepsErrorKind(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	_, err := client.Execute(ctx, operation.Operation{Type: operation.TypeBalance, Document: "404"})
	require.ErrorIs(t, err, entity.ErrNotFound)
	assert.Equal(t, "conta inexistente. tenant=t , document=404", err.Error())

	_, err = client.Execute(ctx, operation.Operation{Type: operation.TypeDeposit, Document: "404"})
	require.ErrorIs(t, err, entity.ErrMissingField)
}

func TestClient_Execute_UnsupportedType(t *testing.T) {
	client := newClient(t)

	_, err := client.Execute(context.Background(), operation.Operation{Type: "REFUND"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, err.Error(), "unsupported operation")
}

func TestClient_Execute_KeepsTransportCode(t *testing.T) {
	client := newClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Execute(ctx, operation.Operation{Type: operation.TypeBalance, Document: "A"})
	require.Error(t, err)
	assert.Equal(t, codes.Canceled, status.Code(err))
}
