package grpcclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	grpcdelivery "github.com/Xausdorf/tenant-ledger/internal/delivery/grpc"
	"github.com/Xausdorf/tenant-ledger/internal/domain/entity"
	"github.com/Xausdorf/tenant-ledger/internal/usecase/operation"
)

type Client struct {
	conn grpc.ClientConnInterface
	// closer is nil when the connection belongs to the caller.
	closer func() error
}

func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, closer: conn.Close}, nil
}

// NewFromConn wraps an existing connection; Close leaves it open.
func NewFromConn(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

func (c *Client) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

// Execute runs op on the server. The result is the raw JSON of the view the
// server produced. Ledger failures come back carrying their error kind, so
// errors.Is(err, entity.ErrNotFound) works on this side too.
func (c *Client) Execute(ctx context.Context, op operation.Operation) (any, error) {
	body, err := json.Marshal(op)
	if err != nil {
		return nil, fmt.Errorf("encode operation: %w", err)
	}
	req := new(structpb.Struct)
	if err := protojson.Unmarshal(body, req); err != nil {
		return nil, fmt.Errorf("encode operation: %w", err)
	}

	resp := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, grpcdelivery.ExecuteMethod, req, resp); err != nil {
		return nil, fromStatus(err)
	}

	out, err := protojson.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(out, &envelope); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return envelope.Result, nil
}

type remoteError struct {
	kind error
	msg  string
}

func (e *remoteError) Error() string {
	return e.msg
}

func (e *remoteError) Unwrap() error {
	return e.kind
}

func fromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	for _, detail := range st.Details() {
		info, ok := detail.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != grpcdelivery.ErrorDomain {
			continue
		}
		if kind := entity.KindByName(strings.ToLower(info.GetReason())); kind != nil {
			return &remoteError{kind: kind, msg: st.Message()}
		}
	}
	return err
}
