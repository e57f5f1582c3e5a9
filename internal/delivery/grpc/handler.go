package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Xausdorf/tenant-ledger/internal/domain/entity"
	"github.com/Xausdorf/tenant-ledger/internal/usecase/operation"
)

type Executor interface {
	Execute(ctx context.Context, op operation.Operation) (any, error)
}

type Handler struct {
	exec Executor
}

func NewHandler(exec Executor) *Handler {
	return &Handler{exec: exec}
}

// Execute decodes the request as an operation record and answers with
// {"result": <view>}.
func (h *Handler) Execute(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	body, err := protojson.Marshal(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}
	var op operation.Operation
	if err := json.Unmarshal(body, &op); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}

	result, err := h.exec.Execute(ctx, op)
	if err != nil {
		return nil, toStatus(err)
	}

	out, err := json.Marshal(map[string]any{"result": result})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode result: %v", err)
	}
	resp := new(structpb.Struct)
	if err := protojson.Unmarshal(out, resp); err != nil {
		return nil, status.Errorf(codes.Internal, "encode result: %v", err)
	}
	return resp, nil
}

func toStatus(err error) error {
	kind := entity.KindName(err)
	code := codeFor(err)

	st := status.New(code, err.Error())
	if kind == "" {
		return st.Err()
	}
	withDetails, derr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: strings.ToUpper(kind),
		Domain: ErrorDomain,
	})
	if derr != nil {
		return st.Err()
	}
	return withDetails.Err()
}

func codeFor(err error) codes.Code {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return codes.NotFound
	case errors.Is(err, entity.ErrAlreadyExists):
		return codes.AlreadyExists
	case errors.Is(err, entity.ErrInsufficientFunds):
		return codes.FailedPrecondition
	case errors.Is(err, entity.ErrInvalidAmount),
		errors.Is(err, entity.ErrSameAccount),
		errors.Is(err, entity.ErrMissingField),
		errors.Is(err, operation.ErrUnsupportedOperation):
		return codes.InvalidArgument
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}
