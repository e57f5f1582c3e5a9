package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Xausdorf/tenant-ledger/internal/domain/entity"
	"github.com/Xausdorf/tenant-ledger/internal/usecase/operation"
)

// IdempotencyKeyHeader supplies the transfer id when the body has none.
const IdempotencyKeyHeader = "X-Idempotency-Key"

type Executor interface {
	Execute(ctx context.Context, op operation.Operation) (any, error)
}

type Handler struct {
	exec Executor
}

func NewHandler(exec Executor) *Handler {
	return &Handler{exec: exec}
}

type CreateAccountRequest struct {
	Document string           `json:"document"`
	Balance  *decimal.Decimal `json:"balance"`
}

type AmountRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

type TransferRequest struct {
	ID       string           `json:"id"`
	Payer    string           `json:"payer"`
	Receiver string           `json:"receiver"`
	Amount   *decimal.Decimal `json:"amount"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) HandleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if !decode(w, r, &req) {
		return
	}
	h.execute(w, r, http.StatusCreated, operation.Operation{
		Type:     operation.TypeCreateAccount,
		Tenant:   chi.URLParam(r, "tenant"),
		Document: req.Document,
		Balance:  req.Balance,
	})
}

func (h *Handler) HandleDeposit(w http.ResponseWriter, r *http.Request) {
	h.handleAmount(w, r, operation.TypeDeposit)
}

func (h *Handler) HandleWithdraw(w http.ResponseWriter, r *http.Request) {
	h.handleAmount(w, r, operation.TypeWithdraw)
}

func (h *Handler) handleAmount(w http.ResponseWriter, r *http.Request, typ operation.Type) {
	var req AmountRequest
	if !decode(w, r, &req) {
		return
	}
	h.execute(w, r, http.StatusOK, operation.Operation{
		Type:     typ,
		Tenant:   chi.URLParam(r, "tenant"),
		Document: chi.URLParam(r, "document"),
		Amount:   req.Amount,
	})
}

func (h *Handler) HandleTransfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if !decode(w, r, &req) {
		return
	}
	if req.ID == "" {
		req.ID = r.Header.Get(IdempotencyKeyHeader)
	}
	h.execute(w, r, http.StatusOK, operation.Operation{
		Type:   operation.TypeTransfer,
		Tenant: chi.URLParam(r, "tenant"),
		Transaction: &operation.Transaction{
			ID:       req.ID,
			Payer:    req.Payer,
			Receiver: req.Receiver,
			Amount:   req.Amount,
		},
	})
}

func (h *Handler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	h.handleDocument(w, r, operation.TypeBalance)
}

func (h *Handler) HandleExtract(w http.ResponseWriter, r *http.Request) {
	h.handleDocument(w, r, operation.TypeExtract)
}

func (h *Handler) handleDocument(w http.ResponseWriter, r *http.Request, typ operation.Type) {
	h.execute(w, r, http.StatusOK, operation.Operation{
		Type:     typ,
		Tenant:   chi.URLParam(r, "tenant"),
		Document: chi.URLParam(r, "document"),
	})
}

// HandleOperation accepts a raw operation record, the same shape as a feed entry.
func (h *Handler) HandleOperation(w http.ResponseWriter, r *http.Request) {
	var op operation.Operation
	if !decode(w, r, &op) {
		return
	}
	h.execute(w, r, http.StatusOK, op)
}

func (h *Handler) execute(w http.ResponseWriter, r *http.Request, okStatus int, op operation.Operation) {
	result, err := h.exec.Execute(r.Context(), op)
	if err != nil {
		writeJSON(w, statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, okStatus, result)
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, entity.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, entity.ErrInvalidAmount),
		errors.Is(err, entity.ErrSameAccount),
		errors.Is(err, entity.ErrMissingField),
		errors.Is(err, operation.ErrUnsupportedOperation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
