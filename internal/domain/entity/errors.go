package entity

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Error kinds. Match with errors.Is; the concrete error is a *LedgerError.
var (
	ErrNotFound          = errors.New("account not found")
	ErrAlreadyExists     = errors.New("account already exists")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrSameAccount       = errors.New("payer and receiver are the same account")
	ErrMissingField      = errors.New("missing required field")
)

// LedgerError carries the error kind plus the values that caused it.
// Error() renders the user-facing message expected by existing feeds.
type LedgerError struct {
	Kind     error
	Tenant   string
	Document string
	Amount   decimal.Decimal
	Field    string

	msg string
}

func (e *LedgerError) Error() string {
	return e.msg
}

func (e *LedgerError) Unwrap() error {
	return e.Kind
}

func NotFoundError(tenant, document string) error {
	return &LedgerError{
		Kind:     ErrNotFound,
		Tenant:   tenant,
		Document: document,
		msg:      fmt.Sprintf("conta inexistente. tenant=%s , document=%s", tenant, document),
	}
}

func UpdateNotFoundError(tenant, document string) error {
	return &LedgerError{
		Kind:     ErrNotFound,
		Tenant:   tenant,
		Document: document,
		msg: fmt.Sprintf(
			"nao foi possivel editar, conta inexistente. tenant=%s , document=%s", tenant, document,
		),
	}
}

func AlreadyExistsError(tenant, document string) error {
	return &LedgerError{
		Kind:     ErrAlreadyExists,
		Tenant:   tenant,
		Document: document,
		msg:      fmt.Sprintf("conta ja existe. tenant=%s , document=%s", tenant, document),
	}
}

func WithdrawInsufficientFundsError(tenant, document string, amount decimal.Decimal) error {
	return &LedgerError{
		Kind:     ErrInsufficientFunds,
		Tenant:   tenant,
		Document: document,
		Amount:   amount,
		msg:      fmt.Sprintf("saldo insuficiente para saque. tenant=%s , document=%s", tenant, document),
	}
}

func TransferInsufficientFundsError(tenant, document string, amount decimal.Decimal) error {
	return &LedgerError{
		Kind:     ErrInsufficientFunds,
		Tenant:   tenant,
		Document: document,
		Amount:   amount,
		msg:      fmt.Sprintf("saldo insuficiente para transferir. tenant=%s , document=%s", tenant, document),
	}
}

func InvalidAmountError(tenant, document string, amount decimal.Decimal) error {
	return &LedgerError{
		Kind:     ErrInvalidAmount,
		Tenant:   tenant,
		Document: document,
		Amount:   amount,
		msg: fmt.Sprintf(
			"valor invalido. tenant=%s , document=%s , amount=%s", tenant, document, amount.String(),
		),
	}
}

func SameAccountError(tenant, document string) error {
	return &LedgerError{
		Kind:     ErrSameAccount,
		Tenant:   tenant,
		Document: document,
		msg:      "conta pagadora e recebedora n podem ser iguais",
	}
}

func MissingFieldError(field string) error {
	return &LedgerError{
		Kind:  ErrMissingField,
		Field: field,
		msg:   fmt.Sprintf("campo obrigatorio ausente. field=%s", field),
	}
}

var kindNames = []struct {
	kind error
	name string
}{
	{ErrNotFound, "not_found"},
	{ErrAlreadyExists, "already_exists"},
	{ErrInsufficientFunds, "insufficient_funds"},
	{ErrInvalidAmount, "invalid_amount"},
	{ErrSameAccount, "same_account"},
	{ErrMissingField, "missing_field"},
}

// KindName names the kind of err, or returns "" when err carries none.
func KindName(err error) string {
	for _, k := range kindNames {
		if errors.Is(err, k.kind) {
			return k.name
		}
	}
	return ""
}

// KindByName is the inverse of KindName; nil for unknown names.
func KindByName(name string) error {
	for _, k := range kindNames {
		if k.name == name {
			return k.kind
		}
	}
	return nil
}
