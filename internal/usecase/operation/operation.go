package operation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/Xausdorf/tenant-ledger/internal/domain/entity"
)

var ErrUnsupportedOperation = errors.New("unsupported operation")

type Type string

const (
	TypeCreateAccount Type = "CREATE_ACCOUNT"
	TypeDeposit       Type = "DEPOSIT"
	TypeWithdraw      Type = "WITHDRAW"
	TypeTransfer      Type = "TRANSFER"
	TypeExtract       Type = "EXTRACT"
	TypeBalance       Type = "BALANCE"
)

type Transaction struct {
	ID       string           `json:"id,omitempty"`
	Payer    string           `json:"payer,omitempty"`
	Receiver string           `json:"receiver,omitempty"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
}

// Operation is one input record. Which fields are required depends on Type.
// Organization is accepted as an alias of Tenant.
type Operation struct {
	Type         Type             `json:"type"`
	Tenant       string           `json:"tenant,omitempty"`
	Organization string           `json:"organization,omitempty"`
	Document     string           `json:"document,omitempty"`
	Balance      *decimal.Decimal `json:"balance,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Transaction  *Transaction     `json:"transaction,omitempty"`
}

type createAccountCommand struct {
	Tenant   string           `json:"tenant" validate:"required"`
	Document string           `json:"document" validate:"required"`
	Balance  *decimal.Decimal `json:"balance" validate:"required"`
}

type amountCommand struct {
	Tenant   string           `json:"tenant" validate:"required"`
	Document string           `json:"document" validate:"required"`
	Amount   *decimal.Decimal `json:"amount" validate:"required"`
}

type transferLeg struct {
	ID       string           `json:"id"`
	Payer    string           `json:"payer" validate:"required"`
	Receiver string           `json:"receiver" validate:"required"`
	Amount   *decimal.Decimal `json:"amount" validate:"required"`
}

type transferCommand struct {
	Tenant      string       `json:"tenant" validate:"required"`
	Transaction *transferLeg `json:"transaction" validate:"required"`
}

type documentCommand struct {
	Tenant   string `json:"tenant" validate:"required"`
	Document string `json:"document" validate:"required"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// missingField turns the first validation failure into a MissingField error
// named after the JSON path of the field, e.g. "transaction.payer".
func missingField(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	ns := verrs[0].Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		ns = rest
	}
	return entity.MissingFieldError(ns)
}
