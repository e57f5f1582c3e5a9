package operation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/Xausdorf/tenant-ledger/internal/domain/entity"
	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/metrics"
	"github.com/Xausdorf/tenant-ledger/internal/usecase/account"
	"github.com/Xausdorf/tenant-ledger/internal/usecase/view"
)

//go:generate mockgen -source=processor.go -destination=mocks/manager.go -package=mocks

type AccountManager interface {
	CreateAccount(ctx context.Context, tenant, document string, balance decimal.Decimal) (*entity.Account, error)
	MakeDeposit(ctx context.Context, tenant, document string, amount decimal.Decimal) (*entity.Account, error)
	MakeWithdraw(ctx context.Context, tenant, document string, amount decimal.Decimal) (*entity.Account, error)
	Transfer(
		ctx context.Context,
		tenant, id, payer, receiver string,
		amount decimal.Decimal,
	) (*account.TransferResult, error)
	GetExtract(ctx context.Context, tenant, document string) ([]*entity.AccountTransaction, error)
	GetBalance(ctx context.Context, tenant, document string) (decimal.Decimal, error)
}

type Processor struct {
	manager       AccountManager
	defaultTenant string
	logger        *slog.Logger
	metrics       *metrics.Metrics
	validate      *validator.Validate
}

func NewProcessor(
	manager AccountManager,
	defaultTenant string,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Processor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Processor{
		manager:       manager,
		defaultTenant: defaultTenant,
		logger:        logger,
		metrics:       m,
		validate:      newValidator(),
	}
}

// Execute validates op and runs it against the account manager. The result
// is one of the view types, ready to be encoded as JSON.
func (p *Processor) Execute(ctx context.Context, op Operation) (any, error) {
	started := time.Now()
	tenant := p.tenantOf(op)

	result, err := p.dispatch(ctx, tenant, op)

	p.metrics.ObserveOperation(string(op.Type), started, err)
	if err != nil {
		p.logger.WarnContext(ctx, "operation failed",
			slog.String("type", string(op.Type)),
			slog.String("tenant", tenant),
			slog.String("outcome", metrics.Outcome(err)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	p.logger.DebugContext(ctx, "operation applied",
		slog.String("type", string(op.Type)),
		slog.String("tenant", tenant),
	)
	return result, nil
}

func (p *Processor) tenantOf(op Operation) string {
	switch {
	case op.Tenant != "":
		return op.Tenant
	case op.Organization != "":
		return op.Organization
	default:
		return p.defaultTenant
	}
}

func (p *Processor) dispatch(ctx context.Context, tenant string, op Operation) (any, error) {
	switch op.Type {
	case TypeCreateAccount:
		cmd := createAccountCommand{Tenant: tenant, Document: op.Document, Balance: op.Balance}
		if err := p.validate.Struct(cmd); err != nil {
			return nil, missingField(err)
		}
		acc, err := p.manager.CreateAccount(ctx, cmd.Tenant, cmd.Document, *cmd.Balance)
		if err != nil {
			return nil, err
		}
		return view.FromAccount(acc), nil

	case TypeDeposit, TypeWithdraw:
		cmd := amountCommand{Tenant: tenant, Document: op.Document, Amount: op.Amount}
		if err := p.validate.Struct(cmd); err != nil {
			return nil, missingField(err)
		}
		apply := p.manager.MakeDeposit
		if op.Type == TypeWithdraw {
			apply = p.manager.MakeWithdraw
		}
		acc, err := apply(ctx, cmd.Tenant, cmd.Document, *cmd.Amount)
		if err != nil {
			return nil, err
		}
		return view.FromAccount(acc), nil

	case TypeTransfer:
		cmd := transferCommand{Tenant: tenant}
		if op.Transaction != nil {
			cmd.Transaction = &transferLeg{
				ID:       op.Transaction.ID,
				Payer:    op.Transaction.Payer,
				Receiver: op.Transaction.Receiver,
				Amount:   op.Transaction.Amount,
			}
		}
		if err := p.validate.Struct(cmd); err != nil {
			return nil, missingField(err)
		}
		leg := cmd.Transaction
		res, err := p.manager.Transfer(ctx, cmd.Tenant, leg.ID, leg.Payer, leg.Receiver, *leg.Amount)
		if err != nil {
			return nil, err
		}
		return view.FromAccounts(res.Payer, res.Receiver), nil

	case TypeExtract:
		cmd := documentCommand{Tenant: tenant, Document: op.Document}
		if err := p.validate.Struct(cmd); err != nil {
			return nil, missingField(err)
		}
		txns, err := p.manager.GetExtract(ctx, cmd.Tenant, cmd.Document)
		if err != nil {
			return nil, err
		}
		return view.FromTransactions(txns), nil

	case TypeBalance:
		cmd := documentCommand{Tenant: tenant, Document: op.Document}
		if err := p.validate.Struct(cmd); err != nil {
			return nil, missingField(err)
		}
		balance, err := p.manager.GetBalance(ctx, cmd.Tenant, cmd.Document)
		if err != nil {
			return nil, err
		}
		return view.Balance{Tenant: cmd.Tenant, Document: cmd.Document, Balance: balance}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedOperation, op.Type)
	}
}
