package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/Xausdorf/tenant-ledger/internal/delivery/feed"
	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/config"
	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/grpcclient"
	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/logging"
	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/storage"
	"github.com/Xausdorf/tenant-ledger/internal/usecase/account"
	"github.com/Xausdorf/tenant-ledger/internal/usecase/operation"
)

func main() {
	input := flag.String("input", "input.json", "JSON array of operations, - for stdin")
	remote := flag.String("remote", "", "gRPC address of a ledger server; empty runs against local storage")
	tenant := flag.String("tenant", "", "tenant for records without one (overrides LEDGER_DEFAULT_TENANT)")
	flag.Parse()

	if err := run(*input, *remote, *tenant); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(input, remote, tenant string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if tenant != "" {
		cfg.DefaultTenant = tenant
	}
	// Results go to stdout; keep logs on stderr.
	logger := logging.NewWithWriter(os.Stderr, cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	entries, err := loadEntries(input)
	if err != nil {
		return err
	}

	exec, closeExec, err := newExecutor(ctx, cfg, remote, tenant, logger)
	if err != nil {
		return err
	}
	defer closeExec()

	printer := feed.NewPrinter(os.Stdout, !color.NoColor)
	sum, err := feed.Run(ctx, exec, entries, printer)
	logger.Info("feed processed", "succeeded", sum.Succeeded, "failed", sum.Failed)
	return err
}

func loadEntries(path string) ([]feed.Entry, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return feed.Load(r)
}

func newExecutor(
	ctx context.Context,
	cfg *config.Config,
	remote, tenant string,
	logger *slog.Logger,
) (feed.Executor, func(), error) {
	if remote != "" {
		client, err := grpcclient.NewClient(remote)
		if err != nil {
			return nil, nil, err
		}
		var exec feed.Executor = client
		if tenant != "" {
			exec = withTenant{exec: client, tenant: tenant}
		}
		return exec, func() { _ = client.Close() }, nil
	}

	repo, closeStorage, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	processor := operation.NewProcessor(account.NewManager(repo), cfg.DefaultTenant, logger, nil)
	return processor, closeStorage, nil
}

// withTenant fills the tenant of records that name none before they leave
// for a remote server, which would otherwise apply its own default.
type withTenant struct {
	exec   feed.Executor
	tenant string
}

func (w withTenant) Execute(ctx context.Context, op operation.Operation) (any, error) {
	if op.Tenant == "" && op.Organization == "" {
		op.Tenant = w.tenant
	}
	return w.exec.Execute(ctx, op)
}
