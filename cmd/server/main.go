package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcdelivery "github.com/Xausdorf/tenant-ledger/internal/delivery/grpc"
	httpdelivery "github.com/Xausdorf/tenant-ledger/internal/delivery/http"
	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/config"
	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/logging"
	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/metrics"
	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/storage"
	"github.com/Xausdorf/tenant-ledger/internal/usecase/account"
	"github.com/Xausdorf/tenant-ledger/internal/usecase/operation"
)

const (
	readHeaderTimeout     = 5 * time.Second
	gracefulShutdownDelay = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stdout, nil)).Error("config load failed", "error", err)
		return err
	}
	logger := logging.New(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo, closeStorage, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("storage init failed", "error", err)
		return err
	}
	defer closeStorage()

	m := metrics.New(prometheus.DefaultRegisterer)
	manager := account.NewManager(repo)
	processor := operation.NewProcessor(manager, cfg.DefaultTenant, logger, m)

	grpcSrv := grpc.NewServer()
	grpcdelivery.RegisterLedgerServer(grpcSrv, grpcdelivery.NewHandler(processor))
	reflection.Register(grpcSrv)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "error", err)
		return err
	}

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpdelivery.NewRouter(httpdelivery.NewHandler(processor), m, prometheus.DefaultGatherer),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		logger.Info("gRPC server starting", "addr", cfg.GRPCAddr)
		if err := grpcSrv.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			cancel()
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownDelay)
	defer shutdownCancel()
	_ = httpSrv.Shutdown(shutdownCtx)
	grpcSrv.GracefulStop()

	return nil
}
