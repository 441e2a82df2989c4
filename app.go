package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"community_fund/config"
	"community_fund/contract"
	"community_fund/events"
	"community_fund/sdk"
	"community_fund/state"
	"community_fund/webserver"
)

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var h slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.Log.Format == "json" {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

func openStore(ctx context.Context, cfg config.StoreConfig) (state.Store, error) {
	switch cfg.Backend {
	case config.BackendMySQL:
		return state.OpenMySQL(cfg.MySQLDSN)
	case config.BackendRedis:
		return state.OpenRedis(ctx, cfg.RedisURL, cfg.RedisPrefix)
	default:
		if cfg.SnapshotPath == "" {
			return state.NewMem(), nil
		}
		return state.OpenMem(cfg.SnapshotPath)
	}
}

func openPublishers(ctx context.Context, cfg config.EventsConfig) ([]sdk.Publisher, []io.Closer, error) {
	var (
		pubs    []sdk.Publisher
		closers []io.Closer
	)
	if cfg.RedisURL != "" {
		rs, err := events.ConnectRedisStream(ctx, cfg.RedisURL, cfg.RedisStream)
		if err != nil {
			return nil, nil, err
		}
		pubs = append(pubs, rs)
		closers = append(closers, rs)
	}
	if cfg.NATSURL != "" {
		np, err := events.ConnectNATS(cfg.NATSURL, cfg.NATSSubjectPrefix)
		if err != nil {
			closeAll(closers)
			return nil, nil, err
		}
		pubs = append(pubs, np)
		closers = append(closers, np)
	}
	return pubs, closers, nil
}

// applyGenesis mints the configured balances the first time a store is used.
func applyGenesis(ctx context.Context, fund *contract.Contract, genesis []config.GenesisBalance, logger *slog.Logger) error {
	allocs := make([]contract.Allocation, 0, len(genesis))
	for _, g := range genesis {
		allocs = append(allocs, contract.Allocation{Address: sdk.Address(g.Address), Amount: g.Amount})
	}
	applied, err := fund.ApplyGenesis(ctx, allocs)
	if err != nil {
		return fmt.Errorf("genesis: %w", err)
	}
	if applied {
		logger.Info("genesis balances minted", slog.Int("accounts", len(allocs)))
	} else {
		logger.Debug("genesis already applied, keeping stored balances")
	}
	return nil
}

func closeAll(closers []io.Closer) {
	for i := len(closers) - 1; i >= 0; i-- {
		_ = closers[i].Close()
	}
}

// serve wires the configured backends into the contract and blocks until ctx ends.
func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	store, err := openStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store.Backend, err)
	}
	closers := []io.Closer{store}
	defer func() { closeAll(closers) }()

	pubs, pubClosers, err := openPublishers(ctx, cfg.Events)
	if err != nil {
		return fmt.Errorf("events: %w", err)
	}
	closers = append(closers, pubClosers...)

	if cfg.Fund.Authority == "" {
		logger.Warn("fund.authority is empty; admins cannot be initialized")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	fund := contract.New(store,
		contract.WithClock(sdk.NewMonotonicClock()),
		contract.WithAuthority(sdk.StaticAuthority{Address: sdk.Address(cfg.Fund.Authority)}),
		contract.WithEventLog(sdk.NewEventLog(logger, pubs...)),
		contract.WithMetrics(contract.NewMetrics(reg)),
		contract.WithLogger(logger),
		contract.WithVaultAccount(sdk.Address(cfg.Fund.VaultAccount)),
	)
	if err := applyGenesis(ctx, fund, cfg.Fund.Genesis, logger); err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	router := webserver.New(fund, webserver.Options{
		JWTSecret:   []byte(cfg.Server.JWTSecret),
		CORSOrigins: cfg.Server.CORSOrigins,
		Gatherer:    reg,
		Logger:      logger,
	})
	httpSrv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	logger.Info("fund API listening",
		slog.String("addr", cfg.Server.Addr),
		slog.String("store", cfg.Store.Backend),
		slog.Int("publishers", len(pubs)),
	)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	logger.Info("shutting down")
	return httpSrv.Shutdown(shutCtx)
}
