package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres"
	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres/audit"
	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres/city"
	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres/courier"
	leadrepo "github.com/insurdesk/brokerage-backend/internal/adapter/postgres/lead"
	lifecyclestore "github.com/insurdesk/brokerage-backend/internal/adapter/postgres/lifecycle"
	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres/paymentmode"
	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres/product"
	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres/region"
	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres/schema"
	"github.com/insurdesk/brokerage-backend/internal/auth"
	"github.com/insurdesk/brokerage-backend/internal/catalog"
	"github.com/insurdesk/brokerage-backend/internal/config"
	"github.com/insurdesk/brokerage-backend/internal/service/directory"
	leadsvc "github.com/insurdesk/brokerage-backend/internal/service/lead"
	lifecyclesvc "github.com/insurdesk/brokerage-backend/internal/service/lifecycle"
	"github.com/insurdesk/brokerage-backend/internal/service/workflow"
	"github.com/insurdesk/brokerage-backend/internal/transport/middleware"
	"github.com/insurdesk/brokerage-backend/internal/transport/rest"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, connects to the database, builds the entity catalog and
// services, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	cat, err := buildCatalog(pool)
	if err != nil {
		return fmt.Errorf("build entity catalog: %w", err)
	}
	resolver := catalog.NewResolver(cat)

	txm := postgres.NewTxManager(pool)
	auditRepo := audit.New(pool)
	leads := leadrepo.New(pool)

	lifecycleService := lifecyclesvc.New(resolver)
	workflowService := workflow.New(leads)
	leadService := leadsvc.New(leads, auditRepo, txm)
	directoryService := directory.New(
		city.New(pool),
		courier.New(pool),
		product.New(pool),
		paymentmode.New(pool),
		region.New(pool),
	)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	mux := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Lifecycle: rest.NewLifecycleHandler(lifecycleService, auditRepo, logger),
		Lead: rest.NewLeadHandler(leadService, workflowService, auditRepo, logger,
			cfg.Listing.DefaultLimit, cfg.Listing.MaxLimit),
		Directory: rest.NewDirectoryHandler(directoryService, logger),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
	)(mux)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

// buildCatalog registers every lifecycle-managed entity once at startup.
// The schema descriptors are static; a registration failure here is a
// programming error and aborts startup.
func buildCatalog(pool *pgxpool.Pool) (*catalog.Catalog, error) {
	cat := catalog.New()
	for _, table := range schema.All() {
		store := lifecyclestore.New(pool, table)
		if err := cat.Register(catalog.FromTable(table, store)); err != nil {
			return nil, fmt.Errorf("register %s: %w", table.Entity, err)
		}
	}
	return cat, nil
}
