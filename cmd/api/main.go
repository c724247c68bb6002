package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"bookshelf/internal/auth"
	"bookshelf/internal/book"
	"bookshelf/internal/httpx"
	"bookshelf/internal/logger"
	"bookshelf/internal/lookup"
	"bookshelf/internal/platform/googlebooks"
	"bookshelf/internal/platform/openbd"
	"bookshelf/internal/shelf"
	"bookshelf/internal/user"
)

const userAgent = "bookshelf/1.0 (+https://github.com/bookshelf)"

func main() {
	loadEnvFiles()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	wd, _ := os.Getwd()
	l, err := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat, wd, httpx.RequestIDFromContext)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	slog.SetDefault(l)

	if err := run(cfg, l); err != nil {
		l.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg config, l *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := openDB(ctx, cfg.DatabaseDSN, l)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	userService := user.NewService(user.NewPostgresRepo(dbPool, cfg.DBTimeout))
	authService := auth.NewService(cfg.JWTSecret, cfg.TokenTTL, userService)
	shelfService := shelf.NewService(shelf.NewPostgresRepo(dbPool, cfg.DBTimeout))
	bookService := book.NewService(book.NewPostgresRepo(dbPool, cfg.DBTimeout), shelfService)

	resolver := lookup.NewResolver(
		openbd.NewClient(cfg.OpenBDBaseURL, userAgent, openbd.DefaultTimeout),
		googlebooks.NewClient(cfg.GoogleBooksBaseURL, userAgent, googlebooks.DefaultTimeout),
		l.With(slog.String("component", "lookup")),
	)

	rateLimiter := httpx.NewRateLimitMiddleware(cfg.LookupRPS, cfg.LookupBurst)
	defer rateLimiter.Stop()

	router := newRouter(routerDeps{
		cfg:         cfg,
		db:          dbPool,
		rateLimiter: rateLimiter,
		auth:        auth.NewHTTPHandler(authService),
		users:       user.NewHTTPHandler(userService),
		shelf:       shelf.NewHTTPHandler(shelfService),
		books:       book.NewHTTPHandler(bookService),
		lookup:      lookup.NewHTTPHandler(resolver),
	})

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// a lookup may wait 10s on openBD plus 2s on Google Books
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     slog.NewLogLogger(l.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		l.Info("starting server", slog.String("addr", cfg.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	l.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

func openDB(ctx context.Context, dsn string, l *slog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse db dsn (%s): %w", redactDSN(dsn), err)
	}
	poolCfg.ConnConfig.Tracer = logger.NewPGXTracer(l)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database (%s): %w", redactDSN(dsn), err)
	}
	l.Info("database connection OK")
	return pool, nil
}
