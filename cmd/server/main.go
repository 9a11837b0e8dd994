package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/harshbadhann2/society-home-connect/internal/auth"
	"github.com/harshbadhann2/society-home-connect/internal/config"
	"github.com/harshbadhann2/society-home-connect/internal/database"
	"github.com/harshbadhann2/society-home-connect/internal/fallback"
	"github.com/harshbadhann2/society-home-connect/internal/guard"
	"github.com/harshbadhann2/society-home-connect/internal/handler"
	"github.com/harshbadhann2/society-home-connect/internal/jobs"
	"github.com/harshbadhann2/society-home-connect/internal/metrics"
	"github.com/harshbadhann2/society-home-connect/internal/middleware"
	"github.com/harshbadhann2/society-home-connect/internal/queue"
	"github.com/harshbadhann2/society-home-connect/internal/repository"
	"github.com/harshbadhann2/society-home-connect/internal/router"
	"github.com/harshbadhann2/society-home-connect/internal/session"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.LogLevel))); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsProd() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open never dials. With the server down every view falls back to
	// sample data, so a failed ping is only logged.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := database.Ping(db, 5*time.Second); err != nil {
		logger.Warn("database unreachable, serving sample data", "err", err)
	} else if cfg.DBMigrate {
		if err := database.Migrate(db, database.DialectMySQL); err != nil {
			logger.Warn("migrations not applied", "err", err)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	store := repository.NewStore(db)
	tokens := repository.NewTokenRepo(db)
	sessions := session.New(session.Config{
		JWTSecret:      cfg.JWTSecret,
		AccessTTLMin:   cfg.AccessTTLMin,
		RefreshTTLDays: cfg.RefreshTTLDays,
		BcryptCost:     cfg.BcryptCost,
	}, repository.NewUserRepo(db), tokens, logger, m)
	defer sessions.Close()

	contexts := auth.NewRegistry(m)
	binder := auth.NewBinder(contexts, auth.NewEnricher(repository.NewDirectory(store), logger), logger, m)
	defer binder.Listen(sessions)()

	rdb := config.NewRedisClient(logger)
	if rdb != nil {
		defer rdb.Close()
	}
	cache := middleware.NewCache(config.LoadCacheConfig(), rdb, logger)
	limit := middleware.RateLimit(config.LoadRateLimitConfig(), rdb, logger)

	rep := fallback.Reporter{Log: logger, Metrics: m}
	views := handler.NewViews(store, rep, cache, logger)
	routes := guard.DefaultTable()
	dash := &handler.DashboardHandler{Counters: views.Counters(), Routes: routes, Reporter: rep}
	authn := middleware.Authenticate(sessions, contexts, binder)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.Recover())
	e.Use(requestLogger(logger))
	router.RegisterRoutes(e, db, reg)
	router.RegisterAuth(e, handler.NewAuthHandler(sessions, binder, cfg.CookieSecure, logger), authn, limit)
	router.RegisterViews(e, views, dash, authn, middleware.Guard(routes, m), cache.Middleware())

	g, gctx := errgroup.WithContext(ctx)

	events := config.LoadEventsConfig()
	if events.Enabled {
		pub := queue.NewPublisher(events.URL, events.Queue, logger)
		defer pub.Close()
		defer pub.Listen(sessions)()
		if events.Consume {
			c := &queue.Consumer{URL: events.URL, Queue: events.Queue, Path: events.AuditLog, Log: logger}
			g.Go(func() error { return c.Run(gctx) })
		}
	}

	jc := config.LoadJobsConfig()
	sched := jobs.New(logger)
	if err := sched.PurgeTokens(jc.PurgeTokensSpec, tokens); err != nil {
		return err
	}
	if err := sched.PruneContexts(jc.PruneContextsSpec, cfg.ContextIdleTTL, contexts); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	g.Go(func() error {
		logger.Info("listening", "addr", ":"+cfg.Port, "env", cfg.Env)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency, "ip", v.RemoteIP}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "request", append(attrs, "err", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	})
}
