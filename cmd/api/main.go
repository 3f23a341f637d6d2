package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	httpadp "wfh-leave-backend/internal/adapter/http"
	idemp "wfh-leave-backend/internal/adapter/middleware"
	"wfh-leave-backend/internal/adapter/repository/gormrepo"
	"wfh-leave-backend/internal/config"
	"wfh-leave-backend/internal/infrastructure/cache"
	"wfh-leave-backend/internal/infrastructure/db"
	"wfh-leave-backend/internal/infrastructure/logging"
	"wfh-leave-backend/internal/metrics"
	"wfh-leave-backend/internal/pkg/cron"
	"wfh-leave-backend/internal/usecase/autoreject"
	ucemployee "wfh-leave-backend/internal/usecase/employee"
	ucwfh "wfh-leave-backend/internal/usecase/wfh"
)

func main() {
	if err := run(); err != nil {
		slog.Error("api stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.SetDefault(logging.New(os.Stdout, cfg.SlogLevel(), cfg.IsProduction()))
	if err := cfg.Validate(); err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close(gdb) }()
	if cfg.DBAutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			return err
		}
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		if rdb, err = cache.OpenRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()
	} else {
		slog.Warn("REDIS_ADDR not set: idempotency and the auto-reject run lock are disabled")
	}

	m := metrics.New()
	tx := gormrepo.NewGormUoW(gdb)
	requests := gormrepo.NewWFHRequestRepository(gdb)
	employees := gormrepo.NewEmployeeRepository(gdb)

	arOpts := []autoreject.Option{autoreject.WithLocation(loc), autoreject.WithObserver(m)}
	if rdb != nil {
		arOpts = append(arOpts, autoreject.WithRunLock(cache.NewRedisLocker(rdb), cfg.AutoRejectLockTTL))
	}
	autoRejectUC := autoreject.NewUsecase(tx, arOpts...)

	checks := map[string]httpadp.Check{"database": func(ctx context.Context) error {
		sqlDB, err := gdb.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	routes := httpadp.Routes{
		Health:     httpadp.NewHealthHandler(checks),
		AutoReject: httpadp.NewAutoRejectHandler(autoRejectUC),
		WFH:        httpadp.NewWFHHandler(ucwfh.NewUsecase(tx, requests, employees, ucwfh.WithLocation(loc))),
		Employee:   httpadp.NewEmployeeHandler(ucemployee.NewUsecase(tx, employees)),
		Metrics:    m.Handler(),
	}
	if rdb != nil {
		routes.Idempotency = idemp.Idempotency(rdb, cfg.IdempotencyTTL())
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover(), m.Middleware())
	httpadp.Register(e, routes)

	scheduler := cron.NewScheduler()
	if cfg.AutoRejectInterval > 0 {
		if err := cron.NewAutoRejectJobs(autoRejectUC).RegisterJobs(scheduler, cfg.AutoRejectInterval); err != nil {
			return err
		}
		scheduler.Start()
	}
	defer scheduler.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.AppPort
		slog.Info("listening", "addr", addr, "db_driver", cfg.DBDriver, "timezone", loc.String())
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
