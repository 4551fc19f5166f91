package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/api"
	"github.com/Juana-Valentina/logi-tofos-sub001/internal/repository"
	"github.com/Juana-Valentina/logi-tofos-sub001/internal/service"
	"github.com/Juana-Valentina/logi-tofos-sub001/pkg/broker"
	"github.com/Juana-Valentina/logi-tofos-sub001/pkg/config"
	"github.com/Juana-Valentina/logi-tofos-sub001/pkg/logger"
	"github.com/Juana-Valentina/logi-tofos-sub001/pkg/postgres"
)

const (
	ReadTimeout       = 3 * time.Second
	WriteTimeout      = 5 * time.Second
	IdleTimeout       = 60 * time.Second
	ReadHeaderTimeout = 1 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l := logger.New(logger.ParseLevel(cfg.LogLevel))
	slog.SetDefault(l)

	pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	panicOnErr("connect to postgres", err)

	defer pool.Close()

	err = postgres.UpMigrations(cfg.PostgresDSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	issuer := service.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	producer := broker.NewProducer(l, cfg.KafkaBrokers, cfg.KafkaAuditTopic)
	defer producer.Close()

	s := service.New(repo, issuer, producer)

	h := api.NewHandler(s)
	mw := api.NewMiddleware(s, s, producer)
	router := api.NewRouter(h, mw)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       ReadTimeout,
		WriteTimeout:      WriteTimeout,
		IdleTimeout:       IdleTimeout,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		l.Info("http server started", "port", cfg.HTTPPort)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		l.Debug("http server stopped")
	}()

	wg.Add(1)

	go func() {
		defer wg.Done()

		ticker := time.NewTicker(cfg.EventsCloseEvery)
		defer ticker.Stop()

		l := l.With("job", "close_finished_events")
		for {
			l.Debug("job started")

			closed, err := s.CloseFinishedEvents(ctx)
			if err != nil {
				l.Error(fmt.Sprintf("job failed: %s", err))
			} else {
				l.Debug("job finished", "events_closed", closed)
			}

			select {
			case <-ctx.Done():
				l.Debug("job stopped by ctx")
				return
			case <-ticker.C:
			}
		}
	}()

	waitSignal(l, cancel, server)
	wg.Wait()
}

func waitSignal(l *slog.Logger, cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	l.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		l.Error("server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
