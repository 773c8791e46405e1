package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog"
	"github.com/marcelsud/library-admin/activity"
	activityredis "github.com/marcelsud/library-admin/activity/redis"
	"github.com/marcelsud/library-admin/author"
	"github.com/marcelsud/library-admin/book"
	"github.com/marcelsud/library-admin/config"
	"github.com/marcelsud/library-admin/internal/http/chi"
	"github.com/marcelsud/library-admin/metrics"
	"github.com/marcelsud/library-admin/stats"
	"github.com/marcelsud/library-admin/storage"
)

const TIMEOUT = 30 * time.Second

/* main wires the packages together
 * Imports only go down: the binary imports the domain packages, which import nothing from storage
 */

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	logger := httplog.NewLogger("library-admin", httplog.Options{
		JSON:     cfg.LogJSON,
		LogLevel: cfg.LogLevel,
		Concise:  true,
	})

	store, err := storage.Open(cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer store.Close(ctx)
	if cfg.AutoMigrate {
		if err := store.CreateSchema(ctx); err != nil {
			fmt.Println(err)
			return
		}
	}

	var events activity.Repository = activity.NopRepository{}
	if cfg.ActivityEnabled() {
		events, err = activityredis.NewRepository(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.ActivityStreamMaxLen)
		if err != nil {
			fmt.Println(err)
			return
		}
	}
	defer events.Close(ctx)
	activityService := activity.NewService(events, logger)

	authorRepo := store.Authors()
	bookRepo := store.Books()

	exporter, err := metrics.NewOTelExporter(metrics.NewStoreCollector(store))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer exporter.Shutdown(context.Background())

	r := chi.Handlers(ctx, logger, chi.Services{
		Authors:  author.NewService(authorRepo, activityService),
		Books:    book.NewService(bookRepo, authorRepo, activityService),
		Stats:    stats.NewService(authorRepo, bookRepo),
		Activity: activityService,
		Metrics:  exporter.ServeHTTP(),
	})
	http.Handle("/", r)
	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      http.DefaultServeMux,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	logger.Info().Str("port", cfg.Port).Str("driver", cfg.DBDriver).Bool("activity", cfg.ActivityEnabled()).Msg("listening")
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		fmt.Println(err)
		return
	}
	err = <-errShutdown
	if err != nil {
		fmt.Println(err)
		return
	}
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		fmt.Printf("\nShutting down server...\n")
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("forcing the server to close after %s", TIMEOUT)
	default:
		errShutdown <- fmt.Errorf("shutting down server: %w", err)
	}
}
