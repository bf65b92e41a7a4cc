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

	"github.com/samandr77/microservices/factoring/internal/api"
	"github.com/samandr77/microservices/factoring/internal/clients/dimpl"
	"github.com/samandr77/microservices/factoring/internal/service"
	"github.com/samandr77/microservices/factoring/pkg/broker"
	"github.com/samandr77/microservices/factoring/pkg/config"
	"github.com/samandr77/microservices/factoring/pkg/logger"
)

const (
	ReadTimeout = 10 * time.Second
	// WriteTimeout covers the remote call, its retries included.
	WriteTimeout = 60 * time.Second
)

type producer interface {
	service.Producer
	Close()
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	var p producer
	if cfg.Kafka.Enabled {
		p = broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.InvoiceStatusTopic)
	} else {
		p = broker.NewNopProducer(l)
	}
	defer p.Close()

	dimplClient := dimpl.NewClient(cfg.Dimpl)

	s := service.New(dimplClient, p)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(cfg.HTTP.APIKeyEnabled, cfg.HTTP.APIKey)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port, "kafka", cfg.Kafka.Enabled)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err := server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
