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

	"github.com/AmGarera/tagnpark-landing/api"
	"github.com/AmGarera/tagnpark-landing/config"
	"github.com/AmGarera/tagnpark-landing/contacts"
	"github.com/AmGarera/tagnpark-landing/events"
	"github.com/AmGarera/tagnpark-landing/landing"
	"github.com/AmGarera/tagnpark-landing/metrics"
	rh "github.com/AmGarera/tagnpark-landing/route-handlers"
	"github.com/AmGarera/tagnpark-landing/waitlist"
)

const (
	envFile         = ".env"
	shutdownTimeout = 15 * time.Second
)

func main() {
	cfg, err := config.Load(envFile)
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg.Log))

	if cfg.Resend.APIKey == "" {
		slog.Warn("RESEND_API_KEY not set. Every waitlist signup will fail upstream authentication.")
	}

	metrics.MustRegister()

	provider := contacts.NewResendProvider(cfg.Resend.APIKey, cfg.Resend.BaseURL, cfg.Resend.AudienceID, cfg.Resend.Timeout)

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Kafka.Enabled() {
		publisher = events.NewKafkaPublisher(cfg.Kafka.BrokerList(), cfg.Kafka.Topic)
		slog.Info("Publishing signup events", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}
	defer publisher.Close()

	page, err := landing.NewPage(landing.DefaultContent())
	if err != nil {
		slog.Error("Landing page setup failed", "error", err)
		os.Exit(1)
	}
	form := waitlist.NewController(cfg.Server.SubscribeURL(api.SubscribePath()), &http.Client{})

	router := api.SetupRoutes(
		rh.NewLandingHandler(page, form),
		rh.NewSubscribeHandler(provider, publisher),
		api.Options{
			CORSOrigins:    cfg.Server.AllowedOrigins(),
			RequestTimeout: cfg.Server.RequestTimeout,
		},
	)

	if err := startServer(cfg.Server.Addr(), router); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	level := new(slog.LevelVar)
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level.Set(slog.LevelDebug)
	case "warn":
		level.Set(slog.LevelWarn)
	case "error":
		level.Set(slog.LevelError)
	default:
		level.Set(slog.LevelInfo)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler).With(slog.String("service", "tagnpark-landing"))
}

func startServer(addr string, router http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownSignal := make(chan os.Signal, 1)
	signal.Notify(shutdownSignal, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-shutdownSignal:
	}
	slog.Info("Shutdown signal received, initiating graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}

	slog.Info("Server gracefully stopped")
	return nil
}
