package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/zoomctl/internal/config"
	"github.com/teemow/zoomctl/internal/instrumentation"
	"github.com/teemow/zoomctl/internal/notify"
	"github.com/teemow/zoomctl/internal/webhook"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the webhook receiver",
		Long: `Run the Zoom webhook receiver.

The receiver answers Zoom's endpoint.url_validation challenge with an
HMAC-SHA256 digest keyed with ZOOM_WEBHOOK_SECRET_TOKEN, and relays chat
messages, meeting lifecycle events, and completed recordings to the
configured notifier. Unrecognized events are acknowledged and logged.

Endpoints:
  POST /         webhook deliveries
  GET  /         health check
  GET  /metrics  Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			return runServe(cfg, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8765", "Listen address")

	return cmd
}

func runServe(cfg *config.Config, addr string) error {
	if err := cfg.ValidateWebhook(); err != nil {
		return err
	}

	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			slog.Error("error during instrumentation shutdown", "error", err.Error())
		}
	}()

	var notifier webhook.Notifier
	if cfg.NotifyTarget != "" {
		client, err := notify.NewClient(cfg.NotifyChannel, cfg.NotifyTarget)
		if err != nil {
			return fmt.Errorf("failed to create notifier: %w", err)
		}
		notifier = client
		slog.Info("notifier configured", "channel", cfg.NotifyChannel, "target", cfg.NotifyTarget)
	} else {
		slog.Warn("ZOOM_NOTIFY_TARGET not set, notifications will only be logged")
	}

	handler := webhook.NewHandler(cfg.WebhookSecret, cfg.UserEmail, notifier, provider.Metrics())

	var metricsHandler = provider.Handler()
	if !provider.Enabled() {
		metricsHandler = nil
	}
	server := webhook.NewServer(addr, handler, metricsHandler)

	return server.Run(shutdownCtx)
}
