package main

import (
	"context"
	"log"
	"time"

	"github.com/justsurfingit/sales-intake/internal/auth"
	"github.com/justsurfingit/sales-intake/internal/config"
	"github.com/justsurfingit/sales-intake/internal/database"
	"github.com/justsurfingit/sales-intake/internal/handlers"
	"github.com/justsurfingit/sales-intake/internal/logger"
	"github.com/justsurfingit/sales-intake/internal/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

const (
	sessionJanitorEvery = 10 * time.Minute
	sessionTTL          = 24 * time.Hour
)

func main() {
	// 1. Configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	ctx := context.Background()

	// 2. Local application log
	store, closeStore, err := database.Open(ctx, cfg)
	if err != nil {
		zl.Fatal("open storage", zap.String("backend", cfg.StorageBackend), zap.Error(err))
	}
	defer closeStore()
	appLog := services.LoadApplicationLog(ctx, store, cfg.StorageKey, zl)
	zl.Info("application log loaded", zap.String("backend", cfg.StorageBackend), zap.Int("applications", appLog.Len()))

	// 3. Core services
	ids, err := services.NewSnowflakeIDs(cfg.NodeID)
	if err != nil {
		zl.Fatal("snowflake node", zap.Error(err))
	}
	loc := cfg.Location()
	assembler := services.NewAssembler(ids, loc)

	if cfg.SheetsURL == "" {
		zl.Warn("SHEETS_URL is not set, every submission will fail")
	}
	sheets := services.NewSheetsClient(cfg.SheetsURL, cfg.SheetsTimeout, zl)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := services.NewMetrics(reg)

	// 4. Optional integrations
	notify := newNotifyService(ctx, cfg, zl)
	digest, err := services.NewDigestService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		zl.Warn("candidate digest disabled", zap.Error(err))
		digest = nil
	}

	intake := services.NewIntakeService(assembler, sheets, appLog, notify, metrics, zl)
	sessions := services.NewSessionStore(intake, services.NewHRGate(cfg.HRPassphrase), metrics, zl)
	sessions.StartJanitor(ctx, sessionJanitorEvery, sessionTTL)
	review := services.NewReviewService(appLog, services.XLSXWriter{}, metrics, loc)

	// 5. HTTP
	r := handlers.NewRouter(handlers.RouterDeps{
		Sessions:    sessions,
		Review:      review,
		Digest:      digest,
		Registry:    reg,
		CORSOrigins: cfg.CORSOrigins,
		Logger:      zl,
	})

	zl.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zl.Fatal("server failed to start", zap.Error(err))
	}
}

// newNotifyService returns nil unless HR_NOTIFY_EMAIL is set and the Gmail
// files are usable.
func newNotifyService(ctx context.Context, cfg config.Config, zl *zap.Logger) *services.NotifyService {
	if cfg.HRNotifyEmail == "" {
		return nil
	}
	httpClient, err := auth.GetGmailClient(ctx, cfg.GmailCredentials, cfg.GmailToken)
	if err != nil {
		zl.Warn("HR notifications disabled", zap.Error(err))
		return nil
	}
	gmailService, err := gmail.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		zl.Warn("HR notifications disabled", zap.Error(err))
		return nil
	}
	zl.Info("Gmail service connected", zap.String("to", cfg.HRNotifyEmail))
	return services.NewNotifyService(services.GmailMailer(gmailService), cfg.HRNotifyEmail, zl)
}
