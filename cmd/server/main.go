package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	_ "estatehub/docs"
	"estatehub/internal/config"
	"estatehub/internal/email/noop"
	resendemail "estatehub/internal/email/resend"
	sesemail "estatehub/internal/email/ses"
	"estatehub/internal/handler"
	"estatehub/internal/logger"
	"estatehub/internal/port"
	"estatehub/internal/ratelimit"
	"estatehub/internal/repository/postgres"
	"estatehub/internal/router"
	"estatehub/internal/service"
	"estatehub/internal/storage"
	"estatehub/internal/validator"
)

// @title EstateHub API
// @version 1.0
// @description Real-estate back-office API for operations reports and notifications.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	lg := logger.New(cfg.Log)
	handler.Configure(lg, !cfg.Server.IsProduction())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Redis backs rate limiting and the cleanup lock. Without it both are disabled.
	var (
		rdb             *redis.Client
		propertyLimiter port.RateLimiter
		locker          port.Locker
		cache           handler.Pinger
	)
	rdb, err = ratelimit.NewRedisClient(ctx, &cfg.Redis)
	if err != nil {
		lg.WithError(err).Warn("redis unavailable, rate limiting and cleanup locking disabled")
	} else {
		defer rdb.Close()
		propertyLimiter = ratelimit.NewFixedWindow(rdb, "ratelimit:property-update", cfg.RateLimit.PropertyUpdates, cfg.RateLimit.Window)
		locker = ratelimit.NewLocker(rdb)
		cache = redisPinger{rdb}
	}

	exportArchive, err := storage.New(ctx, &cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	emailSender, err := newEmailSender(&cfg.Email, lg)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	if err := validator.Register(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	propertyRepo := postgres.NewPropertyRepo(db)
	leadRepo := postgres.NewLeadRepo(db)
	settingRepo := postgres.NewSettingRepo(db)
	commissionRepo := postgres.NewCommissionReportRepo(db)
	dailyRepo := postgres.NewDailyReportRepo(db)
	notificationRepo := postgres.NewNotificationRepo(db)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	notificationSvc := service.NewNotificationService(notificationRepo, userRepo, emailSender, lg)
	commissionAgg := service.NewCommissionAggregator(propertyRepo, settingRepo, cfg.Reports.DefaultCommissionPercentage)
	dailyAgg := service.NewDailyAggregator(userRepo, propertyRepo, leadRepo)
	commissionSvc := service.NewCommissionReportService(commissionRepo, commissionAgg, notificationSvc, lg)
	dailySvc := service.NewDailyReportService(dailyRepo, userRepo, dailyAgg, notificationSvc, lg)
	propertySvc := service.NewPropertyService(propertyRepo)
	settingSvc := service.NewSettingService(settingRepo, commissionAgg)
	exportSvc := service.NewExportService(commissionSvc, dailySvc, exportArchive, service.ExportArchiveConfig{
		LinkTTL: time.Duration(cfg.Storage.PresignExpiry) * time.Second,
	}, lg)

	if cfg.Notifications.CleanupWorkerEnabled {
		worker := service.NewNotificationCleanupWorker(notificationSvc, locker, service.NotificationCleanupConfig{
			Interval:      cfg.Notifications.CleanupInterval,
			RetentionDays: cfg.Notifications.RetentionDays,
		}, lg)
		go worker.Start(ctx)
	}

	r := router.Setup(router.Deps{
		Log:             lg,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		PropertyLimiter: propertyLimiter,
		EnableSwagger:   !cfg.Server.IsProduction(),
		AuthService:     authSvc,
		Auth:            handler.NewAuthHandler(authSvc),
		User:            handler.NewUserHandler(userSvc),
		Commission:      handler.NewCommissionReportHandler(commissionSvc, exportSvc),
		Daily:           handler.NewDailyReportHandler(dailySvc, exportSvc),
		Notification:    handler.NewNotificationHandler(notificationSvc),
		Property:        handler.NewPropertyHandler(propertySvc),
		Setting:         handler.NewSettingHandler(settingSvc),
		Health:          handler.NewHealthHandler(db, cache),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.WithField("addr", cfg.Server.Port).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		lg.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	lg.Info("server stopped")
	return nil
}

func newEmailSender(cfg *config.EmailConfig, lg logrus.FieldLogger) (port.EmailSender, error) {
	switch cfg.Provider {
	case "ses":
		return sesemail.NewSESSender(cfg.Region, cfg.FromAddress, cfg.FromName, cfg.FrontendURL)
	case "resend":
		return resendemail.NewResendSender(cfg.ResendAPIKey, cfg.FromAddress, cfg.FromName, cfg.FrontendURL)
	case "", "noop":
		return noop.NewNoopSender(lg), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}

type redisPinger struct {
	rdb *redis.Client
}

func (p redisPinger) PingContext(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}
