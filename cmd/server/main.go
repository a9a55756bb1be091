package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventhub/config"
	"eventhub/internal/adapters/auth"
	"eventhub/internal/adapters/email"
	"eventhub/internal/adapters/storage"
	delivery "eventhub/internal/delivery/http"
	"eventhub/internal/delivery/http/controllers"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/repository/memory"
	"eventhub/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Repositories and the demo dataset. All catalog and ledger state is
	// process-local; only the session snapshot survives a restart.
	userRepo := memory.NewUserRepository()
	eventRepo := memory.NewEventRepository()
	registrationRepo := memory.NewRegistrationRepository()
	if err := memory.Seed(ctx, userRepo, eventRepo, registrationRepo); err != nil {
		logger.Error("failed to seed dataset", "err", err)
		os.Exit(1)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	snapshots := auth.NewJWTSnapshots(cfg.SessionSecret)
	identity := services.NewIdentityService(
		userRepo,
		auth.NewBcryptHasher(0),
		snapshots,
		snapshots,
		storage.NewFileStore(cfg.SessionFile),
		emailService,
		cfg.SimulatedLatency,
		logger,
	)
	identity.RestoreSession(ctx)

	eventService := services.NewEventService(eventRepo, registrationRepo, userRepo, identity, emailService, logger)

	eventController := controllers.NewEventController(logger, eventService)
	authController := controllers.NewAuthController(logger, identity)

	mux := delivery.NewRouter(eventController, authController, identity)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}
