// ProofDeck API server.
//
// @title ProofDeck API
// @version 1.0
// @description Customer feedback collection and social proof API
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/proofdeck/server/internal/api/handlers"
	"github.com/proofdeck/server/internal/api/router"
	"github.com/proofdeck/server/internal/config"
	"github.com/proofdeck/server/internal/email"
	"github.com/proofdeck/server/internal/pkg/logger"
	"github.com/proofdeck/server/internal/pkg/validator"
	"github.com/proofdeck/server/internal/repository/postgres"
	"github.com/proofdeck/server/internal/services"
	"github.com/proofdeck/server/internal/social"
	"github.com/proofdeck/server/internal/worker"
	"github.com/proofdeck/server/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	db, err := postgres.New(cfg.Database)
	if err != nil {
		log.ErrorWithErr(err, "Failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db.DB, migrations.FS); err != nil {
		log.ErrorWithErr(err, "Failed to run migrations")
		os.Exit(1)
	}
	log.Info("Database migrations applied")

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	formRepo := postgres.NewFormRepository(db)
	responseRepo := postgres.NewResponseRepository(db)
	requestRepo := postgres.NewFeedbackRequestRepository(db)
	shareRepo := postgres.NewShareRepository(db)
	usageRepo := postgres.NewUsageRepository(db)

	// Email delivery. Without SES configuration, requests are logged
	// instead of sent so local development works out of the box.
	var sender email.Sender
	if cfg.Email.Enabled {
		sesSender, err := email.NewSESSender(context.Background(), cfg.Email, log)
		if err != nil {
			log.ErrorWithErr(err, "Failed to initialize SES sender")
			os.Exit(1)
		}
		sender = sesSender
	} else {
		sender = email.NewLogSender(log)
		log.Warn("Email delivery disabled, feedback requests will be logged only")
	}

	// Services
	userService := services.NewUserService(userRepo, cfg.Auth.BCryptCost, log)
	usageService := services.NewUsageService(userRepo, usageRepo, log)
	formService := services.NewFormService(formRepo, log)
	responseService := services.NewResponseService(responseRepo, formRepo, requestRepo, log)
	feedbackService := services.NewFeedbackService(
		requestRepo, formRepo, userRepo, usageService,
		sender, cfg.Server.FrontendURL, cfg.Reminder.AfterDays, log,
	)
	shareService := services.NewShareService(
		shareRepo, responseRepo, userRepo, usageService,
		social.NewCaptionWriter(cfg.Social.OpenAIAPIKey),
		social.NewRenderer(cfg.Social.FontPath, cfg.Social.BrandColor),
		log,
	)

	// Handlers
	val := validator.New()
	h := &router.Handlers{
		Health:   handlers.NewHealthHandler(db.DB),
		Auth:     handlers.NewAuthHandler(userService, cfg, log, val),
		Form:     handlers.NewFormHandler(formService, log, val),
		Response: handlers.NewResponseHandler(responseService, log, val),
		Feedback: handlers.NewFeedbackHandler(feedbackService, log, val),
		Share:    handlers.NewShareHandler(shareService, log, val),
		Usage:    handlers.NewUsageHandler(usageService, log),
		Billing:  handlers.NewBillingHandler(userService, log, val),
	}

	// Reminder scheduler
	var reminders *worker.ReminderWorker
	if cfg.Reminder.Enabled {
		reminders = worker.NewReminderWorker(feedbackService, cfg.Reminder.Schedule, log)
		if err := reminders.Start(); err != nil {
			log.ErrorWithErr(err, "Failed to start reminder worker")
			os.Exit(1)
		}
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.New(cfg, log, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Infof("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.ErrorWithErr(err, "Server failed")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	if reminders != nil {
		reminders.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.ErrorWithErr(err, "Forced shutdown")
		os.Exit(1)
	}

	log.Info("Server stopped")
}
