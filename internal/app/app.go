package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Muneeb10/AK-Fashion/internal/config"
	"github.com/Muneeb10/AK-Fashion/internal/delivery/rest"
	"github.com/Muneeb10/AK-Fashion/internal/domain/entities"
	"github.com/Muneeb10/AK-Fashion/internal/infrastructure/logger"
	"github.com/Muneeb10/AK-Fashion/internal/infrastructure/mailer"
	"github.com/Muneeb10/AK-Fashion/internal/infrastructure/mongodb"
	"github.com/Muneeb10/AK-Fashion/internal/infrastructure/nats"
	"github.com/Muneeb10/AK-Fashion/internal/infrastructure/storage"
	"github.com/Muneeb10/AK-Fashion/internal/usecase"
)

type App struct {
	cfg    *config.Config
	logger *logger.Logger
}

func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return New(cfg).Run()
}

func New(cfg *config.Config) *App {
	return &App{
		cfg:    cfg,
		logger: logger.NewLogger(cfg.AppEnv),
	}
}

func (a *App) Run() error {
	defer a.logger.Sync()
	a.logger.Info("Starting AK-Fashion backend")

	mongoClient, err := a.initMongoDB()
	if err != nil {
		return err
	}
	defer mongoClient.Close()

	db := mongoClient.Database()

	orderRepo, err := mongodb.NewOrderRepositoryMongo(db, a.logger)
	if err != nil {
		return fmt.Errorf("failed to init order repository: %w", err)
	}
	productRepo, err := mongodb.NewProductRepositoryMongo(db)
	if err != nil {
		return fmt.Errorf("failed to init product repository: %w", err)
	}
	categoryRepo := mongodb.NewCategoryRepositoryMongo(db)
	userRepo, err := mongodb.NewUserRepositoryMongo(db)
	if err != nil {
		return fmt.Errorf("failed to init user repository: %w", err)
	}
	adminRepo, err := mongodb.NewAdminRepositoryMongo(db)
	if err != nil {
		return fmt.Errorf("failed to init admin repository: %w", err)
	}

	fileStore, err := storage.NewLocalStore(a.cfg.Uploads.Dir, a.logger)
	if err != nil {
		return fmt.Errorf("failed to init upload storage: %w", err)
	}

	publisher := a.initNATS()
	if closer, ok := publisher.(interface{ Close() }); ok {
		defer closer.Close()
	}

	mail := a.initMailer()

	orderUseCase := usecase.NewOrderUseCase(orderRepo, userRepo, productRepo, fileStore, publisher, a.logger)
	catalogUseCase := usecase.NewCatalogUseCase(productRepo, categoryRepo, fileStore, a.logger)
	authUseCase := usecase.NewAuthUseCase(adminRepo, userRepo, mail, a.cfg.Auth.JWTSecret, a.cfg.Auth.ResetURLBase, a.logger)
	contactUseCase := usecase.NewContactUseCase(mail, a.cfg.SMTP.Receiver, a.logger)

	router := rest.NewRouter(rest.RouterDeps{
		Logger:         a.logger,
		Orders:         orderUseCase,
		Catalog:        catalogUseCase,
		Auth:           authUseCase,
		Contact:        contactUseCase,
		UploadDir:      fileStore.Dir(),
		AllowedOrigins: a.cfg.CORS.AllowedOrigins,
	})

	server := &http.Server{
		Addr:         ":" + a.cfg.HTTP.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return a.runServerWithGracefulShutdown(server)
}

func (a *App) initMongoDB() (*mongodb.Client, error) {
	a.logger.Info("Connecting to MongoDB", "uri", a.cfg.Mongo.URI, "db", a.cfg.Mongo.DB)

	client, err := mongodb.NewClient(a.cfg.Mongo.URI, a.cfg.Mongo.DB)
	if err != nil {
		a.logger.Error("Failed to connect to MongoDB", "error", err)
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	a.logger.Info("Connected to MongoDB successfully")
	return client, nil
}

func (a *App) initNATS() usecase.EventPublisher {
	if a.cfg.NATS.URL == "" {
		a.logger.Info("NATS URL not set, event publishing disabled")
		return &noopEventPublisher{}
	}

	publisher, err := connectToNATSWithRetry(a.cfg.NATS.URL, a.logger, 3, 2*time.Second)
	if err != nil {
		a.logger.Warn("Failed to connect to NATS, continuing without event publishing",
			"error", err,
			"url", a.cfg.NATS.URL)
		return &noopEventPublisher{}
	}

	a.logger.Info("Connected to NATS successfully")
	return publisher
}

func (a *App) initMailer() usecase.Mailer {
	if a.cfg.SMTP.Host == "" {
		a.logger.Info("SMTP host not set, mail delivery disabled")
		return mailer.NewNoopMailer(a.logger)
	}
	return mailer.NewSMTPMailer(
		a.cfg.SMTP.Host,
		a.cfg.SMTP.Port,
		a.cfg.SMTP.Username,
		a.cfg.SMTP.Password,
		a.cfg.SMTP.From,
		a.logger,
	)
}

func (a *App) runServerWithGracefulShutdown(server *http.Server) error {
	serverErrors := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server", "port", a.cfg.HTTP.Port)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		a.logger.Info("Received shutdown signal, starting graceful shutdown", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			a.logger.Warn("Graceful shutdown timeout, forcing close", "error", err)
			return server.Close()
		}

		a.logger.Info("Graceful shutdown completed")
		return nil
	}
}

func connectToNATSWithRetry(url string, logger *logger.Logger, maxRetries int, delay time.Duration) (usecase.EventPublisher, error) {
	for i := 0; i < maxRetries; i++ {
		publisher, err := nats.NewNatsPublisher(url, logger)
		if err == nil {
			return publisher, nil
		}

		logger.Warn("Failed to connect to NATS, retrying...",
			"attempt", i+1,
			"max_retries", maxRetries,
			"error", err)

		if i < maxRetries-1 {
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("failed to connect to NATS after %d attempts", maxRetries)
}

type noopEventPublisher struct{}

func (n *noopEventPublisher) PublishOrderCreated(ctx context.Context, order *entities.Order) error {
	return nil
}

func (n *noopEventPublisher) Close() {
}
