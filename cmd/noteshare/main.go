// Package main implements the entry point of the noteshare service.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteshare/internal/noteshare/adapters/authapi"
	"noteshare/internal/noteshare/adapters/cache"
	httpserver "noteshare/internal/noteshare/adapters/http"
	"noteshare/internal/noteshare/adapters/postgres"
	adapterservices "noteshare/internal/noteshare/adapters/services"
	"noteshare/internal/noteshare/adapters/smtp"
	"noteshare/internal/noteshare/app"
	"noteshare/internal/noteshare/config"
	"noteshare/internal/noteshare/db"
	"noteshare/internal/noteshare/ports/services"
	"noteshare/pkg/logger"
	"noteshare/pkg/shutdown"
)

// Environment variables read before the configuration is loaded.
const (
	EnvLoggerMode  = "NOTESHARE_LOGGER_MODE"
	EnvLoggerLevel = "NOTESHARE_LOGGER_LEVEL"
)

// Error messages.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDB               = "failed to initialize database"
	ErrInitCache            = "failed to initialize profile cache"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Sync errors that are safe to ignore on stdout/stderr sinks.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Service messages.
const (
	LogServiceStarted      = "noteshare service started"
	LogServiceShutdownDone = "noteshare service shutdown complete"
	LogClosingDB           = "closing database connections"
	LogClosingCache        = "closing profile cache"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitRepo            = "initializing repositories"
	LogInitAdapters        = "initializing adapters"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		database, err := db.New(ctx, &cfg.Postgres, "migrations")
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(env)),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitRepo)
		repoFactory := postgres.NewRepositoryFactory(database.Pool())
		userRepo := repoFactory.UserRepository()
		boardRepo := repoFactory.BoardRepository()
		noteRepo := repoFactory.NoteRepository()
		inviteRepo := repoFactory.InviteRepository()
		connectionRepo := repoFactory.ConnectionRepository()

		log.Info(ctx, LogInitAdapters)
		authClient := authapi.NewClient(cfg.Auth.BaseURL)
		tokenService := adapterservices.NewJWT(cfg.Auth.SecretKey)
		emailSender := smtp.NewSender(smtp.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})

		var profileCache services.ProfileCache
		var redisCache *cache.ProfileCache
		if cfg.Redis.Enabled {
			redisCache, err = cache.NewProfileCache(ctx, cache.Options{
				Addr:     cfg.Redis.GetAddressString(),
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			if err != nil {
				log.Error(ctx, ErrInitCache, zap.Error(err))
				exitCode = 1
				return
			}
			profileCache = redisCache
		}

		log.Info(ctx, LogInitUseCases)
		userUseCase := app.NewUserUseCase(userRepo, boardRepo, authClient, profileCache)
		noteUseCase := app.NewNoteUseCase(noteRepo, userRepo, userUseCase)
		inviteUseCase := app.NewInviteUseCase(inviteRepo, connectionRepo, userRepo, emailSender)

		log.Info(ctx, LogInitHTTPServer)
		fiberApp := fiber.New(httpserver.NewAppConfig(cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout))
		httpserver.SetupRouter(fiberApp, tokenService, userUseCase, noteUseCase, inviteUseCase, cfg.Invites.BaseURL)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := fiberApp.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(cfg.Shutdown.GetTimeout(),
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingDB)
				database.Close(ctx)
				return nil
			},
			func(ctx context.Context) error {
				if redisCache != nil {
					log.Info(ctx, LogClosingCache)
					redisCache.Close(ctx)
				}
				return nil
			},
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return fiberApp.Shutdown()
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
