package main

import (
	"ChatbotGolang/internal/catalog"
	"ChatbotGolang/internal/config"
	"ChatbotGolang/internal/model"
	"ChatbotGolang/pkg/log"
	"ChatbotGolang/pkg/nlp"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// .env may set APP_ENV, which decides whether the logger opens a file sink.
	envErr := godotenv.Load()

	logger := log.NewLogger()
	if envErr != nil {
		logger.Warnf("No .env file loaded: %v", envErr)
	}

	if err := run(logger); err != nil {
		logger.Fatal(err)
	}
}

// run returns instead of exiting so deferred cleanup always happens.
func run(logger *logrus.Logger) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	if err := log.SetLevel(env.LogLevel); err != nil {
		return err
	}

	language, err := nlp.ParseLanguage(env.NormalizerLanguage)
	if err != nil {
		return err
	}

	validator := config.NewValidator()
	intents, err := catalog.Load(env.IntentsPath, validator)
	if err != nil {
		return fmt.Errorf("failed to load intent catalog: %w", err)
	}

	ctx := context.Background()
	store, closeStore, err := config.NewArtifactStore(ctx, env, logger)
	if err != nil {
		return fmt.Errorf("failed to open artifact store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Errorf("Failed to close artifact store: %v", err)
		}
	}()

	mc, state, err := model.NewBootstrapper(logger, store, intents, language).Start(ctx)
	if err != nil {
		return fmt.Errorf("failed to prepare model: %w", err)
	}

	server, err := config.NewServer(
		config.WithFiber(config.NewFiber(logger, env)),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithEnv(env),
		config.WithMiddleware(),
		config.WithCatalog(intents),
		config.WithModel(mc),
	)
	if err != nil {
		return err
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Run()
	}()

	logger.WithFields(log.Fields{
		"port":  env.AppPort,
		"state": state,
		"store": store.Name(),
	}).Info("Server started successfully")

	select {
	case err := <-serveErr:
		return fmt.Errorf("error starting server: %w", err)
	case <-sigChan:
	}

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Graceful shutdown failed: %v", err)
	}

	return nil
}
