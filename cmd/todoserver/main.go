package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sicko7947/todostore"
	"github.com/sicko7947/todostore/server"
	"github.com/sicko7947/todostore/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	})

	cfg, err := todostore.ConfigFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	todoStore, cleanup, err := newStore(cfg)
	if err != nil {
		// Storage initialization failure is fatal: no partial availability
		log.Fatal().Err(err).Str("backend", cfg.Backend.String()).Msg("Failed to initialize store")
	}
	if cleanup != nil {
		defer cleanup()
	}

	log.Info().Str("backend", cfg.Backend.String()).Msg("Store initialized")

	srv := server.New(todoStore, log.Logger)

	go func() {
		log.Info().Str("address", cfg.Addr).Msg("Starting HTTP server")
		if err := srv.Listen(cfg.Addr); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	if err := srv.Shutdown(cfg.ShutdownTimeout); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

// newStore builds the configured backend. The returned cleanup func is
// nil for backends that hold no local resources.
func newStore(cfg todostore.Config) (todostore.TodoStore, func(), error) {
	switch cfg.Backend {
	case todostore.BackendSQLite:
		s, err := store.OpenSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil

	case todostore.BackendDynamoDB:
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
		if err != nil {
			return nil, nil, err
		}
		client := dynamodb.NewFromConfig(awsCfg)
		return store.NewDynamoDBStore(client, cfg.DynamoTable), nil, nil

	default:
		return store.NewMemoryStore(), nil, nil
	}
}
