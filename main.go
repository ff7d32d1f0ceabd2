package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ptroncoso/portfolio-admin/api"
	"github.com/ptroncoso/portfolio-admin/auth"
	"github.com/ptroncoso/portfolio-admin/config"
	"github.com/ptroncoso/portfolio-admin/database"
	"github.com/ptroncoso/portfolio-admin/services"
	"github.com/ptroncoso/portfolio-admin/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()

	if config.GetBool(c, "CONSOLE_LOG", true) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	logger := log.With().Str("app", "portfolio-admin").Logger()

	dataDir := config.GetString(c, "DATA_DIR", "./data")
	st, err := store.New(dataDir, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", dataDir).Msg("local store initialization failed")
	}

	authenticator := auth.New(st, config.GetString(c, "ADMIN_EMAIL", "admin@portfolio.dev"), logger)
	if err := authenticator.Initialize(config.GetString(c, "ADMIN_PASSWORD", "")); err != nil {
		logger.Fatal().Err(err).Msg("credential bootstrap failed")
	}

	// The remote is optional. A bad or missing DSN means the app starts
	// offline against the local snapshot, not that it refuses to start.
	var gateway services.RemoteGateway
	if dsn := buildDSN(c); dsn != "" {
		db, err := database.Connect(dsn)
		if err != nil {
			logger.Warn().Err(err).Msg("remote database unreachable, starting offline")
		} else {
			gateway = db
		}
	} else {
		logger.Info().Msg("no remote database configured, running offline")
	}

	var media *services.MediaStore
	if endpoint := config.GetString(c, "STORAGE_ENDPOINT", ""); endpoint != "" {
		media, err = services.NewMediaStore(context.Background(),
			endpoint,
			config.GetString(c, "STORAGE_REGION", "us-east-1"),
			config.GetString(c, "STORAGE_PUBLIC_URL", endpoint),
			logger)
		if err != nil {
			logger.Warn().Err(err).Msg("object storage unavailable, media uploads disabled")
			media = nil
		}
	}

	orchestrator := services.New(st, gateway, logger)

	loadCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(c, "LOAD_TIMEOUT", 30*time.Second))
	out := orchestrator.LoadAll(loadCtx)
	cancel()
	logger.Info().
		Bool("offline", out.Offline).
		Int("pending", orchestrator.PendingCount()).
		Msg(out.Message)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(orchestrator, authenticator, media)
	if err != nil {
		logger.Fatal().Err(err).Msg("server initialization failed")
	}

	go server.Start(errChannel)
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	logger.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// buildDSN assembles the Postgres connection string from the Supabase
// variables. Empty host means no remote is configured.
func buildDSN(c map[string]string) string {
	host := config.GetString(c, "SUPABASE_DB_HOST", "")
	if host == "" {
		return ""
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
		host,
		config.GetString(c, "SUPABASE_DB_USER", "postgres"),
		config.GetString(c, "SUPABASE_DB_PASSWORD", ""),
		config.GetString(c, "SUPABASE_DB_NAME", "postgres"),
		config.GetString(c, "SUPABASE_DB_PORT", "5432"),
	)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
