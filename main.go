package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cofrinho/backend/internal/config"
	"github.com/cofrinho/backend/internal/recurrence"
	"github.com/cofrinho/backend/internal/storage"
	"github.com/cofrinho/backend/internal/store"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load .env for local development, ignore errors in production
	_ = godotenv.Load()

	cfg := config.Load()

	// Log format can be explicitly set.
	// If it is not set, it defaults to JSON.
	output := io.Writer(os.Stdout)
	if cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if level, ok := os.LookupEnv("LOG_LEVEL"); ok {
		if parsed, err := zerolog.ParseLevel(level); err == nil {
			zerolog.SetGlobalLevel(parsed)
		}
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	err := cfg.Validate()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database
	kv, err := storage.Connect(cfg.SQLiteDBPath)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer kv.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := store.New(kv)
	err = s.Load(ctx)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	worker := recurrence.NewWorker(recurrence.New(s), cfg.ScanInterval)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return worker.Run(ctx)
	})

	log.Info().
		Str("database", cfg.SQLiteDBPath).
		Dur("scanInterval", cfg.ScanInterval).
		Msg("cofrinho started")

	if err := g.Wait(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
