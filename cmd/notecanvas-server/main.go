package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-notecanvas/internal/config"
	"github.com/goliatone/go-notecanvas/internal/server"
)

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("server setup failed")
	}
	if err := srv.Start(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
