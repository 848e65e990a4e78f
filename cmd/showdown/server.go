package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cardroom/showdown/cmd/showdown/shared"
	"github.com/cardroom/showdown/internal/server"
)

// ServerCmd contains server configuration
type ServerCmd struct {
	Addr            string `kong:"help='Listen address (overrides config file)'"`
	Config          string `kong:"help='Path to HCL config file',type='existingfile',optional"`
	Debug           bool   `kong:"help='Enable debug logging'"`
	MaxPlayers      int    `kong:"help='Maximum players per evaluation request (default 10)'"`
	SummaryInterval string `kong:"help='How often to log evaluation summaries (default 1m, 0 disables)'"`
}

func (c *ServerCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg := server.DefaultConfig()
	addr := ""

	if c.Config != "" {
		fileCfg, err := server.LoadFileConfig(c.Config)
		if err != nil {
			return err
		}
		if err := fileCfg.Validate(); err != nil {
			return err
		}
		cfg = fileCfg.RuntimeConfig()
		addr = fileCfg.Addr()
		logger.Info().Str("config", c.Config).Msg("Loaded config file")
	}

	// Flags take precedence over the config file
	if c.Addr != "" {
		addr = c.Addr
	}
	if addr == "" {
		addr = ":8080"
	}
	if c.MaxPlayers != 0 {
		cfg.MaxPlayers = c.MaxPlayers
	}
	if c.SummaryInterval != "" {
		interval, err := time.ParseDuration(c.SummaryInterval)
		if err != nil {
			return err
		}
		cfg.SummaryInterval = interval
	}

	s := server.NewServer(logger, server.WithConfig(cfg))

	logger.Info().
		Str("address", addr).
		Int("max_players", cfg.MaxPlayers).
		Dur("summary_interval", cfg.SummaryInterval).
		Msg("Starting showdown server")

	ctx := shared.SetupSignalHandler(logger)

	serverErr := make(chan error, 1)
	go func() {
		if err := s.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}
