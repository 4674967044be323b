package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-timetravel/transport/rest"
	"github.com/rocketscienceinc/tictactoe-timetravel/transport/terminal"
)

// RunApp - runs one game bound to the configured renderer.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	gameController := tictactoe.NewGameController(tictactoe.WithLogger(logger))

	if conf.IsTerminal() {
		term := terminal.New(logger, gameController, os.Stdout, true)
		if err := term.Run(ctx, os.Stdin); err != nil {
			return fmt.Errorf("terminal error: %w", err)
		}

		return nil
	}

	log.Info("Starting HTTP server", "port", conf.HTTPPort)

	if err := rest.New(logger, gameController).Start(ctx, conf.HTTPPort); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
