package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Game *tictactoe.GameController
}

// New builds a fresh game with a debug logger for a single test.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Game:   tictactoe.NewGameController(tictactoe.WithLogger(logger)),
	}
}

// Play clicks the given cells in order.
func (that *Suite) Play(cells ...int) {
	that.Helper()

	for _, cell := range cells {
		that.Game.HandleCellClick(cell)
	}
}
