package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/chzyer/readline"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/view"
)

const prompt = "tictactoe> "

type game interface {
	CurrentBoard() entity.Board
	CurrentStep() int
	StatusText() string
	MoveList() []tictactoe.Move

	HandleCellClick(cell int)
	JumpTo(step int)
}

// Terminal renders one game on a text terminal and feeds typed commands back into it.
type Terminal struct {
	logger *slog.Logger
	game   game

	out   io.Writer
	color bool
}

func New(logger *slog.Logger, game game, out io.Writer, color bool) *Terminal {
	return &Terminal{
		logger: logger.With("component", "terminal"),
		game:   game,
		out:    out,
		color:  color,
	}
}

// Render prints the current board and status.
func (that *Terminal) Render() {
	renderPage(that.out, view.NewPage(that.game), that.color)
}

// Exec runs one prompt line. It reports true when the user asked to quit.
func (that *Terminal) Exec(line string) (bool, error) {
	cmd, err := parseCommand(line)
	if err != nil {
		return false, fmt.Errorf("failed to parse command: %w", err)
	}

	page := view.NewPage(that.game)

	switch cmd.kind {
	case cmdNone:
		return false, nil
	case cmdClick:
		page.Board.Click(cmd.arg)
		that.Render()
	case cmdJump:
		that.game.JumpTo(cmd.arg)
		that.Render()
	case cmdNew:
		that.game.JumpTo(0)
		that.Render()
	case cmdMoves:
		renderMoves(that.out, page.Moves)
	case cmdHelp:
		fmt.Fprint(that.out, helpText)
	case cmdQuit:
		return true, nil
	}

	return false, nil
}

// Run reads commands until quit, EOF, interrupt or ctx cancellation.
func (that *Terminal) Run(ctx context.Context, stdin io.ReadCloser) error {
	log := that.logger.With("method", "Run")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		Stdin:           stdin,
		Stdout:          that.out,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return fmt.Errorf("failed to init readline: %w", err)
	}
	defer rl.Close()

	go func() {
		<-ctx.Done()
		rl.Close()
	}()

	fmt.Fprintln(that.out, view.Title)
	fmt.Fprint(that.out, "type 'help' for commands\n")
	that.Render()

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		}

		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return fmt.Errorf("failed to read line: %w", err)
		}

		quit, err := that.Exec(line)
		if err != nil {
			log.Debug("command rejected", "line", line, "error", err)
			fmt.Fprintln(that.out, err)
			continue
		}

		if quit {
			return nil
		}
	}
}
