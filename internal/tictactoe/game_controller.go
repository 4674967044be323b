package tictactoe

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

const (
	labelNewGame = "start new game"
	labelMove    = "go to move #%d"
)

// Move is one entry of the jump list shown next to the board.
type Move struct {
	Step  int    `json:"step"`
	Label string `json:"label"`
}

type Option func(*GameController)

// WithLogger makes the controller report ignored clicks and jumps at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(that *GameController) {
		that.logger = logger.With("component", "game_controller")
	}
}

// GameController owns the move history and the step currently displayed.
// The player to move is derived from the step parity and never stored.
type GameController struct {
	logger *slog.Logger

	history     *entity.History
	currentStep int
}

func NewGameController(opts ...Option) *GameController {
	controller := &GameController{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		history: entity.NewHistory(),
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// HandleCellClick places the next mark on cell. Clicks on an occupied cell,
// on a board that already has a winner, or outside the board are ignored.
func (that *GameController) HandleCellClick(cell int) {
	log := that.logger.With("method", "HandleCellClick", "cell", cell, "step", that.currentStep)

	if cell < 0 || cell >= entity.BoardSize {
		log.Debug("click ignored", "reason", "cell out of range")
		return
	}

	board := that.CurrentBoard()

	if winner, ok := Winner(board); ok {
		log.Debug("click ignored", "reason", "game won", "winner", winner)
		return
	}

	if !board.IsEmpty(cell) {
		log.Debug("click ignored", "reason", "cell occupied")
		return
	}

	mark := that.NextPlayer()
	that.currentStep = that.history.TruncateAppend(that.currentStep, board.WithMark(cell, mark))

	log.Debug("mark placed", "mark", mark, "new_step", that.currentStep)
}

// JumpTo shows the board recorded at step. History is left untouched.
func (that *GameController) JumpTo(step int) {
	if !that.history.Contains(step) {
		that.logger.Debug("jump ignored", "method", "JumpTo", "step", step, "history_len", that.history.Len())
		return
	}

	that.currentStep = step
}

func (that *GameController) CurrentBoard() entity.Board {
	return that.history.At(that.currentStep).Squares
}

func (that *GameController) CurrentStep() int {
	return that.currentStep
}

func (that *GameController) HistoryLen() int {
	return that.history.Len()
}

func (that *GameController) NextPlayer() entity.Mark {
	return entity.MarkForStep(that.currentStep)
}

// StatusText reports the winner of the current board or the player to move.
// A full board without a winner still reports the player to move.
func (that *GameController) StatusText() string {
	if winner, ok := Winner(that.CurrentBoard()); ok {
		return fmt.Sprintf("winner: %s", winner)
	}

	return fmt.Sprintf("next to move: %s", that.NextPlayer())
}

func (that *GameController) MoveList() []Move {
	moves := make([]Move, 0, that.history.Len())

	for step := range that.history.Len() {
		label := labelNewGame
		if step > 0 {
			label = fmt.Sprintf(labelMove, step)
		}

		moves = append(moves, Move{Step: step, Label: label})
	}

	return moves
}
