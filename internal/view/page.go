package view

import (
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

const Title = "Welcome to Tic-Tac-Toe!"

type MoveView struct {
	Step    int    `json:"step"`
	Label   string `json:"label"`
	Current bool   `json:"current,omitempty"`
}

// Page is everything a renderer needs to draw one frame of the game.
type Page struct {
	Title  string     `json:"title"`
	Status string     `json:"status"`
	Step   int        `json:"step"`
	Board  BoardView  `json:"board"`
	Moves  []MoveView `json:"moves"`
}

type Game interface {
	CurrentBoard() entity.Board
	CurrentStep() int
	StatusText() string
	MoveList() []tictactoe.Move
	HandleCellClick(cell int)
}

func NewPage(game Game) Page {
	moves := game.MoveList()
	step := game.CurrentStep()

	page := Page{
		Title:  Title,
		Status: game.StatusText(),
		Step:   step,
		Board:  NewBoardView(game.CurrentBoard(), game.HandleCellClick),
		Moves:  make([]MoveView, 0, len(moves)),
	}

	for _, move := range moves {
		page.Moves = append(page.Moves, MoveView{
			Step:    move.Step,
			Label:   move.Label,
			Current: move.Step == step,
		})
	}

	return page
}
