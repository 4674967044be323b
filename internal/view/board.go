// Package view turns the game controller's public contract into render-ready
// descriptions. It holds no state of its own.
package view

import (
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

const boardWidth = 3

// CellView describes one cell of the grid.
type CellView struct {
	Index     int         `json:"index"`
	Row       int         `json:"row"`
	Col       int         `json:"col"`
	Value     entity.Mark `json:"value"`
	Highlight bool        `json:"highlight,omitempty"`
}

// Label is what a renderer prints inside the cell.
func (that CellView) Label() string {
	if that.Value == entity.EmptyCell {
		return " "
	}
	return string(that.Value)
}

// BoardView is the 3x3 grid plus the callback that receives cell clicks.
type BoardView struct {
	Rows [boardWidth][boardWidth]CellView `json:"rows"`

	onCellClick func(cell int)
}

// NewBoardView maps every board index to its cell. Cells of a completed line are highlighted.
func NewBoardView(board entity.Board, onCellClick func(cell int)) BoardView {
	line, won := tictactoe.WinningLine(board)

	view := BoardView{onCellClick: onCellClick}
	for i, value := range board {
		view.Rows[i/boardWidth][i%boardWidth] = CellView{
			Index:     i,
			Row:       i / boardWidth,
			Col:       i % boardWidth,
			Value:     value,
			Highlight: won && (line[0] == i || line[1] == i || line[2] == i),
		}
	}

	return view
}

// Click forwards a click on cell to the board callback.
func (that BoardView) Click(cell int) {
	if that.onCellClick != nil {
		that.onCellClick(cell)
	}
}
