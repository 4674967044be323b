package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/view"
)

const (
	green = "\033[32m"
	reset = "\033[0m"
)

const helpText = `commands:
  0-8        place the next mark on a cell (row-major, 0 = top left)
  jump <n>   show the board after move n
  new        go back to the empty board
  moves      list the recorded moves
  help       show this help
  quit       leave the game
`

// renderBoard draws the grid with cell indexes in place of empty cells.
func renderBoard(w io.Writer, board view.BoardView, color bool) {
	var sb strings.Builder

	for i, row := range board.Rows {
		if i > 0 {
			sb.WriteString("---+---+---\n")
		}

		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, " "+cellLabel(cell, color)+" ")
		}

		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteString("\n")
	}

	fmt.Fprint(w, sb.String())
}

func cellLabel(cell view.CellView, color bool) string {
	label := cell.Label()
	if label == " " {
		return strconv.Itoa(cell.Index)
	}

	if color && cell.Highlight {
		return green + label + reset
	}

	return label
}

func renderMoves(w io.Writer, moves []view.MoveView) {
	for _, move := range moves {
		marker := " "
		if move.Current {
			marker = ">"
		}

		fmt.Fprintf(w, "%s %d. %s\n", marker, move.Step, move.Label)
	}
}

func renderPage(w io.Writer, page view.Page, color bool) {
	fmt.Fprintln(w)
	renderBoard(w, page.Board, color)
	fmt.Fprintln(w, page.Status)
}
