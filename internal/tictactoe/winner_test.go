package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestWinner(t *testing.T) {
	t.Run("Every triple wins for the mark occupying it", func(t *testing.T) {
		for _, mark := range []entity.Mark{x, o} {
			for _, combo := range WinCombos {
				// Given: a board where only the combo cells hold the mark
				var board entity.Board
				for _, cell := range combo {
					board[cell] = mark
				}

				// When: evaluating the board
				winner, ok := Winner(board)

				// Then: the mark is reported as the winner
				require.True(t, ok, "combo %v", combo)
				assert.Equal(t, mark, winner, "combo %v", combo)

				line, ok := WinningLine(board)
				require.True(t, ok)
				assert.Equal(t, combo, line)
			}
		}
	})

	t.Run("Empty board has no winner", func(t *testing.T) {
		winner, ok := Winner(entity.Board{})

		assert.False(t, ok)
		assert.Equal(t, e, winner)
	})

	t.Run("Drawn full board has no winner", func(t *testing.T) {
		// Given: a full board without a completed line
		board := entity.Board{
			x, o, x,
			x, o, o,
			o, x, x,
		}

		// When: evaluating the board
		_, ok := Winner(board)

		// Then: there is no winner even though the board is full
		assert.False(t, ok)
		assert.True(t, IsFull(board))
	})

	t.Run("Mixed triple does not win", func(t *testing.T) {
		board := entity.Board{
			x, x, o,
			e, o, e,
			x, e, e,
		}

		_, ok := Winner(board)

		assert.False(t, ok)
		assert.False(t, IsFull(board))
	})

	t.Run("Diagonal win for O", func(t *testing.T) {
		board := entity.Board{
			x, x, o,
			e, o, e,
			o, e, x,
		}

		winner, ok := Winner(board)

		require.True(t, ok)
		assert.Equal(t, o, winner)
	})
}
