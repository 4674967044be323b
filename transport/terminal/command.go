package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
)

type commandType int

const (
	cmdNone commandType = iota
	cmdClick
	cmdJump
	cmdNew
	cmdMoves
	cmdHelp
	cmdQuit
)

type command struct {
	kind commandType
	arg  int
}

// parseCommand reads one prompt line. A bare number is a cell click.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return command{kind: cmdNone}, nil
	}

	if cell, err := strconv.Atoi(fields[0]); err == nil && len(fields) == 1 {
		return command{kind: cmdClick, arg: cell}, nil
	}

	switch fields[0] {
	case "jump", "j":
		if len(fields) != 2 {
			return command{}, fmt.Errorf("%w: usage: jump <step>", apperror.ErrInvalidStep)
		}

		step, err := strconv.Atoi(fields[1])
		if err != nil {
			return command{}, fmt.Errorf("%w: %q", apperror.ErrInvalidStep, fields[1])
		}

		return command{kind: cmdJump, arg: step}, nil
	case "new", "n":
		return command{kind: cmdNew}, nil
	case "moves", "m":
		return command{kind: cmdMoves}, nil
	case "help", "h", "?":
		return command{kind: cmdHelp}, nil
	case "quit", "exit", "q":
		return command{kind: cmdQuit}, nil
	}

	if _, err := strconv.Atoi(fields[0]); err == nil {
		return command{}, fmt.Errorf("%w: %q", apperror.ErrInvalidCell, line)
	}

	return command{}, fmt.Errorf("%w: %q", apperror.ErrUnknownCommand, fields[0])
}
