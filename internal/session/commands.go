package session

import (
	"errors"
	"fmt"
	"iter"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper/internal/mines"
)

type command string

const (
	cmdNew    command = "n"
	cmdOpen   command = "o"
	cmdFlag   command = "f"
	cmdPrint  command = "g"
	cmdLayout command = "l"
	cmdQuit   command = "q"
)

// Maps known commands to number of arguments, -1 meaning "0 or 1"
var commandNargs = map[command]int{
	cmdNew:    -1,
	cmdOpen:   2,
	cmdFlag:   2,
	cmdPrint:  0,
	cmdLayout: 0,
	cmdQuit:   0,
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgs           = errors.New("invalid arguments")
	ErrInProgress     = errors.New("game is still in progress")
	ErrQuit           = errors.New("quit")
)

var dec = schema.NewDecoder()

func init() {
	dec.IgnoreUnknownKeys(true)
}

type newGameParams struct {
	Height    int `schema:"height"`
	Width     int `schema:"width"`
	MineCount int `schema:"mines"`
}

// parseNewGame reads either a seed ("16:20:40") or a query string
// ("height=16&width=20&mines=40"). Keys left out keep their default.
func parseNewGame(arg string, defaults mines.GameParams) (mines.GameParams, error) {
	if arg == "" {
		return defaults, nil
	}
	if strings.Contains(arg, ":") {
		p, err := mines.ParseSeed(arg)
		if err != nil {
			return mines.GameParams{}, fmt.Errorf("%w: %w", ErrArgs, err)
		}
		return *p, nil
	}
	query, err := url.ParseQuery(arg)
	if err != nil {
		return mines.GameParams{}, fmt.Errorf("%w: %w", ErrArgs, err)
	}
	params := newGameParams(defaults)
	if err := dec.Decode(&params, query); err != nil {
		return mines.GameParams{}, fmt.Errorf("%w: %w", ErrArgs, err)
	}
	return mines.GameParams(params), nil
}

func parseCoord(args []string) (c mines.Coord, err error) {
	if c.Row, err = strconv.Atoi(args[0]); err != nil {
		err = fmt.Errorf("%w: row must be an int", ErrArgs)
		return
	}
	if c.Col, err = strconv.Atoi(args[1]); err != nil {
		err = fmt.Errorf("%w: column must be an int", ErrArgs)
		return
	}
	return
}

func parseCommand(s string) (command, []string, error) {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return "", nil, ErrUnknownCommand
	}
	cmd, args := command(parts[0]), parts[1:]
	nargs, ok := commandNargs[cmd]
	if !ok {
		return "", nil, fmt.Errorf("%w %q", ErrUnknownCommand, parts[0])
	}
	switch {
	case nargs < 0 && len(args) > 1:
		return "", nil, fmt.Errorf(
			"%w: %q takes at most 1 argument, got %d", ErrArgs, cmd, len(args),
		)
	case nargs >= 0 && nargs != len(args):
		return "", nil, fmt.Errorf(
			"%w: %q takes %d arguments, got %d", ErrArgs, cmd, nargs, len(args),
		)
	}
	return cmd, args, nil
}

// byCommand yields the non-empty, trimmed commands of a line separated by
// ';' together with their position among them.
func byCommand(line string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, line, found = strings.Cut(line, ";")
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}
