package session

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/mines"
)

// Session forwards player commands to a board one at a time and writes the
// resulting board to out after each of them.
type Session struct {
	mu sync.Mutex

	defaults  mines.GameParams
	rnd       *rand.Rand
	out       io.Writer
	log       logrus.FieldLogger
	game      *logrus.Entry
	gameId    uuid.UUID
	board     *mines.Board
	startedAt time.Time
}

// New starts a session with a first game shaped by defaults. A nil log or
// rnd falls back to [mines.Log] and [mines.NewRand].
func New(
	defaults mines.GameParams, out io.Writer, log logrus.FieldLogger, rnd *rand.Rand,
) (*Session, error) {
	if log == nil {
		log = mines.Log
	}
	if rnd == nil {
		rnd = mines.NewRand()
	}
	s := &Session{
		defaults: defaults,
		rnd:      rnd,
		out:      out,
		log:      log,
	}
	if err := s.newGame(defaults); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) Board() *mines.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board
}

func (s *Session) GameId() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameId
}

// Execute runs the ';'-separated commands of line in order. Commands after
// one that ends the game are skipped. The first failing command stops the
// line; commands before it stay applied. [ErrQuit] is returned as is.
func (s *Session) Execute(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range byCommand(line) {
		ended, err := s.execute(c)
		if errors.Is(err, ErrQuit) {
			return err
		}
		if err != nil {
			return fmt.Errorf("command %d (%s): %w", i+1, c, err)
		}
		if ended {
			break
		}
	}
	return nil
}

// Close logs how the current game stands.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.game.WithFields(logrus.Fields{
		"phase":         s.board.Phase().String(),
		"revealed_safe": s.board.RevealedSafe(),
		"played":        time.Since(s.startedAt).Round(time.Millisecond).String(),
	}).Info("session closed")
	return nil
}

func (s *Session) execute(c string) (ended bool, err error) {
	cmd, args, err := parseCommand(c)
	if err != nil {
		return false, err
	}
	switch cmd {
	case cmdNew:
		params, err := parseNewGame(strings.Join(args, ""), s.defaults)
		if err != nil {
			return false, err
		}
		if err := s.newGame(params); err != nil {
			return false, err
		}
		s.render()
		return false, nil
	case cmdOpen:
		at, err := parseCoord(args)
		if err != nil {
			return false, err
		}
		res, err := s.board.Reveal(at)
		if err != nil {
			return false, err
		}
		s.render()
		s.announce(res.Event)
		return res.Event != mines.EventNone, nil
	case cmdFlag:
		at, err := parseCoord(args)
		if err != nil {
			return false, err
		}
		if _, err := s.board.ToggleFlag(at); err != nil {
			return false, err
		}
		s.render()
		return false, nil
	case cmdPrint:
		s.render()
		return false, nil
	case cmdLayout:
		if !s.board.Phase().Terminal() {
			return false, ErrInProgress
		}
		fmt.Fprint(s.out, s.board.Layout())
		return false, nil
	case cmdQuit:
		return false, ErrQuit
	}
	return false, ErrUnknownCommand
}

func (s *Session) newGame(params mines.GameParams) error {
	id := uuid.New()
	game := s.log.WithFields(logrus.Fields{
		"game": id.String(),
		"seed": params.Seed(),
	})
	board, err := mines.NewBoard(params, mines.WithRand(s.rnd), mines.WithLogger(game))
	if err != nil {
		return err
	}
	s.gameId, s.game, s.board = id, game, board
	s.startedAt = time.Now()
	game.Info("new game")
	return nil
}

func (s *Session) announce(e mines.Event) {
	fields := logrus.Fields{
		"revealed_safe": s.board.RevealedSafe(),
		"played":        time.Since(s.startedAt).Round(time.Millisecond).String(),
	}
	switch e {
	case mines.EventPlayerWon:
		fmt.Fprintln(s.out, "Congratulations -- you won!")
		s.game.WithFields(fields).Info("game won")
	case mines.EventPlayerLost:
		fmt.Fprintln(s.out, "KABOOM! You lose.")
		s.game.WithFields(fields).Info("game lost")
	}
}

// render writes the flag counter and the board with row and column labels.
func (s *Session) render() {
	var b strings.Builder
	fmt.Fprintf(&b, "flags: %d\n", s.board.RemainingFlags())
	b.WriteString("   ")
	for col := range s.board.Width {
		if col > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, col%10)
	}
	b.WriteByte('\n')
	rows := strings.Split(strings.TrimSuffix(s.board.String(), "\n"), "\n")
	for i, row := range rows {
		fmt.Fprintf(&b, "%2d %s\n", i, row)
	}
	if _, err := io.WriteString(s.out, b.String()); err != nil {
		s.game.WithError(err).Warn("unable to write board")
	}
}
