package main

import (
	"context"
	"io"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func newSession(t *testing.T) *session.Session {
	t.Helper()
	s, err := session.New(
		mines.GameParams{Height: 1, Width: 3, MineCount: 0},
		io.Discard, log, rand.New(rand.NewPCG(1, 2)),
	)
	require.NoError(t, err)
	return s
}

func TestScanAndPlay(t *testing.T) {
	s := newSession(t)
	lines := make(chan string)
	go scanLines(strings.NewReader("f 0 0\nbogus\nf 0 0; o 0 2\n"), lines)

	err := play(context.Background(), s, lines)
	assert.ErrorIs(t, err, session.ErrQuit, "end of input quits")
	assert.Equal(t, mines.Won, s.Board().Phase())
}

func TestPlayQuit(t *testing.T) {
	s := newSession(t)
	lines := make(chan string, 2)
	lines <- "q"
	lines <- "o 0 0"

	err := play(context.Background(), s, lines)
	assert.ErrorIs(t, err, session.ErrQuit)
	assert.Equal(t, mines.InProgress, s.Board().Phase())
}

func TestPlayCanceled(t *testing.T) {
	s := newSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := play(ctx, s, make(chan string))
	assert.ErrorIs(t, err, context.Canceled)
}
