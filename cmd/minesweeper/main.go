package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/logging"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
	"golang.org/x/sync/errgroup"
)

const defaultConfigPath = "minesweeper.json"

var (
	log = logrus.New()

	configPath string
	cfg        = config.Default()
)

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", defaultConfigPath, usage)
	flag.StringVar(&configPath, "c", defaultConfigPath, usage+" (shorthand)")
}

const help = `commands (separate several with ';'):
  n [height=H&width=W&mines=M | H:W:M]  new game
  o <row> <col>                         reveal a cell
  f <row> <col>                         flag or unflag a cell
  g                                     print the board
  l                                     print the mine layout (game over only)
  q                                     quit`

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	if err := config.ReadConfig(configPath, &cfg); err != nil {
		// the default config file is optional
		if !(errors.Is(err, fs.ErrNotExist) && configPath == defaultConfigPath) {
			log.Fatalf("unable to read config %s: %s", configPath, err.Error())
		}
	}

	if err := logging.Setup(log, cfg); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}
	mines.Log = log

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	s, err := session.New(cfg.Params(), os.Stdout, log, mines.NewRand())
	if err != nil {
		log.Fatal("unable to start a game: ", err)
	}

	fmt.Println(help)
	if err := s.Execute("g"); err != nil {
		log.Fatal(err)
	}

	lines := make(chan string)
	go scanLines(os.Stdin, lines)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		return play(gCtx, s, lines)
	})
	g.Go(func() error {
		<-gCtx.Done()
		return s.Close()
	})

	err = g.Wait()
	if err != nil && !errors.Is(err, session.ErrQuit) && !errors.Is(err, context.Canceled) {
		log.Printf("exit reason: %s\n", err)
	}
}

// scanLines is left running on its own: a read from stdin cannot be
// interrupted, and the process exits once play returns.
func scanLines(r io.Reader, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines <- scanner.Text()
	}
	if err := scanner.Err(); err != nil {
		log.Error("read: ", err)
	}
}

// play handles one line at a time until the player quits, input ends or ctx
// is done.
func play(ctx context.Context, s *session.Session, lines <-chan string) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return session.ErrQuit
			}
			log.Debug("\t> ", line)
			err := s.Execute(line)
			if errors.Is(err, session.ErrQuit) {
				return err
			}
			if err != nil {
				log.Debug("command: ", err)
				fmt.Println(err)
			}
		}
	}
}
