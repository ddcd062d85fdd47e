package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/fatcat/internal/audio"
	"github.com/tomz197/fatcat/internal/config"
	"github.com/tomz197/fatcat/internal/game"
	"github.com/tomz197/fatcat/internal/loop"
)

const defaultVolume = 0.6

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.LoadGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// The terminal is the screen, so logs only go to a file when asked for.
	logOut := io.Discard
	if path := config.GetEnv("FATCAT_LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, cfg.LogLevel, "fatcat")

	var sound game.Audio = game.NopAudio{}
	if !cfg.Mute {
		player := audio.NewPlayer()
		if err := player.Initialize(defaultVolume); err != nil {
			logger.Warn("audio unavailable, playing silently", "error", err)
		} else {
			defer player.Close()
			sound = player
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	err = loop.Run(ctx, reader, os.Stdout, loop.Options{
		Config: cfg.Config,
		Audio:  sound,
		Logger: logger,
	})
	if err != nil {
		logger.Error("game error", "error", err)
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("exited")
}
