//go:build ebiten

package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/fatcat/internal/audio"
	"github.com/tomz197/fatcat/internal/config"
	"github.com/tomz197/fatcat/internal/desktop"
	"github.com/tomz197/fatcat/internal/game"
)

const defaultVolume = 0.6

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal("failed to load .env", "error", err)
	}
	cfg, err := config.LoadGame()
	if err != nil {
		log.Fatal("invalid configuration", "error", err)
	}
	logger := config.NewLogger(os.Stderr, cfg.LogLevel, "desktop")

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

	c, err := desktop.NewController(cfg.Config, sound, logger)
	if err != nil {
		logger.Fatal("failed to create game", "error", err)
	}

	ebiten.SetWindowTitle("fatcat")
	ebiten.SetWindowSize(desktop.DefaultWidth, desktop.DefaultHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(desktop.New(c)); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game error", "error", err)
	}
}
