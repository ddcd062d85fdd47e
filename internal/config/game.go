package config

import (
	"errors"
	"time"

	"github.com/tomz197/fatcat/internal/game"
)

// Environment variables recognized by LoadGame.
const (
	EnvPlayerSize          = "FATCAT_PLAYER_SIZE"
	EnvPursuerSize         = "FATCAT_PURSUER_SIZE"
	EnvPickupSize          = "FATCAT_PICKUP_SIZE"
	EnvBaseSpeed           = "FATCAT_BASE_SPEED"
	EnvSpeedIncrement      = "FATCAT_SPEED_INCREMENT"
	EnvScoreSpeedDivisor   = "FATCAT_SCORE_SPEED_DIVISOR"
	EnvPickupReward        = "FATCAT_PICKUP_REWARD"
	EnvRestartWhileRunning = "FATCAT_RESTART_WHILE_RUNNING"
	EnvSeed                = "FATCAT_SEED"
	EnvMute                = "FATCAT_MUTE"
	EnvLogLevel            = "FATCAT_LOG_LEVEL"
)

// Game is the game tuning plus host-level switches.
type Game struct {
	game.Config
	Mute     bool
	LogLevel string
}

// LoadGame builds the game configuration from defaults overridden by the
// environment. An unset or zero FATCAT_SEED picks a time-based seed.
// All parse errors are reported together.
func LoadGame() (Game, error) {
	cfg := game.DefaultConfig()
	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	var err error
	cfg.PlayerSize, err = GetFloat(EnvPlayerSize, cfg.PlayerSize)
	collect(err)
	cfg.PursuerSize, err = GetFloat(EnvPursuerSize, cfg.PursuerSize)
	collect(err)
	cfg.PickupSize, err = GetFloat(EnvPickupSize, cfg.PickupSize)
	collect(err)
	cfg.BaseSpeed, err = GetFloat(EnvBaseSpeed, cfg.BaseSpeed)
	collect(err)
	cfg.SpeedIncrement, err = GetFloat(EnvSpeedIncrement, cfg.SpeedIncrement)
	collect(err)
	cfg.ScoreSpeedDivisor, err = GetInt(EnvScoreSpeedDivisor, cfg.ScoreSpeedDivisor)
	collect(err)
	cfg.PickupReward, err = GetInt(EnvPickupReward, cfg.PickupReward)
	collect(err)
	cfg.RestartWhileRunning, err = GetBool(EnvRestartWhileRunning, cfg.RestartWhileRunning)
	collect(err)
	cfg.Seed, err = GetUint(EnvSeed, 0)
	collect(err)
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	mute, err := GetBool(EnvMute, false)
	collect(err)

	collect(cfg.Validate())
	if len(errs) > 0 {
		return Game{}, errors.Join(errs...)
	}
	return Game{
		Config:   cfg,
		Mute:     mute,
		LogLevel: GetEnv(EnvLogLevel, "info"),
	}, nil
}
