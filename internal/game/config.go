package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomz197/fatcat/internal/object"
)

// ErrInvalidConfig is returned when a Config cannot drive a session.
var ErrInvalidConfig = errors.New("invalid game config")

// Default tuning, matching the browser version of the game.
const (
	DefaultPlayerSize        = 80
	DefaultPursuerSize       = 120
	DefaultPickupSize        = 60
	DefaultBaseSpeed         = 2.0
	DefaultSpeedIncrement    = 0.5
	DefaultScoreSpeedDivisor = 500
	DefaultPickupReward      = 100
)

// Config holds the tunable parameters of a session.
type Config struct {
	PlayerSize  float64 // Player square side, viewport units
	PursuerSize float64 // Pursuer square side
	PickupSize  float64 // Pickup square side

	BaseSpeed         float64 // Pursuer units per tick at score 0
	SpeedIncrement    float64 // Extra speed per ScoreSpeedDivisor points
	ScoreSpeedDivisor int
	PickupReward      int // Score per pickup

	// RestartWhileRunning lets a restart request reset a running session.
	// Off by default: restart is only honored from Idle or Ended.
	RestartWhileRunning bool

	Seed uint64 // RNG seed for spawn and pursuer placement
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		PlayerSize:        DefaultPlayerSize,
		PursuerSize:       DefaultPursuerSize,
		PickupSize:        DefaultPickupSize,
		BaseSpeed:         DefaultBaseSpeed,
		SpeedIncrement:    DefaultSpeedIncrement,
		ScoreSpeedDivisor: DefaultScoreSpeedDivisor,
		PickupReward:      DefaultPickupReward,
	}
}

// Validate reports the first parameter that cannot drive a session.
func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"player size", c.PlayerSize},
		{"pursuer size", c.PursuerSize},
		{"pickup size", c.PickupSize},
		{"base speed", c.BaseSpeed},
		{"speed increment", c.SpeedIncrement},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s %v is not finite", ErrInvalidConfig, f.name, f.v)
		}
	}

	switch {
	case c.PlayerSize <= 0:
		return fmt.Errorf("%w: player size %v must be positive", ErrInvalidConfig, c.PlayerSize)
	case c.PursuerSize <= 0:
		return fmt.Errorf("%w: pursuer size %v must be positive", ErrInvalidConfig, c.PursuerSize)
	case c.PickupSize <= 0:
		return fmt.Errorf("%w: pickup size %v must be positive", ErrInvalidConfig, c.PickupSize)
	case c.BaseSpeed < 0:
		return fmt.Errorf("%w: base speed %v is negative", ErrInvalidConfig, c.BaseSpeed)
	case c.SpeedIncrement < 0:
		return fmt.Errorf("%w: speed increment %v is negative", ErrInvalidConfig, c.SpeedIncrement)
	case c.ScoreSpeedDivisor <= 0:
		return fmt.Errorf("%w: score speed divisor %d must be positive", ErrInvalidConfig, c.ScoreSpeedDivisor)
	case c.PickupReward < 0:
		return fmt.Errorf("%w: pickup reward %d is negative", ErrInvalidConfig, c.PickupReward)
	}
	return nil
}

// SpeedCurve returns the pursuer speed curve described by c.
func (c Config) SpeedCurve() object.SpeedCurve {
	return object.SpeedCurve{
		Base:      c.BaseSpeed,
		Increment: c.SpeedIncrement,
		Divisor:   c.ScoreSpeedDivisor,
	}
}
