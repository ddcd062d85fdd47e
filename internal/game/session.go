// Package game implements the chase game's session state machine: pursuit,
// collision, scoring and pickup spawning, driven one tick at a time.
package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/fatcat/internal/object"
	"github.com/tomz197/fatcat/internal/physics"
)

// State is the session phase.
type State int

const (
	StateIdle    State = iota // Not started yet
	StateRunning              // Active gameplay
	StateEnded                // Caught by the pursuer
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Step tells the frame driver whether to schedule another tick.
type Step int

const (
	StepHalt Step = iota
	StepContinue
)

// SessionOptions configures optional session dependencies.
type SessionOptions struct {
	Logger *log.Logger  // Defaults to a discarding logger
	RNG    *physics.RNG // Defaults to an RNG seeded from Config.Seed
}

// Session owns all mutable game state. It is not safe for concurrent use:
// hosts must serialize pointer samples, ticks and restarts onto one goroutine.
type Session struct {
	cfg    Config
	curve  object.SpeedCurve
	c      Collaborators
	logger *log.Logger

	rng     *physics.RNG
	spawner *object.PickupSpawner
	bounds  physics.Bounds

	state   State
	score   int
	ticks   uint64
	player  *object.Player
	pursuer *object.Pursuer
	pickup  object.Pickup
}

// NewSession validates cfg and creates an idle session.
func NewSession(cfg Config, c Collaborators, opts SessionOptions) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := opts.RNG
	if rng == nil {
		rng = physics.NewRNG(cfg.Seed)
	}
	c = c.withDefaults()

	return &Session{
		cfg:     cfg,
		curve:   cfg.SpeedCurve(),
		c:       c,
		logger:  logger,
		rng:     rng,
		spawner: object.NewPickupSpawner(cfg.PickupSize, rng),
		bounds:  c.Viewport.Bounds(),
		state:   StateIdle,
		player:  object.NewPlayer(cfg.PlayerSize),
		pursuer: object.NewPursuer(cfg.PursuerSize),
		pickup: object.Pickup{Entity: object.Entity{
			Width:  cfg.PickupSize,
			Height: cfg.PickupSize,
		}},
	}, nil
}

// ShowTitle presents the start screen of an idle session.
func (s *Session) ShowTitle() {
	s.c.Screens.Hide(ScreenGame)
	s.c.Screens.Hide(ScreenEnd)
	s.c.Screens.Show(ScreenStart)
}

// Start begins a fresh run from any state.
func (s *Session) Start() {
	s.bounds = s.c.Viewport.Bounds()
	s.score = 0
	s.ticks = 0

	s.player.Reset(physics.Vector2{X: s.bounds.Width / 2, Y: s.bounds.Height / 2})
	s.pursuer.Position = physics.Vector2{
		X: s.rng.Float64() * s.bounds.Width,
		Y: s.rng.Float64() * s.bounds.Height,
	}
	s.pursuer.Facing = object.FacingRight

	s.deactivatePickup()
	s.state = StateRunning
	s.spawnPickup()

	s.c.Screens.Hide(ScreenStart)
	s.c.Screens.Hide(ScreenEnd)
	s.c.Screens.Show(ScreenGame)
	s.c.Audio.PlayLoop(TrackSoundtrack)
	s.c.Audio.PlayOnce(CueStart)
	s.c.Display.SetScore(0)
	s.placeEntities()

	s.logger.Info("session started", "width", s.bounds.Width, "height", s.bounds.Height)
}

// RequestRestart handles the player's start/restart input. It starts a new
// run from Idle or Ended; while Running it is ignored unless
// Config.RestartWhileRunning is set. It reports whether a run was started.
func (s *Session) RequestRestart() bool {
	if s.state == StateRunning && !s.cfg.RestartWhileRunning {
		return false
	}
	s.Start()
	return true
}

// OnPointerMove moves the player so the pointer sits at its center.
// Ignored unless Running.
func (s *Session) OnPointerMove(x, y float64) {
	if s.state != StateRunning {
		return
	}
	s.player.FollowPointer(x, y)
}

// Attach subscribes the session to a pointer source.
func (s *Session) Attach(src PointerSource) {
	src.OnMove(s.OnPointerMove)
}

// Tick advances one frame: the pursuer steps toward the player, then the
// pickup and pursuer collisions are checked. Returns StepHalt when the
// session is not running or has just ended.
func (s *Session) Tick() Step {
	if s.state != StateRunning {
		return StepHalt
	}
	s.ticks++

	s.pursuer.Chase(s.player.Entity, s.score, s.curve)
	s.collectPickup()
	if s.caught() {
		s.end()
		return StepHalt
	}

	s.placeEntities()
	return StepContinue
}

// Resize re-reads the viewport and pulls every entity back inside it.
// The session state is left untouched.
func (s *Session) Resize() {
	s.bounds = s.c.Viewport.Bounds()
	s.player.ClampTo(s.bounds)
	s.pursuer.ClampTo(s.bounds)
	if s.pickup.Active {
		s.pickup.ClampTo(s.bounds)
		s.c.Renderer.ShowPickup(s.pickup.Position)
	}
	s.logger.Debug("viewport resized", "width", s.bounds.Width, "height", s.bounds.Height)
}

// end is reached only from Tick when the pursuer touches the player.
func (s *Session) end() {
	s.state = StateEnded
	s.c.Audio.Stop(TrackSoundtrack)
	s.c.Audio.PlayOnce(CueLose)
	s.c.Display.SetFinalScore(s.score)
	s.c.Screens.Hide(ScreenGame)
	s.c.Screens.Show(ScreenEnd)

	s.logger.Info("session ended", "score", s.score, "ticks", s.ticks)
}

func (s *Session) spawnPickup() {
	s.pickup = s.spawner.Spawn(s.c.Viewport.Bounds())
	s.c.Renderer.ShowPickup(s.pickup.Position)
}

func (s *Session) deactivatePickup() {
	s.pickup.Active = false
	s.c.Renderer.HidePickup()
}

func (s *Session) placeEntities() {
	s.c.Renderer.PlaceEntity(object.EntityPlayer, s.player.Position, s.player.Facing)
	s.c.Renderer.PlaceEntity(object.EntityPursuer, s.pursuer.Position, s.pursuer.Facing)
	if s.pickup.Active {
		s.c.Renderer.PlaceEntity(object.EntityPickup, s.pickup.Position, object.FacingRight)
	}
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// Snapshot is a read-only copy of the session for hosts and tests.
type Snapshot struct {
	State         State
	Score         int
	Ticks         uint64
	Speed         float64
	Bounds        physics.Bounds
	Player        object.Entity
	PlayerFacing  object.Facing
	Pursuer       object.Entity
	PursuerFacing object.Facing
	Pickup        object.Pickup
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:         s.state,
		Score:         s.score,
		Ticks:         s.ticks,
		Speed:         s.curve.At(s.score),
		Bounds:        s.bounds,
		Player:        s.player.Entity,
		PlayerFacing:  s.player.Facing,
		Pursuer:       s.pursuer.Entity,
		PursuerFacing: s.pursuer.Facing,
		Pickup:        s.pickup,
	}
}
