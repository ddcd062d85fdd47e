// Package desktop hosts the game in a native window through ebiten. The
// window glue needs the ebiten build tag; the controller that owns the
// session builds everywhere.
package desktop

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/fatcat/internal/game"
	"github.com/tomz197/fatcat/internal/object"
	"github.com/tomz197/fatcat/internal/physics"
)

// DefaultWidth and DefaultHeight size the window on launch.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

type pose struct {
	pos    physics.Vector2
	facing object.Facing
	placed bool
}

// Controller owns one session and the presentation state ebiten draws from.
// Ebiten calls Update, Draw and Layout on one goroutine, which is the only
// goroutine that touches the session.
type Controller struct {
	cfg     game.Config
	session *game.Session
	driver  *game.Driver
	frames  game.FrameQueue

	bounds     physics.Bounds
	poses      [3]pose
	pickupOn   bool
	pickupPos  physics.Vector2
	score      int
	finalScore int
	screens    map[game.ScreenName]bool

	lastX, lastY float64
}

var (
	_ game.Renderer = (*Controller)(nil)
	_ game.Display  = (*Controller)(nil)
	_ game.Screens  = (*Controller)(nil)
	_ game.Viewport = (*Controller)(nil)
)

// NewController creates a session on a DefaultWidth×DefaultHeight viewport
// showing the title screen. Nil audio plays silently; a nil logger discards.
func NewController(cfg game.Config, audio game.Audio, logger *log.Logger) (*Controller, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Controller{
		cfg:     cfg,
		bounds:  physics.Bounds{Width: DefaultWidth, Height: DefaultHeight},
		screens: make(map[game.ScreenName]bool),
	}
	s, err := game.NewSession(cfg, game.Collaborators{
		Renderer: c,
		Audio:    audio,
		Display:  c,
		Screens:  c,
		Viewport: c,
	}, game.SessionOptions{Logger: logger})
	if err != nil {
		return nil, err
	}
	c.session = s
	c.driver = game.NewDriver(&c.frames, s)
	s.ShowTitle()
	return c, nil
}

// Pointer forwards the cursor position when it moved since the last frame.
func (c *Controller) Pointer(x, y float64) {
	if x == c.lastX && y == c.lastY {
		return
	}
	c.lastX, c.lastY = x, y
	c.session.OnPointerMove(x, y)
}

// Restart handles the start key.
func (c *Controller) Restart() { c.driver.Restart() }

// Layout applies the window size and reports the logical screen size.
func (c *Controller) Layout(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		return int(c.bounds.Width), int(c.bounds.Height)
	}
	b := physics.Bounds{Width: float64(width), Height: float64(height)}
	if b != c.bounds {
		c.bounds = b
		c.session.Resize()
	}
	return width, height
}

// Step runs the tick scheduled for this frame, if any.
func (c *Controller) Step() { c.frames.Advance() }

// Session exposes the underlying session for inspection.
func (c *Controller) Session() *game.Session { return c.session }

func (c *Controller) PlaceEntity(id object.EntityID, pos physics.Vector2, facing object.Facing) {
	if int(id) < 0 || int(id) >= len(c.poses) {
		return
	}
	c.poses[id] = pose{pos: pos, facing: facing, placed: true}
}

func (c *Controller) ShowPickup(pos physics.Vector2) {
	c.pickupOn = true
	c.pickupPos = pos
}

func (c *Controller) HidePickup() { c.pickupOn = false }

func (c *Controller) SetScore(value int)      { c.score = value }
func (c *Controller) SetFinalScore(value int) { c.finalScore = value }

func (c *Controller) Show(name game.ScreenName) { c.screens[name] = true }
func (c *Controller) Hide(name game.ScreenName) { c.screens[name] = false }

func (c *Controller) Bounds() physics.Bounds { return c.bounds }
