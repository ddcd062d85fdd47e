//go:build ebiten

package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/fatcat/internal/game"
	"github.com/tomz197/fatcat/internal/object"
)

var (
	background  = color.RGBA{0x11, 0x11, 0x11, 0xff}
	mouseColor  = color.RGBA{0xbb, 0xbb, 0xbb, 0xff}
	catColor    = color.RGBA{0xff, 0x88, 0x00, 0xff}
	cheeseColor = color.RGBA{0xff, 0xdd, 0x00, 0xff}
	eyeColor    = color.Black
)

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	c *Controller
}

// New wraps the controller for ebiten.RunGame.
func New(c *Controller) *Game {
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	return &Game{c: c}
}

// Update handles input and advances the session by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.c.Restart()
	}
	x, y := ebiten.CursorPosition()
	g.c.Pointer(float64(x), float64(y))
	g.c.Step()
	return nil
}

// Draw renders the entities and the visible screen overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	c := g.c
	w, h := int(c.bounds.Width), int(c.bounds.Height)

	switch {
	case c.screens[game.ScreenGame]:
		if c.pickupOn {
			s := float32(c.cfg.PickupSize)
			vector.DrawFilledRect(screen, float32(c.pickupPos.X), float32(c.pickupPos.Y), s, s, cheeseColor, false)
		}
		g.drawSprite(screen, object.EntityPlayer, c.cfg.PlayerSize, mouseColor)
		g.drawSprite(screen, object.EntityPursuer, c.cfg.PursuerSize, catColor)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", c.score), 16, 16)
	case c.screens[game.ScreenEnd]:
		centered(screen, w, h/2-20, "CAUGHT BY THE FATCAT")
		centered(screen, w, h/2, fmt.Sprintf("Final score: %d", c.finalScore))
		centered(screen, w, h/2+20, "Press SPACE to Restart")
	default:
		centered(screen, w, h/2-10, "F A T C A T")
		centered(screen, w, h/2+10, "Press SPACE to Start")
	}
}

func (g *Game) drawSprite(screen *ebiten.Image, id object.EntityID, size float64, body color.Color) {
	p := g.c.poses[id]
	if !p.placed {
		return
	}
	s := float32(size)
	x, y := float32(p.pos.X), float32(p.pos.Y)
	vector.DrawFilledRect(screen, x, y, s, s, body, false)

	eye := s / 6
	ex := x + s - 2*eye
	if p.facing == object.FacingLeft {
		ex = x + eye
	}
	vector.DrawFilledRect(screen, ex, y+eye, eye, eye, eyeColor, false)
}

// centered prints s horizontally centered using the debug font's 6px glyphs.
func centered(screen *ebiten.Image, width, y int, s string) {
	ebitenutil.DebugPrintAt(screen, s, (width-6*len(s))/2, y)
}

// Layout tracks the window size so the viewport follows resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.c.Layout(outsideWidth, outsideHeight)
}
