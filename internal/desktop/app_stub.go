//go:build !ebiten

package desktop

import "fmt"

// Game stands in for the window adapter when ebiten is not compiled in.
// The Controller still works, so headless tools and tests can drive a
// session without a display.
type Game struct{}

// New panics: opening a window needs a build with -tags ebiten.
func New(*Controller) *Game {
	panic("desktop: no window support, rebuild with -tags ebiten")
}

// Update fails every frame; there is no window to run in.
func (g *Game) Update() error {
	return fmt.Errorf("desktop: no window support, rebuild with -tags ebiten")
}

// Draw does nothing without a window.
func (g *Game) Draw(any) {}

// Layout has no window to size.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
