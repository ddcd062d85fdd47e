package loop

import (
	"fmt"

	"github.com/tomz197/fatcat/internal/draw"
	"github.com/tomz197/fatcat/internal/game"
	"github.com/tomz197/fatcat/internal/object"
)

// drawUI draws whichever screens the session has made visible.
func drawUI(v *view, cw *draw.ChunkWriter, cols, rows int, idleWarning bool) {
	centerY := rows / 2

	switch {
	case v.screens[game.ScreenEnd]:
		drawEndScreen(v, cw, cols, centerY)
	case v.screens[game.ScreenGame]:
		drawPlayingHUD(v, cw)
	default:
		drawStartScreen(cw, cols, centerY)
	}

	if idleWarning {
		cw.WriteCentered(cols, rows, "Idle - move or press a key to stay connected")
	}
}

// drawStartScreen draws the title screen.
func drawStartScreen(cw *draw.ChunkWriter, cols, centerY int) {
	cw.WriteCentered(cols, centerY-2, "F A T C A T")
	cw.WriteCentered(cols, centerY, "Grab the cheese. Don't get caught.")
	cw.WriteCentered(cols, centerY+2, "Press SPACE to Start")
	cw.WriteCentered(cols, centerY+4, "Controls: move the mouse pointer, Q to quit")
}

// drawPlayingHUD draws the in-game score.
func drawPlayingHUD(v *view, cw *draw.ChunkWriter) {
	cw.WriteAt(2, 1, fmt.Sprintf("Score: %d", v.score))
}

// drawEndScreen draws the game over screen.
func drawEndScreen(v *view, cw *draw.ChunkWriter, cols, centerY int) {
	cw.WriteCentered(cols, centerY-2, "CAUGHT BY THE FATCAT")
	cw.WriteCentered(cols, centerY, fmt.Sprintf("Final score: %d", v.finalScore))
	cw.WriteCentered(cols, centerY+2, "Press SPACE to Restart")
}

// drawEntities paints the pickup, pursuer and player onto the canvas.
func drawEntities(v *view, canvas *draw.Canvas, cfg game.Config) {
	if !v.screens[game.ScreenGame] {
		return
	}
	if v.pickupOn {
		canvas.FillRect(v.pickupPos.X, v.pickupPos.Y, cfg.PickupSize, cfg.PickupSize, draw.ColorCheese)
	}
	if p := v.poses[object.EntityPursuer]; p.placed {
		drawSprite(canvas, p, cfg.PursuerSize, draw.ColorCat)
	}
	if p := v.poses[object.EntityPlayer]; p.placed {
		drawSprite(canvas, p, cfg.PlayerSize, draw.ColorMouse)
	}
}

// drawSprite fills the body and marks an eye on the side the sprite faces.
func drawSprite(canvas *draw.Canvas, p pose, size float64, col draw.Color) {
	canvas.FillRect(p.pos.X, p.pos.Y, size, size, col)
	eye := size / 5
	x := p.pos.X + size - 2*eye
	if p.facing == object.FacingLeft {
		x = p.pos.X + eye
	}
	canvas.FillRect(x, p.pos.Y+eye, eye, eye, draw.ColorEye)
}
