// Package loop runs the game in an ANSI terminal: pointer input from xterm
// mouse reports, half-block rendering, and a fixed frame rate.
package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/fatcat/internal/draw"
	"github.com/tomz197/fatcat/internal/game"
	"github.com/tomz197/fatcat/internal/input"
)

// Options configures a terminal game.
type Options struct {
	Config       game.Config
	Audio        game.Audio        // Nil plays silently
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of os.Stdout
	Logger       *log.Logger       // Nil discards
	IdleTimeout  bool              // Warn and then quit after a long period without input
}

// Run starts the main game loop with the standard Input → Update → Draw cycle.
// It returns when the player quits, the reader ends, or ctx is cancelled.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cols, rows, err := draw.TerminalSizeRawWith(opts.TermSizeFunc)
	if err != nil {
		return err
	}

	v := newView(cols, rows)
	session, err := game.NewSession(opts.Config, game.Collaborators{
		Renderer: v,
		Audio:    opts.Audio,
		Display:  v,
		Screens:  v,
		Viewport: v,
	}, game.SessionOptions{Logger: logger})
	if err != nil {
		return err
	}

	var frames game.FrameQueue
	driver := game.NewDriver(&frames, session)
	pointer := &pointerBridge{}
	session.Attach(pointer)
	session.ShowTitle()

	canvas := newCanvas(cols, rows, v)
	cw := draw.NewChunkWriter(w)
	stream := input.StartStream(r)

	io.WriteString(w, input.EnableMouse)
	draw.HideCursor(w)
	defer func() {
		io.WriteString(w, input.DisableMouse)
		draw.ShowCursor(w)
		draw.ClearScreen(w)
	}()
	draw.ClearScreen(w)

	lastInput := time.Now()

	for {
		frameStart := time.Now()
		if ctx.Err() != nil {
			return nil
		}

		// ===== INPUT PHASE =====
		in := input.ReadInput(stream)
		if in.Quit {
			logger.Debug("player quit", "score", session.Score(), "state", session.State())
			return nil
		}
		if len(in.Pressed) > 0 {
			lastInput = frameStart
		}
		idle := frameStart.Sub(lastInput)
		if opts.IdleTimeout && idle > InactivityDisconnect {
			logger.Info("disconnecting idle player", "idle", idle)
			return nil
		}
		if in.Space || in.Enter {
			driver.Restart()
		}
		for _, m := range in.Moves {
			pointer.emit(canvas.TerminalToLogical(m.Col, m.Row))
		}

		// ===== UPDATE PHASE =====
		if nc, nr, err := draw.TerminalSizeRawWith(opts.TermSizeFunc); err == nil && v.resize(nc, nr) {
			cols, rows = nc, nr
			canvas = newCanvas(cols, rows, v)
			session.Resize()
		}
		frames.Advance()

		// ===== DRAW PHASE =====
		draw.ClearScreen(cw)
		canvas.Clear()
		drawEntities(v, canvas, opts.Config)
		canvas.Render(cw)
		drawUI(v, cw, cols, rows, opts.IdleTimeout && idle > InactivityWarn)
		if err := cw.Flush(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(targetFrameTime - elapsed):
			}
		}
	}
}

func newCanvas(cols, rows int, v *view) *draw.Canvas {
	b := v.Bounds()
	return draw.NewScaledCanvas(cols, rows, b.Width, b.Height)
}
