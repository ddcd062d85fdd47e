package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/tomz197/fatcat/internal/game"
	"github.com/tomz197/fatcat/internal/physics"
)

//go:embed static
var staticFiles embed.FS

// Connection tuning
const (
	frameInterval = time.Second / 60
	readLimit     = 1 << 16
	pongWait      = 60 * time.Second
	pingPeriod    = 25 * time.Second
	writeWait     = 10 * time.Second
	inboxSize     = 64
)

// DefaultBounds is the viewport used until the page reports its canvas size.
var DefaultBounds = physics.Bounds{Width: 800, Height: 600}

// Server serves the game page and runs one session per websocket.
type Server struct {
	cfg      game.Config
	logger   *log.Logger
	upgrader websocket.Upgrader
	mux      *http.ServeMux
}

// NewServer builds the HTTP handler. A nil logger discards.
func NewServer(cfg game.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{
		cfg:    cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			// The page is served from this host; other origins are rejected
			// by the default same-origin check.
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		mux: http.NewServeMux(),
	}

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	s.mux.Handle("/", http.FileServer(http.FS(static)))
	s.mux.HandleFunc("/ws", s.handleWS)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	logger := s.logger.With("remote", r.RemoteAddr)
	logger.Info("client connected")
	if err := s.play(r.Context(), conn, logger); err != nil {
		logger.Info("client disconnected", "error", err)
		return
	}
	logger.Info("client disconnected")
}

// play runs a session for one connection. Every session call happens on this
// goroutine; the reader only decodes and forwards.
func (s *Server) play(ctx context.Context, conn *websocket.Conn, logger *log.Logger) error {
	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	v := newView(s.cfg, DefaultBounds)
	session, err := game.NewSession(s.cfg, game.Collaborators{
		Renderer: v,
		Audio:    v,
		Display:  v,
		Screens:  v,
		Viewport: v,
	}, game.SessionOptions{Logger: logger})
	if err != nil {
		return err
	}
	var frames game.FrameQueue
	driver := game.NewDriver(&frames, session)
	session.ShowTitle()

	done := make(chan struct{})
	defer close(done)
	cmds := make(chan command, inboxSize)
	readErr := make(chan error, 1)
	go readLoop(conn, cmds, readErr, done, logger)

	frameTicker := time.NewTicker(frameInterval)
	defer frameTicker.Stop()
	pingTicker := time.NewTicker(pingPeriod)
	defer pingTicker.Stop()

	var last []byte
	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(writeWait))
			return nil

		case err := <-readErr:
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err

		case cmd := <-cmds:
			apply(cmd, session, driver, v)

		case <-frameTicker.C:
			frames.Advance()
			b, err := Encode(TypeFrame, v.frame())
			if err != nil {
				return err
			}
			if bytes.Equal(b, last) {
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
				return err
			}
			last = b

		case <-pingTicker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		}
	}
}

func readLoop(conn *websocket.Conn, cmds chan<- command, readErr chan<- error, done <-chan struct{}, logger *log.Logger) {
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			readErr <- err
			return
		}
		cmd, err := decodeCommand(msg)
		if err != nil {
			if errors.Is(err, ErrUnknownMessage) {
				logger.Debug("ignoring message", "error", err)
			} else {
				logger.Warn("bad message", "error", err)
			}
			continue
		}
		select {
		case cmds <- cmd:
		case <-done:
			return
		}
	}
}

func apply(cmd command, session *game.Session, driver *game.Driver, v *view) {
	switch cmd.kind {
	case TypePointer:
		session.OnPointerMove(cmd.pointer.X, cmd.pointer.Y)
	case TypeKey:
		if cmd.key.Code == "Space" || cmd.key.Code == "Enter" {
			driver.Restart()
		}
	case TypeResize:
		if cmd.resize.Width <= 0 || cmd.resize.Height <= 0 {
			return
		}
		b := physics.Bounds{Width: cmd.resize.Width, Height: cmd.resize.Height}
		if b != v.bounds {
			v.bounds = b
			session.Resize()
		}
	}
}
