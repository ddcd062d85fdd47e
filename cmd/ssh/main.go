package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/fatcat/internal/config"
	"github.com/tomz197/fatcat/internal/draw"
	"github.com/tomz197/fatcat/internal/game"
	"github.com/tomz197/fatcat/internal/loop"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal("failed to load .env", "error", err)
	}
	cfg, err := config.LoadGame()
	if err != nil {
		log.Fatal("invalid configuration", "error", err)
	}
	logger := config.NewLogger(os.Stderr, cfg.LogLevel, "ssh")

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "error", workErr)
	}
	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath, "workingDir", workingDir)

	// Sessions end when the server shuts down.
	gameCtx, cancelGames := context.WithCancel(context.Background())
	defer cancelGames()
	games := &sessionGroup{}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gameMiddleware(gameCtx, games, cfg.Config, logger),
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.DebugLevel),
		),
		// Set TCP_NODELAY to reduce latency for pointer input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting SSH server", "host", host, "port", port)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "error", err)
		}
	}()

	<-done
	logger.Info("Shutting down server...")

	cancelGames()
	games.closeAndWait()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "error", err)
	}
}

// gameMiddleware runs an independent game for every SSH session.
func gameMiddleware(parent context.Context, games *sessionGroup, cfg game.Config, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}
			if !games.enter() {
				fmt.Fprintln(sess, "Server is shutting down. Please try again later.")
				return
			}
			defer games.leave()

			sessLogger := logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
			sessLogger.Info("New game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

			// Create a terminal size tracker that updates on window changes
			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

			// Listen for window size changes in a goroutine
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			ctx, cancel := context.WithCancel(parent)
			defer cancel()
			go func() {
				select {
				case <-sess.Context().Done():
					cancel()
				case <-ctx.Done():
				}
			}()

			// Every player gets a fresh seed so sessions don't mirror each other.
			playerCfg := cfg
			playerCfg.Seed = cfg.Seed ^ uint64(time.Now().UnixNano())

			err := loop.Run(ctx, bufio.NewReader(sess), sess, loop.Options{
				Config:       playerCfg,
				TermSizeFunc: sizeTracker.getSize,
				Logger:       sessLogger,
				IdleTimeout:  true,
			})
			if err != nil {
				sessLogger.Error("Game error", "error", err)
			}

			sessLogger.Info("Session ended")
			next(sess)
		}
	}
}

// sessionGroup counts running games and refuses new ones once closed.
type sessionGroup struct {
	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// enter registers a game. It returns false after closeAndWait has begun.
func (g *sessionGroup) enter() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return false
	}
	g.wg.Add(1)
	return true
}

func (g *sessionGroup) leave() { g.wg.Done() }

// closeAndWait stops admitting games and waits for running ones to finish.
func (g *sessionGroup) closeAndWait() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()
	g.wg.Wait()
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
