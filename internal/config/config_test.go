package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tomz197/fatcat/internal/game"
)

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("FATCAT_TEST_KEY", "value")
	if got := GetEnv("FATCAT_TEST_KEY", "fallback"); got != "value" {
		t.Fatalf("got %q, want value", got)
	}
	if got := GetEnv("FATCAT_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("got %q, want fallback", got)
	}
}

func TestLoadGameDefaults(t *testing.T) {
	t.Setenv(EnvSeed, "9")
	cfg, err := LoadGame()
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	want := game.DefaultConfig()
	want.Seed = 9
	if cfg.Config != want {
		t.Fatalf("config = %+v, want %+v", cfg.Config, want)
	}
	if cfg.Mute {
		t.Fatalf("mute should default to false")
	}
}

func TestLoadGameOverrides(t *testing.T) {
	t.Setenv(EnvPlayerSize, "50")
	t.Setenv(EnvPursuerSize, "200")
	t.Setenv(EnvBaseSpeed, "3.5")
	t.Setenv(EnvScoreSpeedDivisor, "250")
	t.Setenv(EnvRestartWhileRunning, "true")
	t.Setenv(EnvMute, "1")

	cfg, err := LoadGame()
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if cfg.PlayerSize != 50 || cfg.PursuerSize != 200 || cfg.BaseSpeed != 3.5 || cfg.ScoreSpeedDivisor != 250 {
		t.Fatalf("overrides not applied: %+v", cfg.Config)
	}
	if !cfg.RestartWhileRunning || !cfg.Mute {
		t.Fatalf("bool overrides not applied: %+v", cfg)
	}
	if cfg.Seed == 0 {
		t.Fatalf("seed should be picked when unset")
	}
}

func TestLoadGameReportsAllErrors(t *testing.T) {
	t.Setenv(EnvPlayerSize, "big")
	t.Setenv(EnvPickupReward, "lots")

	_, err := LoadGame()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestLoadGameValidates(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"negative pickup", EnvPickupSize, "-1"},
		{"NaN base speed", EnvBaseSpeed, "NaN"},
		{"infinite player size", EnvPlayerSize, "Inf"},
		{"infinite increment", EnvSpeedIncrement, "-Inf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadGame(); !errors.Is(err, game.ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("FATCAT_DOTENV_PROBE=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("FATCAT_DOTENV_PROBE") })

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("FATCAT_DOTENV_PROBE"); got != "from-file" {
		t.Fatalf("got %q, want from-file", got)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "warn", "test")
	l.Info("hidden")
	l.Warn("shown")
	if s := buf.String(); strings.Contains(s, "hidden") || !strings.Contains(s, "shown") {
		t.Fatalf("output = %q", s)
	}
	if NewLogger(&buf, "nonsense", "").GetLevel() != log.InfoLevel {
		t.Fatalf("unknown level should default to info")
	}
}
