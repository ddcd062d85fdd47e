// Package config provides shared configuration utilities.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrInvalid is returned when an environment variable cannot be parsed.
var ErrInvalid = errors.New("invalid config value")

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetFloat parses the variable as a float64, returning fallback if unset.
func GetFloat(key string, fallback float64) (float64, error) {
	raw, ok := lookup(key)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, raw, err)
	}
	return v, nil
}

// GetInt parses the variable as an int, returning fallback if unset.
func GetInt(key string, fallback int) (int, error) {
	raw, ok := lookup(key)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, raw, err)
	}
	return v, nil
}

// GetUint parses the variable as a uint64, returning fallback if unset.
func GetUint(key string, fallback uint64) (uint64, error) {
	raw, ok := lookup(key)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, raw, err)
	}
	return v, nil
}

// GetBool parses the variable as a bool, returning fallback if unset.
func GetBool(key string, fallback bool) (bool, error) {
	raw, ok := lookup(key)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, raw, err)
	}
	return v, nil
}

// LoadDotEnv reads KEY=VALUE pairs from the given files into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	return v, true
}
