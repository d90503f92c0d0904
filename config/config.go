// Package config loads the trainer settings from a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvFirstBoard = "BRIDGE_FIRST_BOARD"
	EnvSeed       = "BRIDGE_SEED"
	EnvLogLevel   = "BRIDGE_LOG_LEVEL"
	EnvColor      = "BRIDGE_COLOR"
	EnvNoColor    = "NO_COLOR"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	// FirstBoard is the number of the first board dealt; it fixes dealer and vulnerability.
	FirstBoard int
	// Seed makes deals reproducible when non-empty.
	Seed     string
	LogLevel slog.Level
	Color    bool
}

func Default() Config {
	return Config{
		FirstBoard: 1,
		LogLevel:   slog.LevelInfo,
		Color:      true,
	}
}

// Load reads the given .env files (".env" when none is given) into the
// process environment, then builds the configuration from it. Missing files
// are skipped; variables already set in the environment win over the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds the configuration from the process environment only.
func FromEnv() (Config, error) {
	c := Default()

	if v := getenv(EnvFirstBoard); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q is not a number", ErrInvalid, EnvFirstBoard, v)
		}
		c.FirstBoard = n
	}

	c.Seed = getenv(EnvSeed)

	if v := getenv(EnvLogLevel); v != "" {
		if err := c.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalid, EnvLogLevel, v)
		}
	}

	if os.Getenv(EnvNoColor) != "" {
		c.Color = false
	}
	if v := getenv(EnvColor); v != "" {
		b, err := asBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalid, EnvColor, v)
		}
		c.Color = c.Color && b
	}

	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if c.FirstBoard < 1 {
		return fmt.Errorf("%w: first board must be >= 1, got %d", ErrInvalid, c.FirstBoard)
	}
	switch c.LogLevel {
	case slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError:
	default:
		return fmt.Errorf("%w: unsupported log level %s", ErrInvalid, c.LogLevel)
	}
	return nil
}

func getenv(k string) string {
	return strings.TrimSpace(os.Getenv(k))
}

func asBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y", "on":
		return true, nil
	case "0", "false", "no", "n", "off":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", s)
}
