package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvFile  = "BOOKRANGE_FILE"
	EnvDebug = "BOOKRANGE_DEBUG"
)

// Config holds defaults for command flags.
type Config struct {
	File  string // default bookings file for --file
	Debug bool
}

// Load reads an optional .env file from dir into the process environment
// and builds the Config from it. Variables already set in the environment
// take precedence over the .env file.
func Load(dir string) (Config, error) {
	err := godotenv.Load(filepath.Join(dir, ".env"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	cfg := Config{File: os.Getenv(EnvFile)}
	if v := os.Getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s value %q: %w", EnvDebug, v, err)
		}
		cfg.Debug = debug
	}
	return cfg, nil
}
