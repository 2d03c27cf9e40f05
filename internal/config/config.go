package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

type BoardConfig struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	MineCount int `json:"mine_count"`
}

type LogConfig struct {
	Path       string `json:"path"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

type Config struct {
	Development bool        `json:"development"`
	Board       BoardConfig `json:"board"`
	Log         LogConfig   `json:"log"`
}

func Default() Config {
	return Config{
		Board: BoardConfig{Width: 10, Height: 10, MineCount: 10},
		Log: LogConfig{
			Path:       "minesweeper.log",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads the config file at path over the defaults. A missing file is not
// an error: the defaults apply as is. Setting DEVELOPMENT in the environment
// overrides the development flag regardless of the file.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("unable to read config %s: %w", path, err)
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("unable to parse config %s: %w", path, err)
		}
	}

	if development, ok := os.LookupEnv("DEVELOPMENT"); ok {
		cfg.Development = development != "0"
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Board.Width < 1 || c.Board.Height < 1 {
		return fmt.Errorf(
			"board extent must be positive, got %dx%d",
			c.Board.Width, c.Board.Height,
		)
	}
	if c.Board.MineCount < 1 {
		return fmt.Errorf("mine count must be positive, got %d", c.Board.MineCount)
	}
	return nil
}
