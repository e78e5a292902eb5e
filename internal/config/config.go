package config

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/mines"
)

type LogConfig struct {
	File       string `json:"file"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

type Config struct {
	Mode      string    `json:"mode"`
	Height    int       `json:"height"`
	Width     int       `json:"width"`
	MineCount int       `json:"mine_count"`
	Log       LogConfig `json:"log"`
}

func Default() Config {
	return Config{
		Mode:      "production",
		Height:    mines.DefaultParams.Height,
		Width:     mines.DefaultParams.Width,
		MineCount: mines.DefaultParams.MineCount,
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":             c.Mode,
		"height":           c.Height,
		"width":            c.Width,
		"mine_count":       c.MineCount,
		"log_file":         c.Log.File,
		"log_max_size_mb":  c.Log.MaxSizeMB,
		"log_max_backups":  c.Log.MaxBackups,
		"log_max_age_days": c.Log.MaxAgeDays,
	}
}

func (c Config) Production() bool {
	return !c.Development()
}

func (c Config) Development() bool {
	return c.Mode != "production" || DevelopmentEnv()
}

// Params returns the board shape new games start with. It is validated by
// [mines.NewBoard], not here.
func (c Config) Params() mines.GameParams {
	return mines.GameParams{
		Height:    c.Height,
		Width:     c.Width,
		MineCount: c.MineCount,
	}
}

// ReadConfig overlays the JSON file at path onto config, so keys missing
// from the file keep their current values.
func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}
