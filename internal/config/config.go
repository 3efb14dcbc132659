package config

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"
)

type LogConfig struct {
	Path       string `json:"path"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

type Config struct {
	Mode string    `json:"mode"`
	Log  LogConfig `json:"log"`
}

func Default() Config {
	return Config{
		Mode: "production",
		Log: LogConfig{
			Path:       "minesweeper.log",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":            c.Mode,
		"log_path":        c.Log.Path,
		"log_max_size_mb": c.Log.MaxSizeMB,
		"log_max_backups": c.Log.MaxBackups,
		"log_max_age":     c.Log.MaxAgeDays,
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func Read(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}
