// Package config loads the launcher configuration: where the data lives
// and how the TUI starts. User preferences (theme, pomodoro durations)
// live in the settings store, not here.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adilev/focusboard/internal/storage"
	"github.com/spf13/viper"
)

// Config holds launcher settings read from config.yaml and env vars
type Config struct {
	DataDir   string
	DBPath    string
	StartView string
	DebugLog  bool
}

// Default returns the configuration used when no file exists
func Default() Config {
	dataDir := storage.DefaultDataDir()
	return Config{
		DataDir:   dataDir,
		DBPath:    filepath.Join(dataDir, "focusboard.db"),
		StartView: "board",
	}
}

// Load reads config.yaml from the user config dir, with FOCUSBOARD_*
// env overrides. A missing file yields defaults, not an error.
func Load() (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "focusboard"))
	}
	v.SetEnvPrefix("FOCUSBOARD")
	v.AutomaticEnv()

	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("start_view", cfg.StartView)
	v.SetDefault("debug_log", cfg.DebugLog)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg.DataDir = v.GetString("data_dir")
	cfg.StartView = v.GetString("start_view")
	cfg.DebugLog = v.GetBool("debug_log")
	cfg.DBPath = filepath.Join(cfg.DataDir, "focusboard.db")
	if v.IsSet("db_path") {
		cfg.DBPath = v.GetString("db_path")
	}

	return cfg, nil
}
