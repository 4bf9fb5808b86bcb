package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the reader application's configuration.
type Config struct {
	Database DatabaseConfig
	Book     BookConfig
	Pager    PagerConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// BookConfig selects what to read.
type BookConfig struct {
	// ID of the book to open; empty opens the first book in the library.
	ID string
}

// PagerConfig holds paging behavior settings.
type PagerConfig struct {
	// Spacing is the gap between pages in cells.
	Spacing int
	// Direction is "ltr" or "rtl".
	Direction string
	// Dynamic infers the direction from the reader's first swipe.
	Dynamic bool
	// FPS drives the turn animation tick rate.
	FPS int
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Accent string
	Muted  string
}

// Load reads configuration from file and env. Env var overrides use prefix PAGEREADER_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "pagereader", "library.db"))
	v.SetDefault("book.id", "")
	v.SetDefault("pager.spacing", 4)
	v.SetDefault("pager.direction", "ltr")
	v.SetDefault("pager.dynamic", false)
	v.SetDefault("pager.fps", 30)
	v.SetDefault("ui.accent", "#89b4fa")
	v.SetDefault("ui.muted", "#a6adc8")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PAGEREADER_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "pagereader"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PAGEREADER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. The reader uses it to persist direction and book choices between
// sessions.
func Save(cfg Config) error {
	path := os.Getenv("PAGEREADER_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "pagereader", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("book.id", cfg.Book.ID)
	v.Set("pager.spacing", cfg.Pager.Spacing)
	v.Set("pager.direction", cfg.Pager.Direction)
	v.Set("pager.dynamic", cfg.Pager.Dynamic)
	v.Set("pager.fps", cfg.Pager.FPS)
	v.Set("ui.accent", cfg.UI.Accent)
	v.Set("ui.muted", cfg.UI.Muted)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// NormalizedDirection reports the configured scroll direction as a
// normalized token, defaulting to "ltr" for anything unrecognized.
func (p PagerConfig) NormalizedDirection() string {
	switch strings.ToLower(strings.TrimSpace(p.Direction)) {
	case "rtl", "right-to-left":
		return "rtl"
	default:
		return "ltr"
	}
}
