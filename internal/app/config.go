package app

import (
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	StoreAuto   = "auto"
	StoreGcloud = "gcloud"
	StoreFiles  = "files"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the optional gcloudctx settings file.
type Config struct {
	Store        string `toml:"store"`
	GcloudPath   string `toml:"gcloud_path"`
	ConfigDir    string `toml:"config_dir"`
	PreviousFile string `toml:"previous_file"`
	Color        string `toml:"color"`
}

func DefaultConfig() Config {
	return Config{
		Store:      StoreAuto,
		GcloudPath: "gcloud",
		Color:      ColorAuto,
	}
}

// LoadConfig reads the settings file; a missing file yields the defaults.
func LoadConfig() (Config, error) {
	path, err := resolveSettingsPath()
	if err != nil {
		return Config{}, err
	}
	return loadConfigFile(path)
}

func loadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	bytes, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, err
	}
	if err := toml.Unmarshal(bytes, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg.normalize()
}

func (c Config) normalize() (Config, error) {
	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	if c.Store == "" {
		c.Store = StoreAuto
	}
	switch c.Store {
	case StoreAuto, StoreGcloud, StoreFiles:
	default:
		return Config{}, fmt.Errorf("invalid store %q (allowed: auto, gcloud, files)", c.Store)
	}

	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	if c.Color == "" {
		c.Color = ColorAuto
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return Config{}, fmt.Errorf("invalid color %q (allowed: auto, always, never)", c.Color)
	}

	c.GcloudPath = firstNonEmpty(c.GcloudPath, "gcloud")
	return c, nil
}
