package app

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

type Paths struct {
	ConfigDir    string `json:"configDir"`
	ActivePath   string `json:"activePath"`
	RecordDir    string `json:"recordDir"`
	PreviousPath string `json:"previousPath"`
}

func resolveSettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if explicit := strings.TrimSpace(os.Getenv("GCLOUDCTX_CONFIG")); explicit != "" {
		return resolvePathWithHome(explicit, home), nil
	}
	xdg := firstNonEmpty(os.Getenv("XDG_CONFIG_HOME"), filepath.Join(home, ".config"))
	return filepath.Join(resolvePathWithHome(xdg, home), "gcloudctx", "config.toml"), nil
}

func resolvePaths(cfg Config) (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, err
	}
	root := resolvePathWithHome(firstNonEmpty(
		os.Getenv("CLOUDSDK_CONFIG"),
		cfg.ConfigDir,
		defaultGcloudConfigDir(home),
	), home)
	previous := filepath.Join(root, "gcloudctx")
	if cfg.PreviousFile != "" {
		previous = resolvePathWithHome(cfg.PreviousFile, home)
	}
	return Paths{
		ConfigDir:    root,
		ActivePath:   filepath.Join(root, "active_config"),
		RecordDir:    filepath.Join(root, "configurations"),
		PreviousPath: previous,
	}, nil
}

func defaultGcloudConfigDir(home string) string {
	if runtime.GOOS == "windows" {
		if appData := strings.TrimSpace(os.Getenv("APPDATA")); appData != "" {
			return filepath.Join(appData, "gcloud")
		}
	}
	return filepath.Join(home, ".config", "gcloud")
}

func resolvePathWithHome(raw string, home string) string {
	if strings.HasPrefix(raw, "~/") {
		return filepath.Join(home, strings.TrimPrefix(raw, "~/"))
	}
	if strings.HasPrefix(raw, "~\\") {
		return filepath.Join(home, strings.TrimPrefix(raw, "~\\"))
	}
	if raw == "~" {
		return home
	}
	return filepath.Clean(raw)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			return trimmed
		}
	}
	return ""
}
