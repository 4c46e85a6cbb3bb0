package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// config holds defaults for the reduce command's policy knobs, loaded from
// a TOML file so a caller doesn't need to repeat flags on every invocation.
type config struct {
	Exhaustive  bool   `toml:"exhaustive"`
	Interactive bool   `toml:"interactive"`
	NthSource   int    `toml:"nth_source"`
	TUI         bool   `toml:"tui"`
	LogLevel    string `toml:"log_level"`
}

// defaultConfigPath returns ~/.config/phyloreduce/config.toml.
func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads path, returning a zero-value config if path is empty and
// the default config file doesn't exist.
func loadConfig(path string) (config, error) {
	var cfg config

	if path == "" {
		defaultPath, err := defaultConfigPath()
		if err != nil {
			return cfg, nil
		}
		if _, err := os.Stat(defaultPath); err != nil {
			return cfg, nil
		}
		path = defaultPath
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c config) logLevel() log.Level {
	switch c.LogLevel {
	case "debug":
		return LogDebug
	default:
		return LogInfo
	}
}
