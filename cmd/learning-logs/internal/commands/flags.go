// Package commands wires the learning-logs subcommands.
package commands

import (
	"os"
	"path/filepath"

	"github.com/learninglogs/learninglogs"
	"github.com/learninglogs/learninglogs/cmd/learning-logs/internal/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Journal adds and lists topics against the configured database
	Journal *learninglogs.Journal
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "learning-logs", "config.yaml")
}
