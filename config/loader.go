package config

import (
	"errors"
	"log/slog"
	"os"
)

// ProjectConfigFile is the name of the project-level config file.
const ProjectConfigFile = "shexval.yaml"

// Loader handles configuration loading with layered precedence.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. Project config (shexval.yaml in the working directory)
// Flags are applied on top by the CLI.
func (l *Loader) Load() (*Config, error) {
	config := DefaultConfig()

	if project, err := LoadFromFile(ProjectConfigFile); err == nil {
		l.logger.Debug("Loaded project config", slog.String("path", ProjectConfigFile))
		config.Merge(project)
	} else if !errors.Is(err, os.ErrNotExist) {
		l.logger.Warn("Failed to load project config",
			slog.String("path", ProjectConfigFile), slog.String("error", err.Error()))
	} else {
		l.logger.Debug("No project config found")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
