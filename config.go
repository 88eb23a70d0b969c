package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/aatomu/fraction/internal/script"
)

const defaultConfigFile = "fracc.toml"

// config is read from fracc.toml; command line flags override it.
type config struct {
	Parallel int    `toml:"parallel"`
	Format   string `toml:"format"`
	LogLevel string `toml:"log_level"`
}

func defaultConfig() config {
	return config{
		Parallel: script.DefaultParallel,
		Format:   string(script.FormatMixed),
		LogLevel: zerolog.LevelInfoValue,
	}
}

// loadConfig reads path over the defaults. A missing file keeps the
// defaults unless required is set.
func loadConfig(path string, required bool) (config, error) {
	c := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return c, nil
		}
		return c, fmt.Errorf("read config: %w", err)
	}

	var fileConfig config
	if err := toml.Unmarshal(data, &fileConfig); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}

	// Use values from file if provided, otherwise keep defaults
	if fileConfig.Parallel != 0 {
		c.Parallel = fileConfig.Parallel
	}
	if fileConfig.Format != "" {
		c.Format = fileConfig.Format
	}
	if fileConfig.LogLevel != "" {
		c.LogLevel = fileConfig.LogLevel
	}

	return c, nil
}

func (c config) validate() error {
	if c.Parallel < 1 {
		return fmt.Errorf("parallel must be at least 1, got %d", c.Parallel)
	}
	if _, err := script.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}
