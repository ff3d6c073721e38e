// Package config loads the optional pacport configuration file. The
// translation itself is stateless; configuration only adjusts presentation,
// dry-run behavior, and host detection overrides.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config represents the complete pacport configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Output  OutputConfig  `toml:"output"`
}

// GeneralConfig contains general pacport settings.
type GeneralConfig struct {
	// Verbose enables detailed output and debug logging.
	Verbose bool `toml:"verbose"`

	// DryRun prints the rendered native command instead of executing it.
	DryRun bool `toml:"dry_run"`

	// Host overrides package manager detection ("dpkg", "yum", "homebrew",
	// "portage", "pacman"). Useful in containers without /etc/os-release.
	Host string `toml:"host"`

	// PacmanBinary is the binary used for pass-through on pacman hosts.
	PacmanBinary string `toml:"pacman_binary"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	// Color enables colored output (respects NO_COLOR env var).
	Color bool `toml:"color"`

	// Unicode enables unicode symbols in output.
	Unicode bool `toml:"unicode"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			PacmanBinary: "pacman",
		},
		Output: OutputConfig{
			Color:   true,
			Unicode: true,
		},
	}
}

// Load loads the configuration from the default path, then applies
// environment overrides.
func Load() (*Config, error) {
	cfg, err := LoadFrom(ConfigPath())
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// LoadFrom loads the configuration from a specific path. A missing file is
// not an error; defaults are returned.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	if cfg.General.PacmanBinary == "" {
		cfg.General.PacmanBinary = "pacman"
	}

	return cfg, nil
}

// applyEnv applies environment variable overrides.
func (c *Config) applyEnv() {
	if os.Getenv("PACPORT_DRY_RUN") != "" {
		c.General.DryRun = true
	}
	if host := os.Getenv("PACPORT_HOST"); host != "" {
		c.General.Host = host
	}
}

// ShouldUseColor returns whether colored output should be used.
func (c *Config) ShouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return c.Output.Color
}
