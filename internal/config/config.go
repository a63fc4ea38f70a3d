// Package config loads the extension-level configuration: platform
// selection, the command overlay location, delegation, and the speech
// defaults. Configuration is a single TOML file; a missing file yields
// the defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/auricle/auricle/internal/command"
)

// Config errors.
var (
	ErrBadPlatform = errors.New("config: unknown platform")
	ErrBadRange    = errors.New("config: value out of range")
)

// FileSystem abstracts file access for testing.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// OSFS reads from the real filesystem.
type OSFS struct{}

// ReadFile implements FileSystem.
func (OSFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// Speech holds the synthesizer defaults, each in [0, 1].
type Speech struct {
	Rate   float64 `toml:"rate"`
	Pitch  float64 `toml:"pitch"`
	Volume float64 `toml:"volume"`
}

// Config is the top-level configuration.
type Config struct {
	// Platform selects which platform's command set is active:
	// "wml", "chromeos", or "android".
	Platform string `toml:"platform"`

	// OverlayPath points at the optional command-table overlay file.
	OverlayPath string `toml:"overlay_path"`

	// WatchOverlay reloads the overlay when the file changes.
	WatchOverlay bool `toml:"watch_overlay"`

	// Delegation enables offering public commands to the page.
	Delegation bool `toml:"delegation"`

	Speech Speech `toml:"speech"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Platform:   "wml",
		Delegation: true,
		Speech:     Speech{Rate: 0.5, Pitch: 0.5, Volume: 1.0},
	}
}

// Load reads a configuration file over the defaults. A missing file is
// not an error; the defaults apply unchanged.
func Load(fsys FileSystem, path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if _, err := c.PlatformMask(); err != nil {
		return err
	}
	for name, v := range map[string]float64{
		"speech.rate":   c.Speech.Rate,
		"speech.pitch":  c.Speech.Pitch,
		"speech.volume": c.Speech.Volume,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s = %v", ErrBadRange, name, v)
		}
	}
	return nil
}

// PlatformMask resolves the configured platform name.
func (c Config) PlatformMask() (command.Platform, error) {
	switch c.Platform {
	case "", "wml":
		return command.PlatformWML, nil
	case "chromeos":
		return command.PlatformChromeOS, nil
	case "android":
		return command.PlatformAndroid, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadPlatform, c.Platform)
	}
}
