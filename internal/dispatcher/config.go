package dispatcher

import "github.com/auricle/auricle/internal/command"

// Config holds dispatcher configuration options.
type Config struct {
	// Platform identifies the runtime platform. Descriptors whose
	// platform mask excludes it are filtered out before execution.
	Platform command.Platform

	// EnableMetrics enables dispatch timing and statistics collection.
	EnableMetrics bool

	// RecoverFromPanic wraps handler execution in panic recovery.
	RecoverFromPanic bool

	// DisableDelegation forces every command to run locally even when
	// the page has claimed it.
	DisableDelegation bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Platform:         command.PlatformWML,
		EnableMetrics:    false,
		RecoverFromPanic: true,
	}
}

// WithPlatform returns a copy of the config with the platform set.
func (c Config) WithPlatform(p command.Platform) Config {
	c.Platform = p
	return c
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithPanicRecovery returns a copy of the config with panic recovery set.
func (c Config) WithPanicRecovery(recover bool) Config {
	c.RecoverFromPanic = recover
	return c
}

// WithoutDelegation returns a copy of the config with page delegation
// disabled.
func (c Config) WithoutDelegation() Config {
	c.DisableDelegation = true
	return c
}
