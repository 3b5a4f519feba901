// Package config provides configuration loading and management.
package config

// GradleConfig contains settings for the Gradle invocation.
type GradleConfig struct {
	// Bin is the Gradle binary to invoke.
	// Env: OSIRIS_GRADLE_BIN, Default: "gradle"
	Bin string `mapstructure:"bin"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Verbose mode always shows them.
	Timestamps *bool `mapstructure:"timestamps"`
}

// Config represents the osiris-platform CLI configuration.
// Loaded from ~/.osiris/config.yaml, overridable via OSIRIS_* environment
// variables.
type Config struct {
	// Manifest is the default path of the platform manifest.
	// Env: OSIRIS_MANIFEST
	Manifest string `mapstructure:"manifest"`

	// Gradle contains settings for the Gradle invocation.
	Gradle GradleConfig `mapstructure:"gradle"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log"`
}

// DefaultManifestPath is the manifest location used when neither the
// configuration nor the command line name one.
const DefaultManifestPath = "./osiris-platform.toml"

// WithDefaults returns the config with unset fields filled in.
func (c *Config) WithDefaults() *Config {
	if c.Manifest == "" {
		c.Manifest = DefaultManifestPath
	}
	if c.Gradle.Bin == "" {
		c.Gradle.Bin = "gradle"
	}
	if c.Log.Timestamps == nil {
		timestamps := false
		c.Log.Timestamps = &timestamps
	}
	return c
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return (&Config{}).WithDefaults()
}
