package config

import "path/filepath"

// Config represents the complete soltest configuration.
type Config struct {
	// Fixture loading
	Fixtures FixturesConfig `toml:"fixtures" mapstructure:"fixtures"`

	// Logging
	Log LogConfig `toml:"log" mapstructure:"log"`

	// Internal fields for configuration management
	configPath string `toml:"-" mapstructure:"-"`
}

// FixturesConfig controls where account fixtures live and how they are read.
type FixturesConfig struct {
	// Dir is the default directory scanned for *.json account fixtures.
	Dir string `toml:"dir" mapstructure:"dir"`

	// CacheSize is the number of parsed fixtures kept in the loader cache.
	CacheSize int `toml:"cache_size" mapstructure:"cache_size"`

	// Workers bounds concurrent fixture reads. 0 means GOMAXPROCS.
	Workers int `toml:"workers" mapstructure:"workers"`

	// Encoding is the data encoding used when fixtures are written.
	Encoding string `toml:"encoding" mapstructure:"encoding"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" mapstructure:"level"`

	// Format is console or json.
	Format string `toml:"format" mapstructure:"format"`
}

// DefaultConfigPath returns the config file looked up when none is given.
func DefaultConfigPath() string {
	return "soltest.toml"
}

// ConfigPathFromDir returns the config file path inside configDir.
func ConfigPathFromDir(configDir string) string {
	return filepath.Join(configDir, DefaultConfigPath())
}

// GetConfigPath returns the path of the file the config was read from, if any.
func (c *Config) GetConfigPath() string {
	return c.configPath
}

// FixtureDir returns the fixture directory resolved against the config file's
// directory when it is relative.
func (c *Config) FixtureDir() string {
	if filepath.IsAbs(c.Fixtures.Dir) || c.configPath == "" {
		return c.Fixtures.Dir
	}
	return filepath.Join(filepath.Dir(c.configPath), c.Fixtures.Dir)
}
