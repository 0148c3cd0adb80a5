package config

import "github.com/spf13/viper"

// Default values for every key. Keys without a default are invisible to
// environment overrides, so everything gets one.
const (
	DefaultFixturesDir      = "fixtures"
	DefaultFixtureCacheSize = 256
	DefaultFixtureWorkers   = 0
	DefaultFixtureEncoding  = "base64"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "console"
)

// setDefaults sets all default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("fixtures.dir", DefaultFixturesDir)
	v.SetDefault("fixtures.cache_size", DefaultFixtureCacheSize)
	v.SetDefault("fixtures.workers", DefaultFixtureWorkers)
	v.SetDefault("fixtures.encoding", DefaultFixtureEncoding)

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
}
