package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Browse  BrowseConfig  `mapstructure:"browse"`
	Logging LoggingConfig `mapstructure:"logging"`
	Update  UpdateConfig  `mapstructure:"update"`
}

// APIConfig holds catalog API connection details
type APIConfig struct {
	URL      string        `mapstructure:"url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	MaxPages int           `mapstructure:"max_pages"`
}

// CacheConfig controls how cached movie summaries are served
type CacheConfig struct {
	AcceptSummaries bool `mapstructure:"accept_summaries"`
}

// BrowseConfig contains defaults for listing and browsing titles
type BrowseConfig struct {
	Limit      int      `mapstructure:"limit"`
	Categories []string `mapstructure:"categories"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// UpdateConfig configures self-update
type UpdateConfig struct {
	Repository string `mapstructure:"repository"`
}
