package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Catalog  CatalogConfig  `mapstructure:"catalog"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	LogFormat       string        `mapstructure:"log_format"       validate:"required,oneof=json text"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig contains database settings. The database is optional: with
// an empty URL the catalog is served from the built-in tables only.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// CatalogConfig controls how quantities are presented by default.
type CatalogConfig struct {
	// Mode selects the standard atomic weight table.
	Mode string `mapstructure:"mode" validate:"required,oneof=abridged unabridged"`
	// Precision is the number of decimal places in formatted text.
	// -1 selects the shortest exact representation.
	Precision int `mapstructure:"precision" validate:"gte=-1,lte=17"`
}
