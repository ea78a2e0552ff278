// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config.yaml file. It provides
// type-safe access to settings for the server, the database and the catalog
// presentation defaults.
package config
