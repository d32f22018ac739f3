// Package config exposes read-only access to the service configuration.
//
// Callers depend on the Config interface; the viper-backed implementation in
// this package reads a YAML file, watches it for changes and lets environment
// variables override any key.
package config

import (
	"io"
	"time"
)

// Config is a read-only view over the current configuration snapshot.
//
// Getters never fail: a missing or unconvertible key yields the zero value of
// the requested type, so callers apply their own defaults.
type Config interface {
	io.Closer

	// IsSet reports whether the key has a value from any source.
	IsSet(key string) bool

	GetString(key string) string
	GetBool(key string) bool
	GetInt(key string) int
	GetFloat64(key string) float64

	// GetSecond reads an integer value and interprets it as seconds.
	GetSecond(key string) time.Duration

	// GetArray reads a value stored as <element1>,<element2>,...
	// Blank elements are dropped.
	GetArray(key string) []string
}
