package shared

import (
	"waypoint/internal/maps"
	"waypoint/pkg/logger"
)

// DefaultMaxResults caps search tool output when no cap is configured.
const DefaultMaxResults = 5

// Deps bundles dependencies required by concrete tool implementations.
// Each call is stateless; the only shared state is the upstream client and
// its single API credential.
type Deps struct {
	Maps maps.API
	Log  *logger.Logger
	// Language for upstream results, e.g. "en"
	Language string
	// MaxResults caps search tool output; 0 means DefaultMaxResults
	MaxResults int
}

// HasMaps reports whether the upstream client is wired
func (d Deps) HasMaps() bool {
	return d.Maps != nil
}

// Cap returns the effective result cap
func (d Deps) Cap() int {
	if d.MaxResults > 0 {
		return d.MaxResults
	}
	return DefaultMaxResults
}

// Logger returns the configured logger, falling back to the global one
func (d Deps) Logger() *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Get()
}
