// Package cache provides layout result caching for the flowgrid pipeline.
//
// Computed layouts and rendered artifacts are cached keyed by a content
// hash of the input graph plus the layout options that produced them.
// Three backends are provided:
//
//   - FileCache: directory-backed cache for CLI usage
//   - RedisCache: shared cache for server deployments
//   - NullCache: caching disabled (testing, --no-cache)
//
// Keys are produced by a [Keyer] so that CLI and server generate
// identical keys for identical work.
package cache

import (
	"context"
	"time"
)

// Cache TTLs per entry kind. Layouts are pure functions of their key, so
// the TTL exists only to bound disk and memory growth.
const (
	// TTLLayout is the lifetime of cached layout results.
	TTLLayout = 7 * 24 * time.Hour

	// TTLArtifact is the lifetime of cached rendered artifacts (SVG, PNG).
	TTLArtifact = 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
// Implementations must treat a missing key as a miss, not an error.
type Cache interface {
	// Get retrieves the value for key. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key with the given TTL. A zero TTL means
	// the entry does not expire.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes the entry for key. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// LayoutKeyOpts carries the layout options that participate in cache keys.
// Any option that changes the output must appear here.
type LayoutKeyOpts struct {
	Preset     string  `json:"preset"`
	Direction  string  `json:"direction,omitempty"`
	NodeWidth  float64 `json:"node_width,omitempty"`
	NodeHeight float64 `json:"node_height,omitempty"`
	RankSep    float64 `json:"rank_sep,omitempty"`
	NodeSep    float64 `json:"node_sep,omitempty"`
	Iterations int     `json:"iterations,omitempty"`
}

// ArtifactKeyOpts carries the render options that participate in cache keys.
type ArtifactKeyOpts struct {
	Format   string `json:"format"`
	Detailed bool   `json:"detailed,omitempty"`
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// LayoutKey generates a key for a computed layout.
	LayoutKey(graphHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// LayoutKey generates a key for a computed layout.
func (k *DefaultKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", graphHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation, e.g.
// per-user caches behind the shared server.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to all keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// LayoutKey generates a prefixed key for a computed layout.
func (k *ScopedKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(graphHash, opts)
}

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
