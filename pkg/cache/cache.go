// Package cache provides content-addressed caching for rendered artifacts.
//
// Generation runs are deterministic (same model, seed and options produce
// the same graph), so expensive Graphviz renders can be reused across runs.
// Cache keys hash the exported graph snapshot plus the render options, and
// entries carry a TTL so stale artifacts age out of the on-disk store.
//
// Two implementations are provided:
//
//   - [FileCache] stores entries as files under a directory, for CLI usage
//   - [NullCache] never stores anything, for tests and --refresh runs
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// TTLArtifact is how long rendered artifacts (SVG, PNG) are kept before a
// Get treats them as expired.
const TTLArtifact = 30 * 24 * time.Hour

// Cache is the storage interface the pipeline renders against.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Close releases resources held by the cache.
	Close() error
}

// Hash returns the hex SHA-256 of data. Exported snapshots are hashed with
// it, and the result scopes every artifact key to the exact graph content.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey builds a namespaced key from the JSON encoding of parts.
func hashKey(namespace string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return fmt.Sprintf("%s:%s", namespace, Hash(data))
}

// SnapshotKeyOpts are the generation parameters that determine a graph
// snapshot. Two runs with equal opts produce byte-identical snapshots.
type SnapshotKeyOpts struct {
	Model            string
	Steps            int
	Seed             int64
	Directed         bool
	RandomlyDirected bool
	AverageDegree    float64
	Torus            bool
}

// ArtifactKeyOpts are the render parameters layered on top of a snapshot.
type ArtifactKeyOpts struct {
	Format       string
	Labels       bool
	UsePositions bool
}

// Keyer generates cache keys for the two cacheable stages.
type Keyer interface {
	// SnapshotKey generates a key for an exported graph snapshot.
	SnapshotKey(opts SnapshotKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact, scoped to the
	// hash of the snapshot it was rendered from.
	ArtifactKey(snapshotHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generation strategy.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SnapshotKey generates a key for an exported graph snapshot.
func (k *DefaultKeyer) SnapshotKey(opts SnapshotKeyOpts) string {
	return hashKey("snapshot", opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(snapshotHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", snapshotHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix so separate contexts (different
// output directories, different users of a shared cache dir) get separate
// namespaces.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SnapshotKey generates a prefixed key for a graph snapshot.
func (k *ScopedKeyer) SnapshotKey(opts SnapshotKeyOpts) string {
	return k.prefix + k.inner.SnapshotKey(opts)
}

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(snapshotHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(snapshotHash, opts)
}
