// Package storage persists rendered briefs and issues time-limited share
// links. The backing object store is an external collaborator behind the
// Store interface; the GCS implementation lives in gcs.go.
package storage

import (
	"context"
	"io"
	"time"

	"github.com/joshwakefield/jd-brief/internal/types"
)

// DefaultSignedURLTTL is how long a share link stays valid.
const DefaultSignedURLTTL = 30 * 24 * time.Hour

// Store is the narrow contract the orchestrator needs from object storage.
type Store interface {
	// Upload persists document bytes under key and returns the artifact record.
	Upload(ctx context.Context, key string, data []byte) (*types.ArtifactRecord, error)
	// SignedURL issues a time-limited read link for a stored object.
	SignedURL(key string, ttl time.Duration) (string, error)
	// Stream opens a stored object for reading. The caller closes it.
	Stream(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes a stored object.
	Delete(ctx context.Context, key string) error
}
