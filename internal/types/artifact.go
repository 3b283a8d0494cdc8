//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// ArtifactRecord describes a stored brief PDF and its share window.
// Created on successful upload and read-only thereafter.
type ArtifactRecord struct {
	StorageKey string    `json:"storage_key"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}
