// Package storage holds the object store collaborator used for avatar
// uploads.
package storage

import (
	"context"
	"io"
)

// ObjectStore persists an uploaded object under a folder and returns a
// URL the client can fetch it from.
type ObjectStore interface {
	Upload(ctx context.Context, folder, filename string, r io.Reader) (string, error)
}
