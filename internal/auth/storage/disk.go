package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/vasupateljsk089-byte/Real-Estate/pkg/idx"
)

// DiskStore writes objects under a local base directory and serves them
// from a static file prefix. Uploaded names are replaced with ULIDs so
// user-supplied filenames never touch the filesystem.
type DiskStore struct {
	baseDir string
	baseURL string
}

func NewDiskStore(baseDir, baseURL string) *DiskStore {
	return &DiskStore{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (d *DiskStore) Upload(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Only the extension survives from the original name.
	ext := strings.ToLower(filepath.Ext(filename))
	name := idx.New().String() + ext

	dir := filepath.Join(d.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: create dir: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("storage: create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("storage: close file: %w", err)
	}

	return d.baseURL + "/" + path.Join(folder, name), nil
}
