package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileStore moves uploaded files from temporary to permanent per-entity
// storage. The core only records the returned path on line items.
type FileStore interface {
	MoveToPermanent(ctx context.Context, tmpPath, entityType, entityID string) (string, error)
}

// LocalFileStore keeps permanent files under root/<entityType>/<entityID>/.
type LocalFileStore struct{ root string }

func NewLocalFileStore(root string) *LocalFileStore { return &LocalFileStore{root: root} }

func (s *LocalFileStore) MoveToPermanent(_ context.Context, tmpPath, entityType, entityID string) (string, error) {
	dir := filepath.Join(s.root, entityType, entityID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	dst := filepath.Join(dir, filepath.Base(tmpPath))
	if err := os.Rename(tmpPath, dst); err == nil {
		return dst, nil
	}
	// Rename fails across filesystems; fall back to copy+remove.
	if err := copyFile(tmpPath, dst); err != nil {
		return "", fmt.Errorf("move %s to permanent storage: %w", tmpPath, err)
	}
	_ = os.Remove(tmpPath)
	return dst, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
