package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FSUploader writes artifacts to a local directory tree, creating the
// nested folders on demand. It stands in for the hosted drive the study
// uploads recordings to.
type FSUploader struct {
	root string
}

func NewFSUploader(root string) *FSUploader {
	return &FSUploader{root: root}
}

func (u *FSUploader) Upload(ctx context.Context, folders []string, filename string, r io.Reader) (string, error) {
	dir := u.root
	for _, f := range folders {
		if f == "" {
			continue
		}
		dir = filepath.Join(dir, SanitizeFilename(f))
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create artifact folder: %w", err)
	}

	dst := filepath.Join(dir, SanitizeFilename(filename))

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create artifact file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("write artifact: %w", err)
	}

	if err := f.Sync(); err != nil {
		return "", fmt.Errorf("sync artifact: %w", err)
	}

	rel, err := filepath.Rel(u.root, dst)
	if err != nil {
		return dst, nil
	}

	return rel, nil
}
