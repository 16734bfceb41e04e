package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// FileCollection keeps a collection as one JSON array on disk. Every call
// re-reads the file; nothing is cached between calls.
type FileCollection struct {
	path   string
	logger *zap.Logger
}

// NewFileCollection returns a collection stored at path.
func NewFileCollection(path string, logger *zap.Logger) *FileCollection {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileCollection{path: path, logger: logger.With(zap.String("path", path))}
}

// Path returns the backing file.
func (c *FileCollection) Path() string { return c.path }

// EnsureExists writes an empty array when the file is absent.
func (c *FileCollection) EnsureExists(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := os.Stat(c.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", c.path, err)
	}
	return WriteFileAtomic(c.path, []byte("[]"), filePerm)
}

// ReadAll returns the stored documents. A missing or unparsable file reads as
// an empty collection.
func (c *FileCollection) ReadAll(ctx context.Context) ([]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}

	var docs []json.RawMessage
	if err := json.Unmarshal(data, &docs); err != nil {
		c.logger.Warn("collection file corrupted; treating as empty", zap.Error(err))
		return []json.RawMessage{}, nil
	}
	if docs == nil {
		docs = []json.RawMessage{}
	}
	return docs, nil
}

// Append rewrites the whole array with doc added at the end.
func (c *FileCollection) Append(ctx context.Context, _ string, doc json.RawMessage) error {
	docs, err := c.ReadAll(ctx)
	if err != nil {
		return err
	}
	docs = append(docs, doc)

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	return WriteFileAtomic(c.path, data, filePerm)
}

// WriteFileAtomic writes data next to path and renames it into place, so
// readers observe either the old or the new content.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("sync %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close %s: %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
