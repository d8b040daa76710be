package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"syscall"

	"github.com/klauspost/compress/zstd"
)

// FileStore keeps one file per key in a directory. Writes go through a temp
// file and a rename, so a failed write never leaves a truncated value behind.
type FileStore struct {
	dir      string
	compress bool
}

// FileStoreConfig configures a FileStore
type FileStoreConfig struct {
	Dir string // Required

	// Compress stores values zstd compressed. Reads detect the format, so
	// the flag can be flipped on an existing directory.
	Compress bool
}

// zstd frame magic number
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// NewFileStore creates the directory if needed
func NewFileStore(cfg *FileStoreConfig) (*FileStore, error) {
	if cfg == nil || cfg.Dir == "" {
		return nil, errors.New("file store directory is required")
	}
	if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	return &FileStore{
		dir:      cfg.Dir,
		compress: cfg.Compress,
	}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}

func (s *FileStore) Read(_ context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}

	if len(data) >= len(zstdMagic) && string(data[:len(zstdMagic)]) == string(zstdMagic) {
		decoder, err := zstd.NewReader(nil)
		if err != nil {
			return "", false, err
		}
		defer decoder.Close()

		data, err = decoder.DecodeAll(data, nil)
		if err != nil {
			return "", false, fmt.Errorf("failed to decompress %q: %w", key, err)
		}
	}

	return string(data), true, nil
}

func (s *FileStore) Write(_ context.Context, key, value string) error {
	data := []byte(value)
	if s.compress {
		encoder, err := zstd.NewWriter(nil)
		if err != nil {
			return err
		}
		data = encoder.EncodeAll(data, nil)
		_ = encoder.Close()
	}

	path := s.path(key)
	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return classifyFileError(key, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return classifyFileError(key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return classifyFileError(key, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return classifyFileError(key, err)
	}
	return nil
}

func (s *FileStore) Remove(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %q: %w", key, err)
	}
	return nil
}

// classifyFileError marks out-of-space and over-quota failures
func classifyFileError(key string, err error) error {
	if errors.Is(err, syscall.ENOSPC) || errors.Is(err, syscall.EDQUOT) {
		return fmt.Errorf("write %q: %w: %v", key, ErrQuotaExceeded, err)
	}
	return fmt.Errorf("failed to write %q: %w", key, err)
}
