// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// File is an [Adapter] backed by a single JSON document on disk.
//
// Every logical key is a field of one top-level JSON object. Writes rewrite
// the whole document through a temp-file-and-rename cycle so a crash mid-write
// never leaves a half-written document behind.
//
// # Durability
//
// An unreadable document is logged and treated as empty rather than failing
// the process: losing favorites or history is an acceptable recovery in this
// domain, a corrupt-state crash loop is not.
type File struct {
	mu   sync.Mutex
	path string
	log  *slog.Logger
}

// NewFile creates a file-backed adapter rooted at path.
// The parent directory is created on first write, not here.
func NewFile(path string, log *slog.Logger) *File {
	return &File{path: path, log: log}
}

// Get returns the value stored under key, or [ErrAbsent].
func (f *File) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return "", err
	}

	value, ok := doc[key]
	if !ok {
		return "", ErrAbsent
	}
	return value, nil
}

// Set stores value under key and flushes the document to disk.
func (f *File) Set(_ context.Context, key string, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}

	doc[key] = value
	return f.flush(doc)
}

// Remove deletes the value stored under key and flushes the document.
func (f *File) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}

	if _, ok := doc[key]; !ok {
		return nil
	}

	delete(doc, key)
	return f.flush(doc)
}

// load reads the document from disk. A missing file yields an empty document;
// an unparsable file is logged and also yields an empty document.
func (f *File) load() (map[string]string, error) {
	raw, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage_file_read_failed: %w", err)
	}

	if len(raw) == 0 {
		return map[string]string{}, nil
	}

	doc := map[string]string{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		f.log.Warn("storage_file_corrupted_reset",
			slog.String("path", f.path),
			slog.String("error", err.Error()),
		)
		return map[string]string{}, nil
	}

	return doc, nil
}

// flush writes the document atomically via a sibling temp file and rename.
func (f *File) flush(doc map[string]string) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("storage_file_encode_failed: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("storage_file_mkdir_failed: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".otakuhaven-*.tmp")
	if err != nil {
		return fmt.Errorf("storage_file_tmp_failed: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("storage_file_write_failed: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("storage_file_sync_failed: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("storage_file_close_failed: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("storage_file_rename_failed: %w", err)
	}

	return nil
}
