// Package sink provides output destinations for generated Rust sources.
package sink

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// OutputSink receives generated file content.
// Implementations must be safe for concurrent calls.
type OutputSink interface {
	// WriteFile writes content to the slash-separated relative path.
	WriteFile(ctx context.Context, path string, content []byte) error
}

// tempPattern names in-flight writes. Leftovers can be removed by hand.
const tempPattern = ".inversion-*.tmp"

// accept is the common prologue of every sink's WriteFile.
func accept(ctx context.Context, path string) error {
	if err := ValidatePath(path); err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}
	return ctx.Err()
}

// FilesystemSink writes below a directory on the local filesystem.
type FilesystemSink struct {
	// Root is the base directory for all writes.
	Root string

	// Mode is the file permission mode (default: 0644).
	Mode os.FileMode

	// Overwrite replaces existing files. When false an existing file is an error.
	Overwrite bool

	// SkipUnchanged leaves an existing file untouched when its content is
	// already identical, so file watchers and build tools see no change.
	SkipUnchanged bool
}

// NewFilesystemSink returns a sink that overwrites files below root.
func NewFilesystemSink(root string) *FilesystemSink {
	return &FilesystemSink{Root: root, Mode: 0644, Overwrite: true}
}

// WriteFile creates parent directories as needed and replaces the target
// atomically through a temp file in the same directory.
func (s *FilesystemSink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := accept(ctx, path); err != nil {
		return err
	}
	target, err := s.target(path)
	if err != nil {
		return err
	}

	if s.SkipUnchanged && s.Overwrite {
		if current, err := os.ReadFile(target); err == nil && bytes.Equal(current, content) {
			return nil
		}
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}
	tmp, err := s.stage(dir, content)
	if err != nil {
		return err
	}
	// No-op once the temp file has been renamed into place.
	defer os.Remove(tmp)

	if err := ctx.Err(); err != nil {
		return err
	}
	return s.commit(tmp, target, path)
}

// target joins path onto Root and rejects results outside Root.
func (s *FilesystemSink) target(path string) (string, error) {
	root, err := filepath.Abs(s.Root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve root directory: %w", err)
	}
	full := filepath.Join(root, filepath.FromSlash(path))
	rel, err := filepath.Rel(root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path escapes root directory: %q", path)
	}
	return full, nil
}

// stage writes content to a new temp file in dir and returns its name.
func (s *FilesystemSink) stage(dir string, content []byte) (name string, err error) {
	f, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	name = f.Name()
	defer func() {
		if err != nil {
			os.Remove(name)
		}
	}()

	if _, err := f.Write(content); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	mode := s.Mode
	if mode == 0 {
		mode = 0644
	}
	if err := os.Chmod(name, mode); err != nil {
		return "", fmt.Errorf("failed to set file mode: %w", err)
	}
	return name, nil
}

// commit moves tmp to target. Without Overwrite a hard link is used, so an
// existing target fails the write instead of being replaced.
func (s *FilesystemSink) commit(tmp, target, path string) error {
	if s.Overwrite {
		if err := os.Rename(tmp, target); err != nil {
			return fmt.Errorf("failed to rename temp file: %w", err)
		}
		return nil
	}
	switch err := os.Link(tmp, target); {
	case errors.Is(err, os.ErrExist):
		return fmt.Errorf("file already exists: %q", path)
	case err != nil:
		return fmt.Errorf("failed to create file: %w", err)
	}
	return nil
}

// MemorySink keeps generated files in memory.
type MemorySink struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemorySink returns an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{files: map[string][]byte{}}
}

// WriteFile stores a copy of content under path, replacing earlier writes.
func (s *MemorySink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := accept(ctx, path); err != nil {
		return err
	}
	s.mu.Lock()
	s.files[path] = bytes.Clone(content)
	s.mu.Unlock()
	return nil
}

// Files returns a copy of every stored file.
func (s *MemorySink) Files() map[string][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := maps.Clone(s.files)
	for p, c := range out {
		out[p] = bytes.Clone(c)
	}
	return out
}

// Paths returns the stored paths, sorted.
func (s *MemorySink) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.files))
}

// Get returns a copy of one file, or nil.
func (s *MemorySink) Get(path string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return bytes.Clone(s.files[path])
}

// DiscardSink validates paths and counts bytes without storing anything.
// It backs dry runs such as "inversion check".
type DiscardSink struct {
	mu    sync.Mutex
	files int
	bytes int64
}

// WriteFile records the write and drops content.
func (s *DiscardSink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := accept(ctx, path); err != nil {
		return err
	}
	s.mu.Lock()
	s.files++
	s.bytes += int64(len(content))
	s.mu.Unlock()
	return nil
}

// Totals returns the number of files and bytes written so far.
func (s *DiscardSink) Totals() (files int, size int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.files, s.bytes
}

// ValidatePath reports whether path may be handed to a sink: non-empty,
// relative, slash-separated, clean and free of ".." segments.
func ValidatePath(path string) error {
	switch {
	case path == "":
		return errors.New("path is empty")
	case filepath.IsAbs(path), strings.HasPrefix(path, "/"), hasDriveLetter(path):
		return errors.New("absolute paths not allowed")
	case strings.Contains(path, `\`):
		return errors.New("path must use / separators")
	}
	for seg := range strings.SplitSeq(path, "/") {
		if seg == ".." {
			return errors.New("path traversal not allowed")
		}
	}
	if cleaned := filepath.ToSlash(filepath.Clean(path)); cleaned != path {
		return fmt.Errorf("path is not clean (expected %q, got %q)", cleaned, path)
	}
	return nil
}

func hasDriveLetter(path string) bool {
	if len(path) < 2 || path[1] != ':' {
		return false
	}
	c := path[0] | 0x20
	return c >= 'a' && c <= 'z'
}
