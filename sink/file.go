package sink

import (
	"os"
	"path/filepath"
	"sync"
)

// File is an append-only log output backed by a single *os.File. It
// is safe for concurrent use, though the drain loop only ever calls
// WriteLine from its one consumer goroutine.
type File struct {
	mu   sync.Mutex
	file *os.File
}

// Open creates path's parent directories if needed and opens path
// for appending, creating it if it doesn't exist.
func Open(path string) (*File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &File{file: f}, nil
}

// WriteLine appends line plus a trailing newline and syncs it to
// disk before returning, matching the drain loop's per-line flush
// requirement: a message is only considered durably written once
// WriteLine returns nil.
func (f *File) WriteLine(line string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.file.WriteString(line); err != nil {
		return err
	}
	if _, err := f.file.WriteString("\n"); err != nil {
		return err
	}
	return f.file.Sync()
}

// Close flushes and closes the underlying file.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.file.Close()
}
