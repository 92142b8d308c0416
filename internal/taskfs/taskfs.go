// Package taskfs defines the file-system capability the tag engine and the
// resolver depend on, with interchangeable production and in-memory variants.
// Implements: prd001-tag-engine-core R6 (capability interface);
//
//	docs/ARCHITECTURE § File System.
package taskfs

import (
	"bytes"
	"os"

	"github.com/natefinch/atomic"
)

// FS is the capability surface for task-file storage: read a file, rewrite a
// file, enumerate a directory. Implementations are variants, not subclasses;
// the engine holds whichever it was constructed with.
type FS interface {
	// ReadFile returns the full contents of the file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the contents of the file at path. The replacement
	// is all-or-nothing: a failed write leaves any existing file untouched.
	WriteFile(path string, data []byte) error

	// ReadDir returns the names of the entries in the directory at path,
	// in directory iteration order. The order is stable for a given
	// directory state but not guaranteed sorted.
	ReadDir(path string) ([]string, error)
}

// OS is the production FS backed by the operating system. Writes go through
// a temp file and rename so a crash or full disk never truncates the target.
type OS struct{}

// NewOS returns the production file system.
func NewOS() OS { return OS{} }

func (OS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (OS) WriteFile(path string, data []byte) error {
	return atomic.WriteFile(path, bytes.NewReader(data))
}

func (OS) ReadDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
