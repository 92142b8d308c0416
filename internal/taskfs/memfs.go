package taskfs

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Mem is an in-memory FS for tests. Files are keyed by slash-normalized
// absolute path. WriteErr, when set, makes every WriteFile call fail without
// touching stored contents, simulating a full disk or permission failure.
type Mem struct {
	Files    map[string]string
	WriteErr error
}

// NewMem returns an empty in-memory file system.
func NewMem() *Mem {
	return &Mem{Files: make(map[string]string)}
}

func (m *Mem) ReadFile(path string) ([]byte, error) {
	data, ok := m.Files[filepath.ToSlash(path)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return []byte(data), nil
}

func (m *Mem) WriteFile(path string, data []byte) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Files[filepath.ToSlash(path)] = string(data)
	return nil
}

func (m *Mem) ReadDir(path string) ([]string, error) {
	prefix := strings.TrimSuffix(filepath.ToSlash(path), "/") + "/"
	var names []string
	for p := range m.Files {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		rest := strings.TrimPrefix(p, prefix)
		if strings.Contains(rest, "/") {
			// Entry in a subdirectory, not this directory.
			continue
		}
		names = append(names, rest)
	}
	if len(names) == 0 {
		if _, ok := m.Files[filepath.ToSlash(path)]; !ok && !m.dirExists(prefix) {
			return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
		}
	}
	// Deterministic iteration order for tests.
	sort.Strings(names)
	return names, nil
}

func (m *Mem) dirExists(prefix string) bool {
	for p := range m.Files {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}
