// Package index caches decoded frontmatter in SQLite so repeated list
// enumerations skip re-reading unchanged task files. The cache is advisory:
// task files stay the source of truth and every caller works without one.
// Implements: prd006-list-index;
//
//	docs/ARCHITECTURE § List Index.
package index

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/satchel/internal/frontmatter"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Schema DDL for the cache table (prd006-list-index R2).
const createTasks = `CREATE TABLE IF NOT EXISTS tasks (
    path TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    fm TEXT NOT NULL,
    mtime INTEGER NOT NULL
);`

// Task is one cached enumeration entry.
type Task struct {
	Path   string
	Title  string
	Fields *types.FrontMatter
}

// Index is a SQLite-backed frontmatter cache keyed by absolute path and
// file modification time.
type Index struct {
	db *sql.DB
}

// Open opens (or creates) the cache database at path and ensures the
// schema exists.
func Open(path string) (*Index, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create index dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	if _, err := db.Exec(createTasks); err != nil {
		db.Close()
		return nil, fmt.Errorf("init index schema: %w", err)
	}
	return &Index{db: db}, nil
}

// Close releases the database handle.
func (x *Index) Close() error {
	return x.db.Close()
}

// Tasks returns the decoded mapping for every path, reading through the
// cache: entries whose stored mtime matches the file are served from
// SQLite, stale or missing entries are decoded via readFile and upserted,
// and entries for vanished files are evicted. Files that cannot be read or
// decoded, or that have no frontmatter block, are skipped.
func (x *Index) Tasks(paths []string, readFile func(string) ([]byte, error)) ([]Task, error) {
	live := make(map[string]bool, len(paths))
	var out []Task

	for _, path := range paths {
		live[path] = true

		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		mtime := info.ModTime().UnixNano()

		if task, ok := x.lookup(path, mtime); ok {
			out = append(out, task)
			continue
		}

		data, err := readFile(path)
		if err != nil {
			continue
		}
		fm, body, err := frontmatter.Decode(string(data))
		if err != nil || fm.Len() == 0 {
			continue
		}
		task := Task{
			Path:   path,
			Title:  types.TaskFile{Path: path, Fields: fm, Body: body}.Title(),
			Fields: fm,
		}
		if err := x.put(task, mtime); err != nil {
			return nil, err
		}
		out = append(out, task)
	}

	if err := x.evict(live); err != nil {
		return nil, err
	}
	return out, nil
}

// lookup returns the cached entry for path when its mtime still matches.
func (x *Index) lookup(path string, mtime int64) (Task, bool) {
	var title, fmText string
	var cached int64
	err := x.db.QueryRow(
		`SELECT title, fm, mtime FROM tasks WHERE path = ?`, path,
	).Scan(&title, &fmText, &cached)
	if err != nil || cached != mtime {
		return Task{}, false
	}
	fm, _, err := frontmatter.Decode(fmText)
	if err != nil {
		return Task{}, false
	}
	return Task{Path: path, Title: title, Fields: fm}, true
}

// put upserts one cache entry. The frontmatter is stored re-encoded so the
// cached copy round-trips through the codec with order and types intact.
func (x *Index) put(task Task, mtime int64) error {
	fmText, err := frontmatter.Encode(task.Fields, "")
	if err != nil {
		return err
	}
	_, err = x.db.Exec(
		`INSERT INTO tasks (path, title, fm, mtime) VALUES (?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET title = excluded.title,
		 fm = excluded.fm, mtime = excluded.mtime`,
		task.Path, task.Title, fmText, mtime,
	)
	if err != nil {
		return fmt.Errorf("index put %s: %w", task.Path, err)
	}
	return nil
}

// evict removes cache entries whose files are no longer enumerated.
func (x *Index) evict(live map[string]bool) error {
	rows, err := x.db.Query(`SELECT path FROM tasks`)
	if err != nil {
		return fmt.Errorf("index scan: %w", err)
	}
	defer rows.Close()

	var stale []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return err
		}
		if !live[path] {
			stale = append(stale, path)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, path := range stale {
		if _, err := x.db.Exec(`DELETE FROM tasks WHERE path = ?`, path); err != nil {
			return fmt.Errorf("index evict %s: %w", path, err)
		}
	}
	return nil
}
