// Package resolve locates a single task file from a user-supplied name
// fragment within an optionally repo-scoped directory.
// Implements: prd004-task-resolution (match rules, ambiguity reporting);
//
//	docs/ARCHITECTURE § Task File Resolver.
package resolve

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/satchel/internal/frontmatter"
	"github.com/mesh-intelligence/satchel/internal/taskfs"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Resolver finds task files under a root directory. A repo scope narrows
// the search to root/host/owner/repo.
type Resolver struct {
	fs   taskfs.FS
	root string
}

// New returns a Resolver searching under root.
func New(fsys taskfs.FS, root string) *Resolver {
	return &Resolver{fs: fsys, root: root}
}

// ScopeDir returns the directory searched for the given scope: the root
// task directory, or the repo subdirectory when scope is non-nil.
func (r *Resolver) ScopeDir(scope *types.RepoInfo) string {
	if scope == nil {
		return r.root
	}
	return filepath.Join(r.root, scope.Subdir())
}

// Files returns the absolute paths of every markdown file in the scoped
// directory, in directory iteration order. A missing scope directory yields
// an empty list, not an error.
func (r *Resolver) Files(scope *types.RepoInfo) ([]string, error) {
	dir := r.ScopeDir(scope)
	names, err := r.fs.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: list %s: %v", types.ErrIO, dir, err)
	}
	var paths []string
	for _, name := range names {
		if strings.EqualFold(filepath.Ext(name), ".md") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}

// Resolve finds the single task file matching fragment. An absolute path
// bypasses search and is returned as-is. Otherwise the match rules run in
// order within the scoped directory, first rule with exactly one candidate
// wins:
//
//  1. case-insensitive exact file name, with or without the .md suffix
//  2. case-insensitive substring of the file name
//  3. case-insensitive substring of the task title
//
// More than one candidate from a rule is an ambiguous-match error listing
// every candidate; no candidates from any rule is a not-found error.
func (r *Resolver) Resolve(fragment string, scope *types.RepoInfo) (string, error) {
	if filepath.IsAbs(fragment) {
		return fragment, nil
	}

	dir := r.ScopeDir(scope)
	names, err := r.fs.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", types.ErrTaskNotFound, fragment)
		}
		return "", fmt.Errorf("%w: list %s: %v", types.ErrIO, dir, err)
	}

	var files []string
	for _, name := range names {
		if strings.EqualFold(filepath.Ext(name), ".md") {
			files = append(files, name)
		}
	}

	// Rule 1: exact name, .md suffix optional.
	var exact []string
	for _, name := range files {
		if strings.EqualFold(name, fragment) || strings.EqualFold(name, fragment+".md") {
			exact = append(exact, name)
		}
	}
	if path, err := pick(dir, fragment, exact); path != "" || err != nil {
		return path, err
	}

	// Rule 2: substring of the file name.
	frag := strings.ToLower(fragment)
	var byName []string
	for _, name := range files {
		if strings.Contains(strings.ToLower(name), frag) {
			byName = append(byName, name)
		}
	}
	if path, err := pick(dir, fragment, byName); path != "" || err != nil {
		return path, err
	}

	// Rule 3: substring of the decoded title.
	var byTitle []string
	for _, name := range files {
		title, ok := r.title(filepath.Join(dir, name))
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(title), frag) {
			byTitle = append(byTitle, name)
		}
	}
	if path, err := pick(dir, fragment, byTitle); path != "" || err != nil {
		return path, err
	}

	return "", fmt.Errorf("%w: %q", types.ErrTaskNotFound, fragment)
}

// pick turns a candidate list into a result: empty list continues to the
// next rule, one candidate wins, more than one is ambiguous.
func pick(dir, fragment string, candidates []string) (string, error) {
	switch len(candidates) {
	case 0:
		return "", nil
	case 1:
		return filepath.Join(dir, candidates[0]), nil
	}
	paths := make([]string, len(candidates))
	for i, name := range candidates {
		paths[i] = filepath.Join(dir, name)
	}
	return "", &types.AmbiguousMatchError{Fragment: fragment, Candidates: paths}
}

// title decodes the file at path and returns its display title. Unreadable
// or malformed files are skipped rather than failing resolution.
func (r *Resolver) title(path string) (string, bool) {
	data, err := r.fs.ReadFile(path)
	if err != nil {
		return "", false
	}
	fm, body, err := frontmatter.Decode(string(data))
	if err != nil {
		return "", false
	}
	t := types.TaskFile{Path: path, Fields: fm, Body: body}.Title()
	return t, t != ""
}
