// Package tags implements the tag engine: get, set, list, remove, and clear
// operations over task-file frontmatter.
// Implements: prd005-tag-operations (operation semantics, batch atomicity);
//
//	docs/ARCHITECTURE § Tag Operations.
package tags

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/mesh-intelligence/satchel/internal/frontmatter"
	"github.com/mesh-intelligence/satchel/internal/parse"
	"github.com/mesh-intelligence/satchel/internal/resolve"
	"github.com/mesh-intelligence/satchel/internal/taskfs"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Engine orchestrates the resolver, codec, and value parser over a file
// system. Collaborators are passed in explicitly; the engine holds no
// process-wide state.
type Engine struct {
	fs     taskfs.FS
	res    *resolve.Resolver
	parser *parse.Parser
}

// New returns an Engine over the given collaborators.
func New(fsys taskfs.FS, res *resolve.Resolver, parser *parse.Parser) *Engine {
	return &Engine{fs: fsys, res: res, parser: parser}
}

// load resolves fragment and decodes the task file it names.
func (e *Engine) load(fragment string, scope *types.RepoInfo) (types.TaskFile, error) {
	path, err := e.res.Resolve(fragment, scope)
	if err != nil {
		return types.TaskFile{}, err
	}
	data, err := e.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.TaskFile{}, fmt.Errorf("%w: %s", types.ErrTaskNotFound, path)
		}
		return types.TaskFile{}, fmt.Errorf("%w: read %s: %v", types.ErrIO, path, err)
	}
	fm, body, err := frontmatter.Decode(string(data))
	if err != nil {
		return types.TaskFile{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return types.TaskFile{Path: path, Fields: fm, Body: body}, nil
}

// store encodes and rewrites the task file in a single write.
func (e *Engine) store(t types.TaskFile) error {
	text, err := frontmatter.Encode(t.Fields, t.Body)
	if err != nil {
		return err
	}
	if err := e.fs.WriteFile(t.Path, []byte(text)); err != nil {
		return fmt.Errorf("%w: write %s: %v", types.ErrIO, t.Path, err)
	}
	return nil
}

// Get returns the value of one property. A key absent from the decoded
// frontmatter is a property-not-found error, distinct from file-not-found.
func (e *Engine) Get(fragment string, scope *types.RepoInfo, key string) (types.Value, error) {
	t, err := e.load(fragment, scope)
	if err != nil {
		return types.Value{}, err
	}
	v, ok := t.Fields.Get(key)
	if !ok {
		return types.Value{}, fmt.Errorf("%w: %q", types.ErrPropertyNotFound, key)
	}
	return v, nil
}

// List returns the single resolved task file with its full mapping.
func (e *Engine) List(fragment string, scope *types.RepoInfo) (types.TaskFile, error) {
	return e.load(fragment, scope)
}

// ListAll returns every task file in the scope with its mapping. Files with
// no frontmatter block are skipped, as are files that fail to decode;
// enumeration never fails on individual file contents.
func (e *Engine) ListAll(scope *types.RepoInfo) ([]types.TaskFile, error) {
	paths, err := e.res.Files(scope)
	if err != nil {
		return nil, err
	}
	var out []types.TaskFile
	for _, path := range paths {
		data, err := e.fs.ReadFile(path)
		if err != nil {
			continue
		}
		fm, body, err := frontmatter.Decode(string(data))
		if err != nil || fm.Len() == 0 {
			continue
		}
		out = append(out, types.TaskFile{Path: path, Fields: fm, Body: body})
	}
	return out, nil
}

// Set applies key=value assignment tokens in order and rewrites the file
// once after all of them succeed. The first failing token stops the batch;
// because the single write happens only at the end, a mid-batch failure
// leaves the on-disk file byte-identical to its pre-call content. Setting
// the created field fails once the field exists: it is immutable.
func (e *Engine) Set(fragment string, scope *types.RepoInfo, tokens []string) (types.TaskFile, error) {
	t, err := e.load(fragment, scope)
	if err != nil {
		return types.TaskFile{}, err
	}
	for _, token := range tokens {
		a, err := parse.SplitAssignment(token)
		if err != nil {
			return types.TaskFile{}, err
		}
		if a.Key == types.KeyCreated {
			if _, ok := t.Fields.Get(types.KeyCreated); ok {
				return types.TaskFile{}, fmt.Errorf("%w: %q is immutable", types.ErrProtectedKey, a.Key)
			}
		}
		t.Fields.Set(a.Key, e.parser.Value(a.Raw))
	}
	if err := e.store(t); err != nil {
		return types.TaskFile{}, err
	}
	return t, nil
}

// Remove deletes one property. Removing an absent key is an idempotent
// no-op that leaves the file untouched; removing a protected key fails.
func (e *Engine) Remove(fragment string, scope *types.RepoInfo, key string) (types.TaskFile, error) {
	if types.IsProtected(key) {
		return types.TaskFile{}, fmt.Errorf("%w: %q", types.ErrProtectedKey, key)
	}
	t, err := e.load(fragment, scope)
	if err != nil {
		return types.TaskFile{}, err
	}
	if !t.Fields.Delete(key) {
		return t, nil
	}
	if err := e.store(t); err != nil {
		return types.TaskFile{}, err
	}
	return t, nil
}

// Clear resets the mapping to exactly the protected fields from the
// original file, preserving their order.
func (e *Engine) Clear(fragment string, scope *types.RepoInfo) (types.TaskFile, error) {
	t, err := e.load(fragment, scope)
	if err != nil {
		return types.TaskFile{}, err
	}
	kept := types.NewFrontMatter()
	for _, key := range t.Fields.Keys() {
		if types.IsProtected(key) {
			v, _ := t.Fields.Get(key)
			kept.Set(key, v)
		}
	}
	t.Fields = kept
	if err := e.store(t); err != nil {
		return types.TaskFile{}, err
	}
	return t, nil
}
