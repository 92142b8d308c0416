package types

import "path/filepath"

// RepoInfo scopes task-file lookup to a repository subdirectory. It is
// supplied by git detection (or flags) and consumed as an opaque value; the
// engine never computes or mutates it.
// Implements: prd001-tag-engine-core R5.
type RepoInfo struct {
	Host  string `json:"host" yaml:"host"`
	Owner string `json:"owner" yaml:"owner"`
	Repo  string `json:"repo" yaml:"repo"`
}

// Slug returns the host/owner/repo form used in messages and output.
func (r RepoInfo) Slug() string {
	return r.Host + "/" + r.Owner + "/" + r.Repo
}

// Subdir returns the scope subdirectory relative to the task root.
func (r RepoInfo) Subdir() string {
	return filepath.Join(r.Host, r.Owner, r.Repo)
}
