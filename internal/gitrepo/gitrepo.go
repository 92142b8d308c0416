// Package gitrepo detects the enclosing git repository and derives the
// host/owner/repo scope triple from its origin remote. The tag engine
// consumes the result as an opaque value.
// Implements: prd007-repo-detection;
//
//	docs/ARCHITECTURE § Repo Detection.
package gitrepo

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Detection errors. Callers that only want best-effort scoping treat both
// as "use the global scope".
var (
	ErrNotInRepo = errors.New("not inside a git repository")
	ErrNoOrigin  = errors.New("repository has no origin remote")
)

// Detect walks up from dir looking for a .git directory (or worktree file)
// and returns the scope parsed from the origin remote URL.
func Detect(dir string) (*types.RepoInfo, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	current := abs
	for {
		gitPath := filepath.Join(current, ".git")
		if info, err := os.Stat(gitPath); err == nil {
			gitDir := gitPath
			if !info.IsDir() {
				gitDir, err = worktreeGitDir(gitPath)
				if err != nil {
					return nil, err
				}
			}
			url, err := originURL(filepath.Join(gitDir, "config"))
			if err != nil {
				return nil, err
			}
			info, err := ParseRemoteURL(url)
			if err != nil {
				return nil, err
			}
			return &info, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return nil, ErrNotInRepo
		}
		current = parent
	}
}

// worktreeGitDir resolves a .git worktree file ("gitdir: <path>") to the
// main repository's git directory, following the commondir indirection.
func worktreeGitDir(gitFile string) (string, error) {
	data, err := os.ReadFile(gitFile)
	if err != nil {
		return "", err
	}
	line := strings.TrimSpace(string(data))
	target, ok := strings.CutPrefix(line, "gitdir:")
	if !ok {
		return "", fmt.Errorf("malformed .git file %s", gitFile)
	}
	gitDir := strings.TrimSpace(target)
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(filepath.Dir(gitFile), gitDir)
	}

	// Worktree git dirs point at the shared dir through a commondir file.
	if data, err := os.ReadFile(filepath.Join(gitDir, "commondir")); err == nil {
		common := strings.TrimSpace(string(data))
		if !filepath.IsAbs(common) {
			common = filepath.Join(gitDir, common)
		}
		gitDir = filepath.Clean(common)
	}
	return gitDir, nil
}

// originURL scans a git config file for the url of the origin remote.
func originURL(configPath string) (string, error) {
	f, err := os.Open(configPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoOrigin, err)
	}
	defer f.Close()

	inOrigin := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "[") {
			inOrigin = line == `[remote "origin"]`
			continue
		}
		if !inOrigin {
			continue
		}
		if value, ok := strings.CutPrefix(line, "url"); ok {
			value = strings.TrimSpace(value)
			if url, ok := strings.CutPrefix(value, "="); ok {
				return strings.TrimSpace(url), nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", ErrNoOrigin
}

// ParseRemoteURL extracts host, owner, and repo from a git remote URL.
// Supported forms: scp-like (git@host:owner/repo.git), ssh://, http(s)://,
// and git://.
func ParseRemoteURL(url string) (types.RepoInfo, error) {
	url = strings.TrimSpace(url)

	var host, path string
	switch {
	case strings.Contains(url, "://"):
		rest := url[strings.Index(url, "://")+3:]
		if at := strings.Index(rest, "@"); at >= 0 {
			rest = rest[at+1:]
		}
		slash := strings.Index(rest, "/")
		if slash < 0 {
			return types.RepoInfo{}, fmt.Errorf("unsupported remote url %q", url)
		}
		host, path = rest[:slash], rest[slash+1:]
		// Drop any :port from the host.
		if colon := strings.Index(host, ":"); colon >= 0 {
			host = host[:colon]
		}
	case strings.Contains(url, "@") && strings.Contains(url, ":"):
		// scp-like syntax: git@host:owner/repo.git
		rest := url[strings.Index(url, "@")+1:]
		colon := strings.Index(rest, ":")
		host, path = rest[:colon], rest[colon+1:]
	default:
		return types.RepoInfo{}, fmt.Errorf("unsupported remote url %q", url)
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	segments := strings.Split(path, "/")
	if len(segments) < 2 || host == "" {
		return types.RepoInfo{}, fmt.Errorf("unsupported remote url %q", url)
	}
	// Deeply nested paths (e.g. GitLab subgroups) keep the last two segments.
	owner := segments[len(segments)-2]
	repo := segments[len(segments)-1]
	if owner == "" || repo == "" {
		return types.RepoInfo{}, fmt.Errorf("unsupported remote url %q", url)
	}
	return types.RepoInfo{Host: host, Owner: owner, Repo: repo}, nil
}
