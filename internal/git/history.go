package git

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrNotFound is returned when a path does not exist at a revision.
var ErrNotFound = errors.New("not found at revision")

// Repo reads committed documents. Paths given to and returned by Repo are
// slash-separated and relative to the directory the repo was opened at, which
// may be below the worktree root.
type Repo struct {
	r      *gogit.Repository
	prefix string
}

// validateRoot validates and normalizes a git repository root path.
// Returns the cleaned absolute path or an error if invalid.
func validateRoot(root string) (string, error) {
	// Check for null bytes (potential injection)
	if strings.ContainsRune(root, 0) {
		return "", fmt.Errorf("invalid path: contains null byte")
	}

	cleaned := filepath.Clean(root)
	abs, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("cannot access path %q: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory: %s", root)
	}

	return abs, nil
}

// Open finds the repository containing root, searching parent directories.
func Open(root string) (*Repo, error) {
	validRoot, err := validateRoot(root)
	if err != nil {
		return nil, err
	}
	r, err := gogit.PlainOpenWithOptions(validRoot, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", root, err)
	}
	repo := &Repo{r: r}
	if wt, err := r.Worktree(); err == nil {
		top := wt.Filesystem.Root()
		if resolved, err := filepath.EvalSymlinks(top); err == nil {
			top = resolved
		}
		if resolved, err := filepath.EvalSymlinks(validRoot); err == nil {
			validRoot = resolved
		}
		if rel, err := filepath.Rel(top, validRoot); err == nil && rel != "." {
			repo.prefix = filepath.ToSlash(rel)
		}
	}
	return repo, nil
}

func (r *Repo) tree(rev string) (*object.Tree, error) {
	h, err := r.r.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", rev, err)
	}
	c, err := r.r.CommitObject(*h)
	if err != nil {
		return nil, fmt.Errorf("commit %s: %w", rev, err)
	}
	t, err := c.Tree()
	if err != nil {
		return nil, fmt.Errorf("tree of %s: %w", rev, err)
	}
	return t, nil
}

func (r *Repo) full(rel string) string {
	if r.prefix == "" {
		return rel
	}
	return path.Join(r.prefix, rel)
}

// ReadFile returns the content of rel at rev.
func (r *Repo) ReadFile(rev, rel string) ([]byte, error) {
	t, err := r.tree(rev)
	if err != nil {
		return nil, err
	}
	f, err := t.File(r.full(rel))
	if errors.Is(err, object.ErrFileNotFound) {
		return nil, fmt.Errorf("%s: %w", rel, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return readBlob(f)
}

// Files returns the content of every file at rev for which match reports
// true. A nil match selects everything.
func (r *Repo) Files(rev string, match func(rel string) bool) (map[string][]byte, error) {
	t, err := r.tree(rev)
	if err != nil {
		return nil, err
	}
	out := map[string][]byte{}
	err = t.Files().ForEach(func(f *object.File) error {
		rel := f.Name
		if r.prefix != "" {
			if !strings.HasPrefix(rel, r.prefix+"/") {
				return nil
			}
			rel = strings.TrimPrefix(rel, r.prefix+"/")
		}
		if !f.Mode.IsFile() || (match != nil && !match(rel)) {
			return nil
		}
		b, err := readBlob(f)
		if err != nil {
			return fmt.Errorf("%s: %w", rel, err)
		}
		out[rel] = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func readBlob(f *object.File) ([]byte, error) {
	rd, err := f.Reader()
	if err != nil {
		return nil, err
	}
	defer rd.Close()
	return io.ReadAll(rd)
}

// Head returns the commit hash and short branch name of HEAD. The branch is
// "HEAD" when detached.
func (r *Repo) Head() (commit, branch string, err error) {
	ref, err := r.r.Head()
	if err != nil {
		return "", "", err
	}
	branch = "HEAD"
	if ref.Name().IsBranch() {
		branch = ref.Name().Short()
	}
	return ref.Hash().String(), branch, nil
}

// RepoMetadata returns (repo, commit, branch) best-effort for the given root.
// Empty strings are returned on failure.
func RepoMetadata(root string) (string, string, string) {
	r, err := Open(root)
	if err != nil {
		return "", "", ""
	}
	repo := ""
	if remote, err := r.r.Remote("origin"); err == nil && len(remote.Config().URLs) > 0 {
		s := strings.TrimSuffix(remote.Config().URLs[0], ".git")
		// keep owner/name when possible
		if i := strings.LastIndex(s, ":"); i >= 0 {
			s = s[i+1:]
		}
		if i := strings.Index(s, "github.com/"); i >= 0 {
			s = s[i+len("github.com/"):]
		}
		repo = strings.TrimPrefix(s, "//")
	}
	commit, branch, _ := r.Head()
	return repo, commit, branch
}
