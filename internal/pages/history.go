package pages

import (
	"errors"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

var errFound = errors.New("found")

// history answers last-commit queries for files below a content root.
type history struct {
	mu     sync.Mutex
	repo   *git.Repository
	prefix string // content root relative to the work tree, slash separated
}

func openHistory(root string) (*history, error) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, err
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	top, err := filepath.EvalSymlinks(wt.Filesystem.Root())
	if err != nil {
		return nil, err
	}
	if resolved, err := filepath.EvalSymlinks(absRoot); err == nil {
		absRoot = resolved
	}
	rel, err := filepath.Rel(top, absRoot)
	if err != nil {
		return nil, err
	}
	prefix := filepath.ToSlash(rel)
	if prefix == "." {
		prefix = ""
	}
	return &history{repo: repo, prefix: prefix}, nil
}

// lastCommit returns the committer time of the newest commit touching file,
// or the zero time when the file has no history.
func (h *history) lastCommit(file string) time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := path.Join(h.prefix, file)
	iter, err := h.repo.Log(&git.LogOptions{FileName: &name, Order: git.LogOrderCommitterTime})
	if err != nil {
		return time.Time{}
	}
	defer iter.Close()

	var when time.Time
	_ = iter.ForEach(func(c *object.Commit) error {
		when = c.Committer.When
		return errFound
	})
	return when
}
