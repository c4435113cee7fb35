// File: internal/gitrepo/repository.go
package gitrepo

import (
	"fmt"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"go.uber.org/zap"

	"github.com/xkilldash9x/forkdrift/api/schemas"
)

// AccessError is a repository configuration failure: a path that is not a
// git repository, or a revision that does not resolve. It is fatal and
// never retried.
type AccessError struct {
	Path string
	Ref  string
	Err  error
}

func (e *AccessError) Error() string {
	if e.Ref != "" {
		return fmt.Sprintf("cannot resolve revision %q: %v", e.Ref, e.Err)
	}
	return fmt.Sprintf("cannot open git repository at %q: %v", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// Repository is a read-only handle over a local git repository. It may be
// shared across analyses of different ref pairs, but offers no protection
// against the repository being rewritten mid-walk.
type Repository struct {
	repo *git.Repository
	path string
	log  *zap.Logger
}

// Open opens the repository at path.
func Open(path string, logger *zap.Logger) (*Repository, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, &AccessError{Path: path, Err: err}
	}
	return Wrap(repo, path, logger), nil
}

// Wrap builds a Repository over an already-opened go-git repository.
// Tests use this with in-memory storage.
func Wrap(repo *git.Repository, path string, logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{repo: repo, path: path, log: logger.Named("gitrepo")}
}

// resolve turns a revision-ish string into its commit object.
func (r *Repository) resolve(ref string) (*object.Commit, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return nil, &AccessError{Path: r.path, Ref: ref, Err: err}
	}
	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return nil, &AccessError{Path: r.path, Ref: ref, Err: err}
	}
	return commit, nil
}

// NewUpstreamCommits returns the commits reachable from upstreamRef but
// not from the merge base of the two refs, oldest first. This scopes the
// upstream side to "what changed that we haven't merged yet".
func (r *Repository) NewUpstreamCommits(downstreamRef, upstreamRef string) ([]*schemas.Commit, error) {
	downstream, err := r.resolve(downstreamRef)
	if err != nil {
		return nil, err
	}
	upstream, err := r.resolve(upstreamRef)
	if err != nil {
		return nil, err
	}

	bases, err := downstream.MergeBase(upstream)
	if err != nil {
		return nil, fmt.Errorf("computing merge base of %q and %q: %w", downstreamRef, upstreamRef, err)
	}

	// Unrelated histories have no merge base; then everything upstream
	// counts as new.
	hidden := make(map[plumbing.Hash]struct{})
	for _, base := range bases {
		if err := r.markReachable(base, hidden); err != nil {
			return nil, err
		}
	}

	return r.rangeFrom(upstream, hidden)
}

// DownstreamOnlyCommits returns the commits reachable from downstreamRef
// but not reachable from upstreamRef at all, oldest first. Unlike the
// upstream side this is a strict set difference over the entire history:
// a patch applied long before the merge base may only now be detected as
// merged upstream.
func (r *Repository) DownstreamOnlyCommits(downstreamRef, upstreamRef string) ([]*schemas.Commit, error) {
	downstream, err := r.resolve(downstreamRef)
	if err != nil {
		return nil, err
	}
	upstream, err := r.resolve(upstreamRef)
	if err != nil {
		return nil, err
	}

	hidden := make(map[plumbing.Hash]struct{})
	if err := r.markReachable(upstream, hidden); err != nil {
		return nil, err
	}

	return r.rangeFrom(downstream, hidden)
}

// markReachable adds every commit reachable from tip (tip included) to
// the set.
func (r *Repository) markReachable(tip *object.Commit, set map[plumbing.Hash]struct{}) error {
	stack := []plumbing.Hash{tip.Hash}
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := set[h]; seen {
			continue
		}
		set[h] = struct{}{}

		c, err := r.repo.CommitObject(h)
		if err != nil {
			return fmt.Errorf("loading commit %s: %w", h, err)
		}
		stack = append(stack, c.ParentHashes...)
	}
	return nil
}

// rangeFrom collects the commits reachable from tip minus the hidden set
// and orders them oldest first.
func (r *Repository) rangeFrom(tip *object.Commit, hidden map[plumbing.Hash]struct{}) ([]*schemas.Commit, error) {
	included := make(map[plumbing.Hash]*object.Commit)
	stack := []plumbing.Hash{tip.Hash}
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, hide := hidden[h]; hide {
			continue
		}
		if _, seen := included[h]; seen {
			continue
		}

		c, err := r.repo.CommitObject(h)
		if err != nil {
			return nil, fmt.Errorf("loading commit %s: %w", h, err)
		}
		included[h] = c
		stack = append(stack, c.ParentHashes...)
	}

	ordered := sortOldestFirst(included)

	out := make([]*schemas.Commit, len(ordered))
	for i, c := range ordered {
		out[i] = toSchema(c)
	}
	return out, nil
}

func toSchema(c *object.Commit) *schemas.Commit {
	return &schemas.Commit{
		Hash:    c.Hash.String(),
		Message: c.Message,
		Author: schemas.Signature{
			Name:  c.Author.Name,
			Email: c.Author.Email,
			When:  c.Author.When,
		},
		Committed:   c.Committer.When,
		ParentCount: len(c.ParentHashes),
	}
}
