// File: internal/analysis/outstanding.go
package analysis

import (
	"go.uber.org/zap"

	"github.com/xkilldash9x/forkdrift/api/schemas"
)

// outstandingSet is the fold state for revert-aware patch tracking: an
// insertion-ordered map from shortlog to the commit that introduced it.
type outstandingSet struct {
	order []schemas.OutstandingPatch
	index map[string]int
}

func newOutstandingSet() *outstandingSet {
	return &outstandingSet{index: make(map[string]int)}
}

func (s *outstandingSet) get(shortlog string) (*schemas.Commit, bool) {
	i, ok := s.index[shortlog]
	if !ok {
		return nil, false
	}
	return s.order[i].Commit, true
}

func (s *outstandingSet) add(shortlog string, c *schemas.Commit) {
	s.index[shortlog] = len(s.order)
	s.order = append(s.order, schemas.OutstandingPatch{Shortlog: shortlog, Commit: c})
}

func (s *outstandingSet) remove(shortlog string) {
	i, ok := s.index[shortlog]
	if !ok {
		return
	}
	delete(s.index, shortlog)
	s.order = append(s.order[:i], s.order[i+1:]...)
	for j := i; j < len(s.order); j++ {
		s.index[s.order[j].Shortlog] = j
	}
}

// trackOutstanding folds the ordered downstream-only commit list into the
// set of patches not yet cancelled by a later revert. Merge commits are
// skipped: they fold prior analysis runs back into history and carry no
// patch content of their own. A revert whose target shortlog is not live
// is reported and collected, not fatal; histories get reordered and
// partially merged, and aborting on every stale revert would make the
// tool useless on real trees. Two live patches with the same shortlog are
// fatal, since a later revert of that shortlog would be ambiguous.
func trackOutstanding(commits []*schemas.Commit, log *zap.Logger) ([]schemas.OutstandingPatch, []*schemas.Commit, error) {
	set := newOutstandingSet()
	var dangling []*schemas.Commit

	for _, c := range commits {
		if c.IsMerge() {
			continue
		}

		sl := c.Shortlog()
		if IsRevert(sl) {
			target := RevertTarget(sl)
			if _, ok := set.get(target); !ok {
				log.Warn("revert target is not outstanding in this history slice",
					zap.String("commit", c.ShortHash()),
					zap.String("target", target))
				dangling = append(dangling, c)
				continue
			}
			set.remove(target)
			continue
		}

		if first, ok := set.get(sl); ok {
			return nil, nil, &DuplicateShortlogError{Shortlog: sl, First: first, Second: c}
		}
		set.add(sl, c)
	}

	return set.order, dangling, nil
}
