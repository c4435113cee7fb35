// File: internal/analysis/errors.go
package analysis

import (
	"fmt"
	"strings"

	"github.com/xkilldash9x/forkdrift/api/schemas"
)

// UnknownCommitsError reports every new upstream commit whose area could
// not be resolved, catalog and overrides included. The complete list is
// carried so a caller can fix all the gaps in one pass instead of
// iterating one failure at a time.
type UnknownCommitsError struct {
	Commits []*schemas.Commit
}

func (e *UnknownCommitsError) Error() string {
	lines := make([]string, 0, len(e.Commits))
	for _, c := range e.Commits {
		lines = append(lines, fmt.Sprintf("%s %s", c.ShortHash(), c.Shortlog()))
	}
	return fmt.Sprintf("%d commit(s) with unknown areas: %s",
		len(e.Commits), strings.Join(lines, "; "))
}

// DuplicateShortlogError reports two live downstream patches sharing a
// byte-identical shortlog. The tracker cannot tell which one a later
// revert refers to, so this aborts the whole analysis.
type DuplicateShortlogError struct {
	Shortlog string
	First    *schemas.Commit
	Second   *schemas.Commit
}

func (e *DuplicateShortlogError) Error() string {
	return fmt.Sprintf("duplicated commit shortlog %q (%s and %s)",
		e.Shortlog, e.First.ShortHash(), e.Second.ShortHash())
}
