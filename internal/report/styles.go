// File: internal/report/styles.go
package report

import (
	"fmt"

	"github.com/xkilldash9x/forkdrift/api/schemas"
)

// highlightsTemplate opens both formats: maintainers fill in the
// placeholder sections by hand before committing the mergeup.
var highlightsTemplate = []string{
	"Highlights",
	"==========",
	"",
	"Important Changes",
	"-----------------",
	"",
	"<Important changes, like API breaks, go here>",
	"",
	"Features",
	"--------",
	"",
	"<New features go here>",
	"",
	"Bug Fixes",
	"---------",
	"",
	"<Notable fixes or notes on large groups of fixes go here>",
	"",
}

// textStyle renders mergeup commit message text, outstanding patches and
// likely-merged warnings included.
type textStyle struct{}

func (textStyle) preamble() []string {
	return append([]string(nil), highlightsTemplate...)
}

func (textStyle) commitLine(c *schemas.Commit) string {
	return fmt.Sprintf("- %s %s", c.ShortHash(), c.Shortlog())
}

func (textStyle) includeOutstanding() bool { return true }

// markdownStyle renders newsletter body text. No outstanding section:
// that bookkeeping is an internal concern, not blog material.
type markdownStyle struct {
	urlBase string
}

func (markdownStyle) preamble() []string {
	return append([]string(nil), highlightsTemplate...)
}

func (s markdownStyle) commitLine(c *schemas.Commit) string {
	if s.urlBase == "" {
		return fmt.Sprintf("- `%s` %s", c.ShortHash(), c.Shortlog())
	}
	return fmt.Sprintf("- [%s](%s%s) %s", c.ShortHash(), s.urlBase, c.Hash, c.Shortlog())
}

func (markdownStyle) includeOutstanding() bool { return false }
