// File: api/schemas/commit.go
package schemas

import (
	"strings"
	"time"
)

// Signature identifies who wrote a commit and when.
type Signature struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	When  time.Time `json:"when"`
}

// Commit is an immutable snapshot of a single commit taken from the
// underlying repository. The analysis engine never holds live object-store
// handles; everything it needs is copied in here once, up front.
type Commit struct {
	// Hash is the full hex object id.
	Hash string `json:"hash"`
	// Message is the complete commit message, shortlog included.
	Message string `json:"message"`
	// Author is the patch author, used for contributor correlation.
	Author Signature `json:"author"`
	// Committed is the commit (not author) timestamp, used as the
	// tiebreaker when ordering topologically equivalent commits.
	Committed time.Time `json:"committed"`
	// ParentCount distinguishes merge commits from ordinary patches.
	ParentCount int `json:"parent_count"`
}

// ShortHash returns the abbreviated hash used in rendered output.
func (c *Commit) ShortHash() string {
	const n = 8
	if len(c.Hash) < n {
		return c.Hash
	}
	return c.Hash[:n]
}

// Shortlog returns the first line of the commit message.
func (c *Commit) Shortlog() string {
	if i := strings.IndexByte(c.Message, '\n'); i >= 0 {
		return c.Message[:i]
	}
	return c.Message
}

// Body returns the message with the shortlog and its trailing blank
// line removed.
func (c *Commit) Body() string {
	i := strings.IndexByte(c.Message, '\n')
	if i < 0 {
		return ""
	}
	return strings.TrimPrefix(c.Message[i+1:], "\n")
}

// IsMerge reports whether the commit has more than one parent.
func (c *Commit) IsMerge() bool {
	return c.ParentCount > 1
}
