// File: internal/analysis/match.go
package analysis

import (
	"strings"

	"github.com/xkilldash9x/forkdrift/api/schemas"
)

// DefaultThreshold is the edit distance below which two shortlogs are
// considered a likely match. Distances equal to the threshold do not
// match.
const DefaultThreshold = 3

// isDownstreamAuthor reports whether the commit was authored by an
// identity recognized as a downstream contributor, by email domain
// suffix.
func isDownstreamAuthor(c *schemas.Commit, domains []string) bool {
	email := strings.ToLower(c.Author.Email)
	for _, d := range domains {
		if strings.HasSuffix(email, strings.ToLower(d)) {
			return true
		}
	}
	return false
}

// likelyMerged correlates outstanding downstream patches against new
// upstream commits authored by known downstream contributors. An
// upstream commit is a candidate when its shortlog sits strictly below
// the edit-distance threshold from the sauce-stripped outstanding
// shortlog. Candidate order follows the upstream commit list; shortlogs
// with no candidates are omitted entirely. The result narrows a search
// space for human review, nothing more.
func likelyMerged(outstanding []schemas.OutstandingPatch, upstream []*schemas.Commit, domains []string, threshold int) []schemas.MergeCandidates {
	var byDownstream []*schemas.Commit
	for _, c := range upstream {
		if isDownstreamAuthor(c, domains) {
			byDownstream = append(byDownstream, c)
		}
	}

	var out []schemas.MergeCandidates
	for _, p := range outstanding {
		stripped := StripSauce(p.Shortlog)
		var matches []*schemas.Commit
		for _, c := range byDownstream {
			if levenshtein(stripped, c.Shortlog()) < threshold {
				matches = append(matches, c)
			}
		}
		if len(matches) > 0 {
			out = append(out, schemas.MergeCandidates{Shortlog: p.Shortlog, Upstream: matches})
		}
	}
	return out
}
