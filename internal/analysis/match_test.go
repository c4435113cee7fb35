package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/forkdrift/api/schemas"
)

func upstreamCommit(n int, shortlog, email string) *schemas.Commit {
	c := testCommit(n, shortlog)
	c.Author.Email = email
	return c
}

func outstandingFixture(shortlogs ...string) []schemas.OutstandingPatch {
	out := make([]schemas.OutstandingPatch, 0, len(shortlogs))
	for i, sl := range shortlogs {
		out = append(out, schemas.OutstandingPatch{Shortlog: sl, Commit: testCommit(100 + i, sl)})
	}
	return out
}

func TestLikelyMerged_ThresholdIsExclusive(t *testing.T) {
	t.Parallel()
	outstanding := outstandingFixture("[FORK] net: fix checksum")
	domains := []string{"@fork.example.com"}

	// Distance 2 from the sauce-stripped shortlog: below a threshold of 3.
	near := upstreamCommit(1, "net: Fix checksum.", "alice@fork.example.com")
	// Distance exactly 3: not a candidate at the default threshold.
	atEdge := upstreamCommit(2, "net: Fix checksums.", "alice@fork.example.com")

	got := likelyMerged(outstanding, []*schemas.Commit{near, atEdge}, domains, DefaultThreshold)
	require.Len(t, got, 1)
	assert.Equal(t, "[FORK] net: fix checksum", got[0].Shortlog)
	assert.Equal(t, []*schemas.Commit{near}, got[0].Upstream)

	// Raising the threshold by one admits the edge case too.
	got = likelyMerged(outstanding, []*schemas.Commit{near, atEdge}, domains, DefaultThreshold+1)
	require.Len(t, got, 1)
	assert.Equal(t, []*schemas.Commit{near, atEdge}, got[0].Upstream)
}

func TestLikelyMerged_OnlyDownstreamAuthorsConsidered(t *testing.T) {
	t.Parallel()
	outstanding := outstandingFixture("[FORK] net: fix checksum")

	// Identical shortlog, but authored by someone outside the fork.
	outsider := upstreamCommit(1, "net: fix checksum", "bob@upstream.example.org")

	got := likelyMerged(outstanding, []*schemas.Commit{outsider}, []string{"@fork.example.com"}, DefaultThreshold)
	assert.Empty(t, got)
}

func TestLikelyMerged_DomainMatchIsCaseInsensitive(t *testing.T) {
	t.Parallel()
	outstanding := outstandingFixture("[FORK] net: fix checksum")
	c := upstreamCommit(1, "net: fix checksum", "Alice@Fork.Example.COM")

	got := likelyMerged(outstanding, []*schemas.Commit{c}, []string{"@fork.example.com"}, DefaultThreshold)
	require.Len(t, got, 1)
}

func TestLikelyMerged_NoCandidatesOmitsEntry(t *testing.T) {
	t.Parallel()
	outstanding := outstandingFixture(
		"[FORK] net: fix checksum",
		"[FORK] drivers: uart: vendor quirk",
	)
	c := upstreamCommit(1, "net: fix checksum", "alice@fork.example.com")

	got := likelyMerged(outstanding, []*schemas.Commit{c}, []string{"@fork.example.com"}, DefaultThreshold)
	require.Len(t, got, 1, "the unmatched shortlog must not appear with an empty candidate list")
	assert.Equal(t, "[FORK] net: fix checksum", got[0].Shortlog)
}

func TestLikelyMerged_NoDomainsMeansNoCandidates(t *testing.T) {
	t.Parallel()
	outstanding := outstandingFixture("[FORK] net: fix checksum")
	c := upstreamCommit(1, "net: fix checksum", "alice@fork.example.com")

	got := likelyMerged(outstanding, []*schemas.Commit{c}, nil, DefaultThreshold)
	assert.Empty(t, got)
}
