// File: api/schemas/analysis.go
package schemas

// Area is a coarse functional category ("Networking", "Build", ...)
// assigned to a commit for grouping in rendered reports.
type Area string

// OutstandingPatch pairs a downstream shortlog with the commit that
// introduced it. The slice holding these preserves insertion order, which
// is the order the patches appear in downstream history.
type OutstandingPatch struct {
	Shortlog string  `json:"shortlog"`
	Commit   *Commit `json:"commit"`
}

// MergeCandidates records the new upstream commits whose shortlogs sit
// within the configured edit distance of one outstanding downstream patch.
// These are guesses for human review, never facts.
type MergeCandidates struct {
	Shortlog string    `json:"shortlog"`
	Upstream []*Commit `json:"upstream"`
}

// RepositoryAnalysis is the immutable aggregate produced by one analysis
// run. Report formatters depend on every field here, so the field set is
// effectively the engine's public contract.
type RepositoryAnalysis struct {
	// AreaCounts maps each area to its number of new upstream patches.
	AreaCounts map[Area]int `json:"area_counts"`
	// AreaPatches maps each area to its new upstream patches, oldest
	// first. Every commit in here carries a resolved area.
	AreaPatches map[Area][]*Commit `json:"area_patches"`
	// RangeStart and RangeEnd delimit the covered upstream range: the
	// oldest and newest new-upstream commits. Both are nil when the
	// upstream side contributed nothing new.
	RangeStart *Commit `json:"range_start"`
	RangeEnd   *Commit `json:"range_end"`
	// Outstanding lists downstream-only patches not yet cancelled by a
	// later revert, in the order they were applied.
	Outstanding []OutstandingPatch `json:"outstanding"`
	// LikelyMerged holds, per outstanding shortlog with at least one
	// candidate, the upstream commits it was probably merged as.
	LikelyMerged []MergeCandidates `json:"likely_merged"`
	// DanglingReverts are downstream reverts whose target shortlog was
	// never outstanding in the analyzed slice of history. Reported, not
	// fatal.
	DanglingReverts []*Commit `json:"dangling_reverts"`
}

// TotalUpstream returns the number of new upstream patches across all
// areas.
func (a *RepositoryAnalysis) TotalUpstream() int {
	total := 0
	for _, n := range a.AreaCounts {
		total += n
	}
	return total
}
