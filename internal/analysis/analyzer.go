// File: internal/analysis/analyzer.go
package analysis

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/xkilldash9x/forkdrift/api/schemas"
)

// Source abstracts the repository access layer. The concrete
// implementation lives in internal/gitrepo; tests substitute a mock.
type Source interface {
	// NewUpstreamCommits returns commits reachable from upstreamRef but
	// not from the merge base with downstreamRef, oldest first.
	NewUpstreamCommits(downstreamRef, upstreamRef string) ([]*schemas.Commit, error)
	// DownstreamOnlyCommits returns commits reachable from downstreamRef
	// but not from upstreamRef at all, oldest first. The strict set
	// difference matters: a patch applied long before the merge base may
	// only now be detected as merged upstream.
	DownstreamOnlyCommits(downstreamRef, upstreamRef string) ([]*schemas.Commit, error)
}

// Options tune one Analyzer. The zero value is usable: default catalog,
// no overrides, default threshold, no recognized contributor domains.
type Options struct {
	Catalog       *Catalog
	Overrides     Overrides
	Threshold     int
	AuthorDomains []string
	Logger        *zap.Logger
}

// Analyzer orchestrates one repository analysis run. It is safe to reuse
// for multiple ref pairs against a repository that is not being mutated
// concurrently.
type Analyzer struct {
	source  Source
	catalog *Catalog
	opts    Options
	log     *zap.Logger
}

// NewAnalyzer builds an Analyzer over the given commit source.
func NewAnalyzer(source Source, opts Options) *Analyzer {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{
		source:  source,
		catalog: catalog,
		opts:    opts,
		log:     log.Named("analyzer"),
	}
}

// Analyze runs the whole pipeline for one ref pair: range resolution,
// per-commit area classification, outstanding-patch tracking, and fuzzy
// merge correlation. The returned record is never mutated afterwards.
//
// Every new upstream commit is classified before any failure is raised,
// so an UnknownCommitsError always carries the complete unresolved list.
func (a *Analyzer) Analyze(downstreamRef, upstreamRef string) (*schemas.RepositoryAnalysis, error) {
	upstream, err := a.source.NewUpstreamCommits(downstreamRef, upstreamRef)
	if err != nil {
		return nil, fmt.Errorf("resolving new upstream commits: %w", err)
	}

	areaPatches := make(map[schemas.Area][]*schemas.Commit)
	var unknown []*schemas.Commit
	for _, c := range upstream {
		area, ok := a.classify(c)
		if !ok {
			unknown = append(unknown, c)
			continue
		}
		areaPatches[area] = append(areaPatches[area], c)
	}
	if len(unknown) > 0 {
		return nil, &UnknownCommitsError{Commits: unknown}
	}

	areaCounts := make(map[schemas.Area]int, len(areaPatches))
	for area, patches := range areaPatches {
		areaCounts[area] = len(patches)
	}

	downstream, err := a.source.DownstreamOnlyCommits(downstreamRef, upstreamRef)
	if err != nil {
		return nil, fmt.Errorf("resolving downstream-only commits: %w", err)
	}

	outstanding, dangling, err := trackOutstanding(downstream, a.log)
	if err != nil {
		return nil, err
	}

	result := &schemas.RepositoryAnalysis{
		AreaCounts:      areaCounts,
		AreaPatches:     areaPatches,
		Outstanding:     outstanding,
		LikelyMerged:    likelyMerged(outstanding, upstream, a.opts.AuthorDomains, a.opts.Threshold),
		DanglingReverts: dangling,
	}
	if len(upstream) > 0 {
		result.RangeStart = upstream[0]
		result.RangeEnd = upstream[len(upstream)-1]
	}

	a.log.Debug("analysis complete",
		zap.Int("upstream", len(upstream)),
		zap.Int("downstream", len(downstream)),
		zap.Int("outstanding", len(outstanding)),
		zap.Int("likely_merged", len(result.LikelyMerged)))

	return result, nil
}

// classify resolves one commit's area: hash overrides first, shortlog
// prefix overrides second, then the catalog.
func (a *Analyzer) classify(c *schemas.Commit) (schemas.Area, bool) {
	if area, ok := a.opts.Overrides.Lookup(c); ok {
		return area, true
	}
	return a.catalog.Classify(c.Shortlog())
}
