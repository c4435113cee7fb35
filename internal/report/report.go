// File: internal/report/report.go
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xkilldash9x/forkdrift/api/schemas"
)

// Config carries the rendering knobs shared by all formats.
type Config struct {
	// CommitURLBase, when set, turns commit hashes into links in formats
	// that support them, e.g. "https://github.com/org/repo/commit/".
	CommitURLBase string
}

// Renderer turns a RepositoryAnalysis into one report format.
type Renderer interface {
	Render(a *schemas.RepositoryAnalysis) (string, error)
}

// style is the per-format strategy plugged into the shared line renderer:
// a preamble, a commit-line formatter, and whether the downstream
// outstanding section belongs in the output.
type style interface {
	preamble() []string
	commitLine(c *schemas.Commit) string
	includeOutstanding() bool
}

// renderers is the full set of supported formats. Keeping this an
// explicit static table makes the supported set auditable and the lookup
// boring.
var renderers = map[string]func(Config) Renderer{
	"text":     func(Config) Renderer { return &lineRenderer{style: textStyle{}} },
	"txt":      func(Config) Renderer { return &lineRenderer{style: textStyle{}} },
	"markdown": func(cfg Config) Renderer { return &lineRenderer{style: markdownStyle{urlBase: cfg.CommitURLBase}} },
	"md":       func(cfg Config) Renderer { return &lineRenderer{style: markdownStyle{urlBase: cfg.CommitURLBase}} },
	"json":     func(Config) Renderer { return jsonRenderer{} },
}

// New returns a renderer for the named format.
func New(format string, cfg Config) (Renderer, error) {
	mk, ok := renderers[format]
	if !ok {
		return nil, fmt.Errorf("unsupported report format %q (choices: %s)",
			format, strings.Join(Formats(), ", "))
	}
	return mk(cfg), nil
}

// Formats lists the supported format names.
func Formats() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// lineRenderer assembles the human-readable formats line by line.
type lineRenderer struct {
	style style
}

// Render produces the complete report text.
func (r *lineRenderer) Render(a *schemas.RepositoryAnalysis) (string, error) {
	lines := r.style.preamble()
	lines = append(lines, r.individualChanges(a)...)
	if r.style.includeOutstanding() {
		lines = append(lines, r.outstanding(a)...)
	}
	return strings.Join(lines, "\n"), nil
}

func (r *lineRenderer) individualChanges(a *schemas.RepositoryAnalysis) []string {
	lines := []string{
		"Individual Changes",
		"==================",
		"",
	}
	lines = append(lines, r.areasSummary(a)...)

	for _, area := range sortedAreas(a.AreaPatches) {
		patches := a.AreaPatches[area]
		lines = append(lines, fmt.Sprintf("%s (%d):", area, len(patches)), "")
		for _, c := range patches {
			lines = append(lines, r.style.commitLine(c))
		}
		lines = append(lines, "")
	}
	return lines
}

func (r *lineRenderer) areasSummary(a *schemas.RepositoryAnalysis) []string {
	lines := []string{
		fmt.Sprintf("Patches by area (%d patches total):", a.TotalUpstream()),
		"",
	}
	for _, area := range sortedAreas(a.AreaPatches) {
		lines = append(lines, fmt.Sprintf("- %s: %d", area, a.AreaCounts[area]))
	}
	lines = append(lines, "")
	return lines
}

func (r *lineRenderer) outstanding(a *schemas.RepositoryAnalysis) []string {
	lines := []string{
		"Outstanding Downstream Patches",
		"==============================",
		"",
	}
	for _, p := range a.Outstanding {
		lines = append(lines, fmt.Sprintf("- %s %s", p.Commit.ShortHash(), p.Shortlog))
	}
	lines = append(lines, "")

	if len(a.DanglingReverts) > 0 {
		lines = append(lines,
			"# Reverts with no matching outstanding patch:",
			"#")
		for _, c := range a.DanglingReverts {
			lines = append(lines, fmt.Sprintf("# - %s %s", c.ShortHash(), c.Shortlog()))
		}
		lines = append(lines, "#")
	}

	if len(a.LikelyMerged) == 0 {
		return lines
	}

	lines = append(lines,
		"# Likely merged downstream patches:",
		"# IMPORTANT: You probably need to revert these and re-run!",
		"#            Make sure to check the above as well; these are",
		"#            guesses that aren't always right.",
		"#")
	for _, m := range a.LikelyMerged {
		lines = append(lines, fmt.Sprintf("# - %q, likely merged as one of:", m.Shortlog))
		for _, c := range m.Upstream {
			lines = append(lines, fmt.Sprintf("#\t- %s %s", c.ShortHash(), c.Shortlog()))
		}
		lines = append(lines, "#")
	}
	return lines
}

func sortedAreas(m map[schemas.Area][]*schemas.Commit) []schemas.Area {
	areas := make([]schemas.Area, 0, len(m))
	for a := range m {
		areas = append(areas, a)
	}
	sort.Slice(areas, func(i, j int) bool { return areas[i] < areas[j] })
	return areas
}
