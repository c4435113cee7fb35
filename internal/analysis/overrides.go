// File: internal/analysis/overrides.go
package analysis

import (
	"sort"
	"strings"

	"github.com/xkilldash9x/forkdrift/api/schemas"
)

// Overrides are caller-supplied manual classifications that take
// precedence over the built-in catalog: exact hash-prefix overrides are
// checked first, then shortlog-prefix overrides. Both are checked in
// sorted key order so a run is a pure function of its inputs.
type Overrides struct {
	// ByHash maps a commit-id prefix to an area.
	ByHash map[string]schemas.Area
	// ByPrefix maps a shortlog prefix to an area.
	ByPrefix map[string]schemas.Area
}

// Lookup resolves a commit through the override maps alone.
func (o Overrides) Lookup(c *schemas.Commit) (schemas.Area, bool) {
	for _, k := range sortedKeys(o.ByHash) {
		if strings.HasPrefix(c.Hash, k) {
			return o.ByHash[k], true
		}
	}
	shortlog := c.Shortlog()
	for _, k := range sortedKeys(o.ByPrefix) {
		if strings.HasPrefix(shortlog, k) {
			return o.ByPrefix[k], true
		}
	}
	return "", false
}

func sortedKeys(m map[string]schemas.Area) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
