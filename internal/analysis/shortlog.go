// File: internal/analysis/shortlog.go
package analysis

import (
	"regexp"
	"strings"
)

const revertMarker = `Revert `

// sauceRE matches one or more leading bracketed fork-identification tags,
// e.g. `[FORK] [noup] net: ...`.
var sauceRE = regexp.MustCompile(`^\s*(?:\[[^\]]*\]\s*)+`)

// passthroughPrefixes are namespaces that wrap the real area one level
// deeper: `subsys: net: ...` belongs to whatever `net: ...` belongs to.
var passthroughPrefixes = map[string]struct{}{
	"subsys":  {},
	"include": {},
}

// IsRevert reports whether a shortlog denotes a revert commit.
func IsRevert(shortlog string) bool {
	return strings.HasPrefix(shortlog, revertMarker)
}

// RevertTarget returns the shortlog a revert claims to undo, with the
// surrounding quotes removed. Callers must check IsRevert first.
func RevertTarget(shortlog string) string {
	return strings.Trim(shortlog[len(revertMarker):], `"`)
}

// StripSauce removes leading bracketed fork tags from a shortlog so it can
// be compared against upstream shortlogs, which never carry them.
func StripSauce(shortlog string) string {
	return sauceRE.ReplaceAllString(shortlog, "")
}

// areaPrefix extracts the raw prefix of a shortlog which describes its
// area, recursing through revert markers and pass-through namespaces.
// The boolean is false when the shortlog has no area prefix at all.
func areaPrefix(shortlog string) (string, bool) {
	if shortlog == "" {
		return "", false
	}

	// 'Revert "foo"' belongs to foo's area.
	if IsRevert(shortlog) {
		return areaPrefix(RevertTarget(shortlog))
	}

	// No ':' means no area.
	before, after, found := strings.Cut(shortlog, ":")
	if !found {
		return "", false
	}
	prefix := strings.TrimSpace(before)
	rest := strings.TrimSpace(after)

	if _, ok := passthroughPrefixes[prefix]; ok {
		return areaPrefix(rest)
	}
	return prefix, true
}
