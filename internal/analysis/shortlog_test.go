package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRevert(t *testing.T) {
	t.Parallel()
	assert.True(t, IsRevert(`Revert "net: fix checksum"`))
	assert.False(t, IsRevert("net: fix checksum"))
	assert.False(t, IsRevert(`revert "net: fix checksum"`), "the marker is case sensitive, matching git's own output")
	assert.False(t, IsRevert(""))
}

func TestRevertTarget(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		shortlog string
		want     string
	}{
		{"quoted", `Revert "net: fix checksum"`, "net: fix checksum"},
		{"unquoted", "Revert net: fix checksum", "net: fix checksum"},
		{"nested revert", `Revert "Revert "net: fix checksum""`, `Revert "Revert "net: fix checksum`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RevertTarget(tt.shortlog))
		})
	}
}

func TestStripSauce(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		shortlog string
		want     string
	}{
		{"single tag", "[FORK] net: fix checksum", "net: fix checksum"},
		{"stacked tags", "[FORK] [noup] net: fix checksum", "net: fix checksum"},
		{"leading space", "  [FORK] net: fix checksum", "net: fix checksum"},
		{"no tag", "net: fix checksum", "net: fix checksum"},
		{"empty tag", "[] net: fix checksum", "net: fix checksum"},
		{"bracket mid-line untouched", "net: support [RFC 3514] evil bit", "net: support [RFC 3514] evil bit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripSauce(tt.shortlog))
		})
	}
}
