package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUniqueness(t *testing.T) {
	g := NewGenerator()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		s := g.GenerateString()
		require.False(t, seen[s], "duplicate ULID %s", s)
		seen[s] = true
	}
}

func TestPrefixedIDs(t *testing.T) {
	p := NewProfileID()
	assert.True(t, strings.HasPrefix(p.String(), "prof_"))
	assert.True(t, IsValid(strings.TrimPrefix(p.String(), "prof_")))

	d := NewDownloadID()
	assert.True(t, strings.HasPrefix(d.String(), "dl_"))
}

func TestGenerateSortable(t *testing.T) {
	g := NewGenerator()
	a := g.GenerateString()
	b := g.GenerateString()
	// Same-millisecond ULIDs may tie on the timestamp component but
	// must never sort backwards.
	assert.LessOrEqual(t, a[:10], b[:10])
}
