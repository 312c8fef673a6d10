package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htmlscrub/htmlscrub/internal/types"
)

func TestBaselineRoundTripAndDiff(t *testing.T) {
	p := filepath.Join(t.TempDir(), "baseline.json")
	_, err := LoadBaseline(p)
	require.Error(t, err)

	docs := []types.Document{
		{Path: "a.html", Raw: "r1", Digest: "d1"},
		{Path: "b.html", Raw: "r2", Digest: "d2"},
		{Path: "c.html", Raw: "r3", Digest: "d3", Cached: true},
	}
	require.NoError(t, SaveBaseline(p, "sha256", docs))
	base, err := LoadBaseline(p)
	require.NoError(t, err)
	assert.Equal(t, "sha256", base.Algorithm)
	assert.Len(t, base.Items, 3)
	assert.False(t, base.Items["c.html"].Cached)

	now := []types.Document{
		{Path: "a.html", Raw: "r1", Digest: "d1"},
		{Path: "b.html", Raw: "r2b", Digest: "d2"},
		{Path: "d.html", Raw: "r4", Digest: "d4"},
	}
	changes := DiffBaseline(now, base)
	got := map[string]types.Status{}
	for _, c := range changes {
		got[c.Path] = c.Status
	}
	assert.Equal(t, map[string]types.Status{
		"a.html": types.StatusUnchanged,
		"b.html": types.StatusMarkup,
		"c.html": types.StatusRemoved,
		"d.html": types.StatusAdded,
	}, got)
	assert.Equal(t, "a.html", changes[0].Path)
}

func TestShouldFail(t *testing.T) {
	markup := []types.Change{{Status: types.StatusMarkup}, {Status: types.StatusUnchanged}}
	content := []types.Change{{Status: types.StatusUnchanged}, {Status: types.StatusContent}}

	assert.False(t, ShouldFail(markup, ""))
	assert.True(t, ShouldFail(markup, "any"))
	assert.True(t, ShouldFail(content, "content"))
	assert.False(t, ShouldFail(content, "none"))
	assert.False(t, ShouldFail(nil, "any"))
}
