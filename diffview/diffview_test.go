package diffview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_EmptySequences(t *testing.T) {
	require.Empty(t, Render(nil, nil))
}

func TestRender_EqualSequences(t *testing.T) {
	lines := []string{"line 1", "line 2"}
	require.Empty(t, Render(lines, lines))
}

func TestRender_EmptyActual(t *testing.T) {
	got := Render([]string{"line 1", "line 2"}, nil)
	require.Equal(t, "-line 1\n-line 2", got)
}

func TestRender_EmptyExpected(t *testing.T) {
	got := Render(nil, []string{"line 1", "line 2"})
	require.Equal(t, "+line 1\n+line 2", got)
}

func TestRender_NothingInCommon(t *testing.T) {
	got := Render([]string{"line 1", "line 2"}, []string{"line A", "line B"})
	require.Equal(t, "-line 1\n-line 2\n+line A\n+line B", got)
}

func TestRender_RemovedSuffix(t *testing.T) {
	got := Render(
		[]string{"same 1", "same 2", "suffix 1", "suffix 2"},
		[]string{"same 1", "same 2"},
	)
	require.Equal(t, " same 1\n same 2\n-suffix 1\n-suffix 2", got)
}

func TestRender_AddedSuffix(t *testing.T) {
	got := Render(
		[]string{"same 1", "same 2"},
		[]string{"same 1", "same 2", "suffix 1", "suffix 2"},
	)
	require.Equal(t, " same 1\n same 2\n+suffix 1\n+suffix 2", got)
}

func TestRender_RemovedPrefix(t *testing.T) {
	got := Render(
		[]string{"prefix 1", "prefix 2", "same 1", "same 2"},
		[]string{"same 1", "same 2"},
	)
	require.Equal(t, "-prefix 1\n-prefix 2\n same 1\n same 2", got)
}

func TestRender_ChangedLine(t *testing.T) {
	got := Render(
		[]string{"same", "old"},
		[]string{"same", "new"},
	)
	require.Equal(t, " same\n-old\n+new", got)
}

func TestUnified_IncludesHeadersAndMarkers(t *testing.T) {
	got, err := Unified("a.valid", "a.valid.new",
		[]string{"x", "y"},
		[]string{"x", "z"},
	)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(got, "--- a.valid"), "got: %q", got)
	require.Contains(t, got, "+++ a.valid.new")
	require.Contains(t, got, "-y")
	require.Contains(t, got, "+z")
}

func TestUnified_EqualSequencesIsEmpty(t *testing.T) {
	got, err := Unified("a", "b", []string{"x"}, []string{"x"})
	require.NoError(t, err)
	require.Empty(t, got)
}
