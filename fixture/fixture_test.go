package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFile creates a file under dir, creating intermediate directories.
func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

// writeCase creates an input fixture and its golden counterpart.
func writeCase(t *testing.T, dir, inputName, input, golden string) {
	t.Helper()
	writeFile(t, dir, inputName, input)
	base := inputName[:len(inputName)-len(InputSuffix)]
	writeFile(t, dir, base+GoldenSuffix, golden)
}

func TestScan_PairsInputWithGolden(t *testing.T) {
	dir := t.TempDir()
	writeCase(t, dir, "a.input", "in", "out")

	set, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, set.Cases, 1)

	c := set.Cases[0]
	require.Equal(t, "a.input", c.Name)
	require.Equal(t, "a", c.Base)
	require.Equal(t, "a.valid", c.GoldenName)
	require.True(t, c.HasGolden)
	require.False(t, c.HasPending)

	in, err := c.ReadInput()
	require.NoError(t, err)
	require.Equal(t, []string{"in"}, in)

	out, err := c.ReadGolden()
	require.NoError(t, err)
	require.Equal(t, []string{"out"}, out)
}

func TestScan_MissingGolden(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lonely.input", "in")

	set, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, set.Cases, 1)
	require.False(t, set.Cases[0].HasGolden)
	require.Len(t, set.Missing(), 1)
	require.Equal(t, "lonely.input", set.Missing()[0].Name)
}

func TestScan_BreadthFirstSortedOrder(t *testing.T) {
	dir := t.TempDir()
	writeCase(t, dir, "b.input", "", "")
	writeCase(t, dir, "a.input", "", "")
	writeCase(t, dir, "a/x.input", "", "")
	writeCase(t, dir, "a/y.input", "", "")
	writeCase(t, dir, "b/x.input", "", "")
	writeCase(t, dir, "b/sub/deep.input", "", "")

	set, err := Scan(dir)
	require.NoError(t, err)

	var names []string
	for _, c := range set.Cases {
		names = append(names, c.Name)
	}
	require.Equal(t, []string{
		"a.input",
		"b.input",
		"a/x.input",
		"a/y.input",
		"b/x.input",
		"b/sub/deep.input",
	}, names)
}

func TestScan_DetectsOrphanGoldens(t *testing.T) {
	dir := t.TempDir()
	writeCase(t, dir, "a.input", "", "")
	writeFile(t, dir, "stale.valid", "no input for this")

	set, err := Scan(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"stale.valid"}, set.Orphans)
}

func TestScan_DetectsPendingGoldens(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.input", "in")
	writeFile(t, dir, "a.valid.new", "generated")

	set, err := Scan(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"a.valid.new"}, set.Pending)
	require.True(t, set.Cases[0].HasPending)
	// A pending golden is not a golden.
	require.False(t, set.Cases[0].HasGolden)
}

func TestScan_EmptyDirectoryIsConfigurationError(t *testing.T) {
	dir := t.TempDir()

	_, err := Scan(dir)
	require.ErrorIs(t, err, ErrNoFixtures)
}

func TestScan_GoldensOnlyIsConfigurationError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.valid", "golden without input")

	_, err := Scan(dir)
	require.ErrorIs(t, err, ErrNoFixtures)
}

func TestScan_UnreadableDirectory(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNoFixtures)
}

func TestScan_LoadsManifest(t *testing.T) {
	dir := t.TempDir()
	writeCase(t, dir, "a.input", "", "")
	writeFile(t, dir, ManifestName, "normalize: trim\nunicode: nfc\nupdate: false\n")

	set, err := Scan(dir)
	require.NoError(t, err)
	require.True(t, set.Manifest.TrimEnabled())
	require.True(t, set.Manifest.NFCEnabled())
	require.False(t, set.Manifest.UpdateEnabled())
}

func TestScan_ManifestDefaults(t *testing.T) {
	dir := t.TempDir()
	writeCase(t, dir, "a.input", "", "")

	set, err := Scan(dir)
	require.NoError(t, err)
	require.False(t, set.Manifest.TrimEnabled())
	require.False(t, set.Manifest.NFCEnabled())
	require.True(t, set.Manifest.UpdateEnabled())
}

func TestScan_EmptyManifestSelectsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeCase(t, dir, "a.input", "", "")
	writeFile(t, dir, ManifestName, "")

	set, err := Scan(dir)
	require.NoError(t, err)
	require.True(t, set.Manifest.UpdateEnabled())
}

func TestScan_ManifestRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	writeCase(t, dir, "a.input", "", "")
	writeFile(t, dir, ManifestName, "normalise: trim\n")

	_, err := Scan(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), ManifestName)
}

func TestScan_ManifestRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	writeCase(t, dir, "a.input", "", "")
	writeFile(t, dir, ManifestName, "normalize: fuzzy\n")

	_, err := Scan(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "normalize")
}
