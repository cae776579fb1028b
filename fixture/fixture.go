// Package fixture discovers and pairs golden-file test fixtures.
//
// A fixture case is a pair of files sharing a base name: an input file with
// the ".input" suffix and a golden file with the ".valid" suffix. A pending
// golden carries the ".valid.new" suffix and is produced by the harness when
// a golden is missing; it is promoted to ".valid" once reviewed.
//
// The suffix convention is fixed. Changing it would break every fixture
// directory already on disk.
package fixture

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goldrun/goldrun/textutil"
)

// Fixture file suffixes. These are load-bearing for on-disk compatibility.
const (
	InputSuffix   = ".input"
	GoldenSuffix  = ".valid"
	PendingSuffix = ".valid.new"
)

// ErrNoFixtures reports a scanned directory that contains no input
// fixtures. This is a configuration error: a typo'd directory path must
// never look like a passing run.
var ErrNoFixtures = errors.New("no input fixtures found")

// Case is one discovered input fixture and its golden counterpart.
type Case struct {
	// Name is the slash-separated path of the input file relative to the
	// scanned root, including the ".input" suffix. It identifies the case
	// in reports.
	Name string

	// Base is Name without the ".input" suffix.
	Base string

	InputPath string

	// GoldenName and GoldenPath locate the expected-output file, whether
	// or not it exists. HasGolden records whether it was seen during the
	// scan.
	GoldenName string
	GoldenPath string
	HasGolden  bool

	// PendingName and PendingPath locate the ".valid.new" file written for
	// a missing golden. HasPending records whether one was seen.
	PendingName string
	PendingPath string
	HasPending  bool
}

// ReadInput reads and parses the input file into lines.
func (c Case) ReadInput() ([]string, error) {
	return ReadLines(c.InputPath)
}

// ReadGolden reads and parses the golden file into lines.
func (c Case) ReadGolden() ([]string, error) {
	return ReadLines(c.GoldenPath)
}

// ReadPending reads and parses the pending golden file into lines.
func (c Case) ReadPending() ([]string, error) {
	return ReadLines(c.PendingPath)
}

// Set is the result of scanning a fixture directory.
type Set struct {
	// Dir is the scanned root.
	Dir string

	// Manifest holds the directory's configuration, or the zero value when
	// no fixtures.yaml is present.
	Manifest Manifest

	// Cases holds every discovered input fixture in run order: breadth
	// first over directories, entries sorted lexicographically within each
	// directory.
	Cases []Case

	// Orphans lists golden files (relative names) that have no matching
	// input fixture.
	Orphans []string

	// Pending lists every ".valid.new" file (relative names) found in the
	// tree, whether or not its case still exists.
	Pending []string
}

// Missing returns the cases whose golden file was not found.
func (s *Set) Missing() []Case {
	var out []Case
	for _, c := range s.Cases {
		if !c.HasGolden {
			out = append(out, c)
		}
	}
	return out
}

// Scan discovers fixture cases under dir.
//
// The walk is recursive and breadth first: files in dir come before files
// in its subdirectories, and within each directory entries are visited in
// lexicographic order. Repeated scans of an unchanged tree therefore yield
// an identical case order, which keeps harness output reproducible.
//
// Scan fails with a configuration error if dir cannot be read, if the
// manifest is malformed, or if no input fixture is found anywhere in the
// tree (ErrNoFixtures).
func Scan(dir string) (*Set, error) {
	manifest, err := loadManifest(dir)
	if err != nil {
		return nil, err
	}

	set := &Set{Dir: dir, Manifest: manifest}
	goldens := make(map[string]bool)  // base name -> seen
	pendings := make(map[string]bool) // base name -> seen
	var orphanOrder []string

	type walkDir struct {
		rel string
		abs string
	}
	queue := []walkDir{{rel: "", abs: dir}}

	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(next.abs)
		if err != nil {
			return nil, fmt.Errorf("reading fixture directory: %w", err)
		}
		// os.ReadDir returns entries sorted by name.
		for _, entry := range entries {
			rel := entry.Name()
			if next.rel != "" {
				rel = next.rel + "/" + entry.Name()
			}
			abs := filepath.Join(next.abs, entry.Name())

			if entry.IsDir() {
				queue = append(queue, walkDir{rel: rel, abs: abs})
				continue
			}

			switch {
			case strings.HasSuffix(rel, InputSuffix):
				base := strings.TrimSuffix(rel, InputSuffix)
				set.Cases = append(set.Cases, Case{
					Name:        rel,
					Base:        base,
					InputPath:   abs,
					GoldenName:  base + GoldenSuffix,
					GoldenPath:  filepath.Join(dir, filepath.FromSlash(base+GoldenSuffix)),
					PendingName: base + PendingSuffix,
					PendingPath: filepath.Join(dir, filepath.FromSlash(base+PendingSuffix)),
				})
			case strings.HasSuffix(rel, PendingSuffix):
				pendings[strings.TrimSuffix(rel, PendingSuffix)] = true
				set.Pending = append(set.Pending, rel)
			case strings.HasSuffix(rel, GoldenSuffix):
				goldens[strings.TrimSuffix(rel, GoldenSuffix)] = true
				orphanOrder = append(orphanOrder, rel)
			}
		}
	}

	if len(set.Cases) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFixtures, dir)
	}

	inputs := make(map[string]bool, len(set.Cases))
	for i := range set.Cases {
		c := &set.Cases[i]
		inputs[c.Base] = true
		c.HasGolden = goldens[c.Base]
		c.HasPending = pendings[c.Base]
	}
	for _, rel := range orphanOrder {
		if !inputs[strings.TrimSuffix(rel, GoldenSuffix)] {
			set.Orphans = append(set.Orphans, rel)
		}
	}

	return set, nil
}

// ReadLines reads a file and parses it into the harness line model.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return textutil.Lines(string(data)), nil
}
