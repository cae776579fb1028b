// Package golden runs golden-file fixture tests.
//
// A fixture directory holds paired text files: ".input" files feed a
// caller-supplied transformation, and ".valid" files record the expected
// output. Run applies the transformation to every input, compares the
// produced lines against the golden lines, and fails the enclosing test
// once at the end with a rendered diff for every failing case.
//
// # Fixture Discovery
//
// Directories are scanned recursively, breadth first, with entries sorted
// lexicographically per directory, so run order is deterministic. See the
// fixture package for the discovery rules.
//
// # Comparison
//
// Input and golden files are parsed into line sequences (see textutil.Lines);
// comparison is exact per line and per count. The parse drops a single
// trailing line terminator, so a trailing-newline-only difference between
// two files never changes the outcome. An empty input with an empty golden
// is a valid passing case.
//
// A fixtures.yaml manifest in the directory root can relax the comparison:
//
//	normalize: trim   # drop trailing whitespace and blank edge lines
//	unicode: nfc      # compare NFC-normalized text
//	update: false     # do not generate .valid.new files
//
// # Failure Handling
//
// Failures accumulate: a mismatch or a missing golden is recorded and the
// run continues, so one invocation surfaces every broken case. Only after
// all cases are processed does Run raise a single aggregated failure. A
// directory with no input fixtures is a configuration error, never a pass.
//
// A panic inside the callback is not recovered. It indicates a broken test
// setup rather than a fixture mismatch, and recovering it would attribute
// later failures to the wrong fixture.
//
// # Generating Goldens
//
// When a golden file is missing, the case fails and the actual output is
// written alongside the input as "<base>.valid.new". After review, rename
// it (or run "goldrun promote") to accept it as the new golden.
//
// # Usage
//
//	func TestFormatter(t *testing.T) {
//		golden.Run(t, "testdata/format", func(lines []string) []string {
//			return format.Apply(lines)
//		})
//	}
package golden
