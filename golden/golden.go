package golden

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/goldrun/goldrun/diffview"
	"github.com/goldrun/goldrun/fixture"
	"github.com/goldrun/goldrun/textutil"
)

// Callback transforms an ordered sequence of input lines into output lines.
// It must be deterministic for a given input; the harness assumes
// referential transparency and cannot detect a non-deterministic callback.
type Callback func(lines []string) []string

// T is the subset of testing.T the harness needs to abort a test.
type T interface {
	Helper()
	Logf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// Recorder persists a run report. Implemented by runlog.Store.
type Recorder interface {
	Record(ctx context.Context, dir string, report *Report) (string, error)
}

type config struct {
	trim     bool
	nfc      bool
	update   bool
	recorder Recorder
}

// Option overrides a manifest setting for one run.
type Option func(*config)

// WithTrimNormalize selects whitespace-forgiving comparison: trailing
// whitespace and blank edge lines are ignored on both sides.
func WithTrimNormalize() Option {
	return func(c *config) { c.trim = true }
}

// WithUnicodeNFC compares NFC-normalized lines.
func WithUnicodeNFC() Option {
	return func(c *config) { c.nfc = true }
}

// WithoutUpdate disables ".valid.new" generation for missing goldens.
func WithoutUpdate() Option {
	return func(c *config) { c.update = false }
}

// WithRecorder persists the run report through rec after all cases have
// been processed. A recording failure does not change the run outcome.
func WithRecorder(rec Recorder) Option {
	return func(c *config) { c.recorder = rec }
}

// Run executes every fixture case under dir with fn and fails t if any
// case mismatches, any golden is missing, or the directory is structurally
// invalid. All failures in one invocation are reported together.
func Run(t T, dir string, fn Callback, opts ...Option) {
	t.Helper()

	report, err := RunToReport(dir, fn, opts...)
	if report == nil {
		t.Fatalf("golden: %v", err)
		return
	}
	if err != nil {
		// Recording failed; the comparison outcome still stands.
		t.Logf("golden: %v", err)
	}

	for _, res := range report.Results {
		if res.Status == StatusPass {
			t.Logf("passed: %s", res.Name)
		}
	}
	if !report.OK() {
		t.Fatalf("golden fixtures failed:\n\n%s", report.Render())
	}
}

// RunToReport is the programmatic variant of Run. It returns the full run
// report instead of aborting a test.
//
// The returned error is nil for an ordinary run, whatever the comparison
// outcomes. A nil report signals that the run could not start or continue:
// configuration errors (unreadable directory, malformed manifest, no
// fixtures found - see fixture.ErrNoFixtures) and broken setup (unreadable
// fixture file) are reported this way. A non-nil report with a non-nil
// error means only the optional recording step failed.
func RunToReport(dir string, fn Callback, opts ...Option) (*Report, error) {
	set, err := fixture.Scan(dir)
	if err != nil {
		return nil, err
	}

	cfg := config{
		trim:   set.Manifest.TrimEnabled(),
		nfc:    set.Manifest.NFCEnabled(),
		update: set.Manifest.UpdateEnabled(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	report := &Report{Dir: dir}
	for _, c := range set.Cases {
		res, err := runCase(c, fn, cfg)
		if err != nil {
			return nil, err
		}
		report.Results = append(report.Results, res)
	}

	if cfg.recorder != nil {
		if _, err := cfg.recorder.Record(context.Background(), dir, report); err != nil {
			return report, fmt.Errorf("recording run: %w", err)
		}
	}
	return report, nil
}

// runCase processes a single fixture pair. Errors are reserved for broken
// setup (unreadable files); comparison outcomes go into the result.
func runCase(c fixture.Case, fn Callback, cfg config) (CaseResult, error) {
	input, err := c.ReadInput()
	if err != nil {
		return CaseResult{}, fmt.Errorf("reading input %s: %w", c.Name, err)
	}

	actual := fn(cfg.normalize(input))
	actual = cfg.normalize(actual)

	expected, err := c.ReadGolden()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return CaseResult{}, fmt.Errorf("reading golden %s: %w", c.GoldenName, err)
		}
		res := CaseResult{
			Name:       c.Name,
			GoldenFile: c.GoldenName,
			Status:     StatusMissing,
			Actual:     actual,
		}
		if cfg.update {
			if err := writePending(c.PendingPath, actual); err != nil {
				return CaseResult{}, fmt.Errorf("writing %s: %w", c.PendingName, err)
			}
			res.PendingFile = c.PendingName
		}
		return res, nil
	}

	expected = cfg.normalize(expected)
	if slices.Equal(expected, actual) {
		return CaseResult{Name: c.Name, GoldenFile: c.GoldenName, Status: StatusPass}, nil
	}
	return CaseResult{
		Name:       c.Name,
		GoldenFile: c.GoldenName,
		Status:     StatusMismatch,
		Expected:   expected,
		Actual:     actual,
		Diff:       diffview.Render(expected, actual),
	}, nil
}

// normalize applies the configured comparison normalization to a line
// sequence. Exact mode returns the lines untouched.
func (c config) normalize(lines []string) []string {
	if c.trim {
		lines = textutil.TrimLines(lines)
	}
	if c.nfc {
		lines = textutil.NFC(lines)
	}
	return lines
}

// writePending stores the actual output for a missing golden. The file
// gets a trailing newline when non-empty; the parse is insensitive to it.
func writePending(path string, lines []string) error {
	data := textutil.Join(lines)
	if data != "" {
		data += "\n"
	}
	return os.WriteFile(path, []byte(data), 0o644)
}
