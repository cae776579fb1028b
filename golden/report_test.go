package golden

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func TestReport_OKAndFailed(t *testing.T) {
	passing := &Report{Results: []CaseResult{
		{Name: "a.input", GoldenFile: "a.valid", Status: StatusPass},
	}}
	require.True(t, passing.OK())
	require.Empty(t, passing.Failed())
	require.Empty(t, passing.Render())

	failing := &Report{Results: []CaseResult{
		{Name: "a.input", GoldenFile: "a.valid", Status: StatusPass},
		{Name: "b.input", GoldenFile: "b.valid", Status: StatusMissing},
	}}
	require.False(t, failing.OK())
	require.Len(t, failing.Failed(), 1)
	require.Equal(t, "b.input", failing.Failed()[0].Name)
}

func TestReport_RenderMixedFailures(t *testing.T) {
	report := &Report{
		Dir: "testdata/example",
		Results: []CaseResult{
			{Name: "alpha.input", GoldenFile: "alpha.valid", Status: StatusPass},
			{
				Name:       "beta.input",
				GoldenFile: "beta.valid",
				Status:     StatusMismatch,
				Expected:   []string{"one", "two"},
				Actual:     []string{"one", "2"},
				Diff:       " one\n-two\n+2",
			},
			{
				Name:        "sub/gamma.input",
				GoldenFile:  "sub/gamma.valid",
				Status:      StatusMissing,
				Actual:      []string{"out"},
				PendingFile: "sub/gamma.valid.new",
			},
		},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "report_mixed", []byte(report.Render()))
}

func TestReport_RenderMissingWithoutPending(t *testing.T) {
	report := &Report{
		Dir: "testdata/example",
		Results: []CaseResult{
			{Name: "a.input", GoldenFile: "a.valid", Status: StatusMissing, Actual: []string{"x"}},
		},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "report_missing", []byte(report.Render()))
}
