package report

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nshe-dis/wdreports/internal/schema"
	"github.com/nshe-dis/wdreports/internal/tabular"
)

func testRunner(t *testing.T) *Runner {
	t.Helper()
	cfg := testConfig(t)
	reg, err := schema.BuiltIn()
	require.NoError(t, err)
	return NewRunner(cfg, reg, tabular.FormatCSV, zap.NewNop())
}

func TestRunEmptyInputDegradesEveryReport(t *testing.T) {
	runner := testRunner(t)

	summary, err := runner.Run(context.Background(), nil)

	require.NoError(t, err)
	assert.NotEmpty(t, summary.RunID)
	require.Len(t, summary.Outcomes, 5)
	for _, o := range summary.Outcomes {
		assert.Equal(t, "skipped", o.Status, o.Report)
		// Degraded reports still produce a loadable header-only file.
		assert.FileExists(t, o.OutputFile)
	}

	logs, err := filepath.Glob(filepath.Join(runner.cfg.OutputDir, "run_summary_*.log"))
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestRunSelectedReportsOnly(t *testing.T) {
	runner := testRunner(t)

	summary, err := runner.Run(context.Background(), []string{"worktag_grant"})

	require.NoError(t, err)
	require.Len(t, summary.Outcomes, 1)
	assert.Equal(t, "worktag_grant", summary.Outcomes[0].Report)
}

func TestRunUnknownReportName(t *testing.T) {
	runner := testRunner(t)

	_, err := runner.Run(context.Background(), []string{"no_such_feed"})

	assert.ErrorContains(t, err, `unknown report type "no_such_feed"`)
}

func TestRunSequentialConcurrency(t *testing.T) {
	runner := testRunner(t)
	runner.cfg.MaxConcurrency = 1

	summary, err := runner.Run(context.Background(), nil)

	require.NoError(t, err)
	assert.Len(t, summary.Outcomes, 5)
}

func TestOutcomeStatusMapping(t *testing.T) {
	assert.Equal(t, "ok", outcome(Result{Report: "r", Rows: 3}).Status)
	assert.Equal(t, "skipped", outcome(Result{Report: "r", Skipped: true, SkipReason: "x"}).Status)

	failed := outcome(Result{Report: "r", Err: assert.AnError})
	assert.Equal(t, "failed", failed.Status)
	assert.Equal(t, assert.AnError.Error(), failed.Detail)
}
