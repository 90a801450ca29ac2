package format

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/bornholm/cocomo/internal/cocomo"
	"github.com/bornholm/cocomo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newReport(t *testing.T) Report {
	t.Helper()

	est, err := cocomo.New(cocomo.ClassOrganic, map[string]string{"cplx": "high"})
	require.NoError(t, err)
	result, err := est.Estimate(30000)
	require.NoError(t, err)

	return Report{Label: "Billing", SLOC: 30000, Estimator: est, Result: result}
}

func newFormatter(t *testing.T, name string, config *model.Config) Formatter {
	t.Helper()

	f, err := New(name, config)
	require.NoError(t, err)
	return f
}

func TestNewSelectsFormatter(t *testing.T) {
	config := model.DefaultConfig()

	for _, name := range []string{"", "text", "json", "yaml", "yml", "markdown", "md"} {
		f, err := New(name, config)
		require.NoError(t, err, name)
		assert.NotNil(t, f, name)
	}

	for _, name := range []string{"xml", "JSON", "csv"} {
		f, err := New(name, config)
		assert.ErrorIs(t, err, ErrUnknownFormat, name)
		assert.Nil(t, f, name)
	}
}

func TestFormatResultOrderAndNames(t *testing.T) {
	out := FormatResult(cocomo.Result{Effort: 1.5, DevelopmentTime: 2.25, PeopleRequired: 0.5}, -1)

	assert.Equal(t, "EFFORT_APPLIED = 1.5\nDEVELOPMENT_TIME = 2.25\nPEOPLE_REQUIRED = 0.5\n", out)
}

func TestFormatResultPrecision(t *testing.T) {
	out := FormatResult(cocomo.Result{Effort: 113.79607, DevelopmentTime: 15.1101, PeopleRequired: 7.5311}, 2)

	assert.Equal(t, "EFFORT_APPLIED = 113.80\nDEVELOPMENT_TIME = 15.11\nPEOPLE_REQUIRED = 7.53\n", out)
}

func TestTextFormatter(t *testing.T) {
	report := newReport(t)

	out, err := newFormatter(t, "text", model.DefaultConfig()).Format(report)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "EFFORT_APPLIED = "))
	assert.True(t, strings.HasPrefix(lines[1], "DEVELOPMENT_TIME = "))
	assert.True(t, strings.HasPrefix(lines[2], "PEOPLE_REQUIRED = "))
}

func TestJSONFormatter(t *testing.T) {
	report := newReport(t)
	config := model.DefaultConfig()

	out, err := newFormatter(t, "json", config).Format(report)
	require.NoError(t, err)

	var decoded Output
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, "Billing", decoded.Label)
	assert.Equal(t, 30000, decoded.SLOC)
	assert.Equal(t, cocomo.ClassOrganic, decoded.Class)
	assert.Equal(t, 1.15, decoded.EAF)
	assert.Len(t, decoded.Multipliers, 15)
	assert.Equal(t, report.Result, decoded.Estimate)
	assert.InDelta(t, report.Result.Effort*config.MonthlyRate, decoded.Cost.TotalCost, 1e-6)
}

func TestYAMLFormatterRounds(t *testing.T) {
	report := newReport(t)
	config := model.DefaultConfig()
	config.Precision = 1

	out, err := newFormatter(t, "yaml", config).Format(report)
	require.NoError(t, err)

	var decoded Output
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, 130.9, decoded.Estimate.Effort)
}

func TestMarkdownFormatter(t *testing.T) {
	out, err := newFormatter(t, "md", model.DefaultConfig()).Format(newReport(t))
	require.NoError(t, err)

	assert.Contains(t, out, "# Billing")
	assert.Contains(t, out, "30000 SLOC")
	assert.Contains(t, out, "| cplx | Complexity of the product | 1.15 * |")
	assert.Contains(t, out, "| rely | Required software reliability | 1.00 |")
}

func TestFormatTable(t *testing.T) {
	out := FormatTable()

	assert.Contains(t, out, "| VL | L | N | H | VH | XH |")
	assert.Contains(t, out, "| cplx | Complexity of the product | 0.70 | 0.85 | 1.00 | 1.15 | 1.30 | 1.65 |")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 17)
}
