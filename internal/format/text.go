package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bornholm/cocomo/internal/cocomo"
	"github.com/bornholm/cocomo/internal/model"
)

// Names of the estimate values in text output
const (
	EffortApplied   = "EFFORT_APPLIED"
	DevelopmentTime = "DEVELOPMENT_TIME"
	PeopleRequired  = "PEOPLE_REQUIRED"
)

// TextFormatter prints one "<name> = <value>" line per estimate value
type TextFormatter struct {
	config *model.Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(config *model.Config) *TextFormatter {
	return &TextFormatter{config: config}
}

// Format formats a report as text
func (f *TextFormatter) Format(report Report) (string, error) {
	return FormatResult(report.Result, f.config.Precision), nil
}

// FormatResult renders effort, development time and people required, in that order
func FormatResult(result cocomo.Result, precision int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s = %s\n", EffortApplied, FormatFloat(result.Effort, precision))
	fmt.Fprintf(&sb, "%s = %s\n", DevelopmentTime, FormatFloat(result.DevelopmentTime, precision))
	fmt.Fprintf(&sb, "%s = %s\n", PeopleRequired, FormatFloat(result.PeopleRequired, precision))
	return sb.String()
}

// FormatFloat formats value with the given number of decimals, or with the
// shortest exact representation when precision is negative
func FormatFloat(value float64, precision int) string {
	return strconv.FormatFloat(value, 'f', precision, 64)
}
