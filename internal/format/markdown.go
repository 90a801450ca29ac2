package format

import (
	"fmt"
	"strings"

	"github.com/bornholm/cocomo/internal/cocomo"
	"github.com/bornholm/cocomo/internal/model"
)

// MarkdownFormatter formats reports as a markdown document
type MarkdownFormatter struct {
	config *model.Config
}

// NewMarkdownFormatter creates a new markdown formatter
func NewMarkdownFormatter(config *model.Config) *MarkdownFormatter {
	return &MarkdownFormatter{config: config}
}

// Format formats a report as markdown
func (f *MarkdownFormatter) Format(report Report) (string, error) {
	output := NewJSONFormatter(f.config).BuildOutput(report)
	precision := f.config.Precision

	var sb strings.Builder

	title := output.Label
	if title == "" {
		title = "COCOMO Estimate"
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)

	fmt.Fprintf(&sb, "- **Size:** %d SLOC\n", output.SLOC)
	fmt.Fprintf(&sb, "- **Project class:** %s (a=%g, b=%g, c=%g, d=%g)\n",
		output.Class, output.Coefficients.A, output.Coefficients.B, output.Coefficients.C, output.Coefficients.D)
	fmt.Fprintf(&sb, "- **Effort adjustment factor:** %s\n\n", FormatFloat(output.EAF, precision))

	sb.WriteString("## Estimate\n\n")
	sb.WriteString("| Value | Result |\n")
	sb.WriteString("|-------|-------:|\n")
	fmt.Fprintf(&sb, "| Effort (person-months) | %s |\n", FormatFloat(output.Estimate.Effort, precision))
	fmt.Fprintf(&sb, "| Development time (months) | %s |\n", FormatFloat(output.Estimate.DevelopmentTime, precision))
	fmt.Fprintf(&sb, "| People required | %s |\n", FormatFloat(output.Estimate.PeopleRequired, precision))
	fmt.Fprintf(&sb, "| Productivity (SLOC/person-month) | %s |\n\n", FormatFloat(output.Productivity, precision))

	sb.WriteString("## Cost\n\n")
	fmt.Fprintf(&sb, "- **Hours:** %s\n", FormatFloat(output.Cost.Hours, precision))
	fmt.Fprintf(&sb, "- **Total:** %s %s (%s %s per person-month)\n\n",
		FormatFloat(output.Cost.TotalCost, precision), output.Cost.Currency,
		FormatFloat(output.Cost.MonthlyRate, precision), output.Cost.Currency)

	sb.WriteString("## Multipliers\n\n")
	sb.WriteString("| Attribute | Description | Factor |\n")
	sb.WriteString("|-----------|-------------|-------:|\n")
	for _, m := range output.Multipliers {
		marker := ""
		if m.Factor != 1 {
			marker = " *"
		}
		fmt.Fprintf(&sb, "| %s | %s | %.2f%s |\n", m.Attribute, m.Label, m.Factor, marker)
	}

	return sb.String(), nil
}

// FormatTable renders the multiplier table of every attribute as markdown
func FormatTable() string {
	var sb strings.Builder

	sb.WriteString("| Attribute | Description |")
	for _, r := range cocomo.Ratings() {
		fmt.Fprintf(&sb, " %s |", r.Abbreviation())
	}
	sb.WriteString("\n|-----------|-------------|")
	for range cocomo.Ratings() {
		sb.WriteString("-----:|")
	}
	sb.WriteString("\n")

	for _, attr := range cocomo.Attributes() {
		fmt.Fprintf(&sb, "| %s | %s |", attr, attr.Label())
		for _, r := range cocomo.Ratings() {
			m, _ := cocomo.Multiplier(attr, r)
			fmt.Fprintf(&sb, " %.2f |", m)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
