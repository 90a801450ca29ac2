package format

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bornholm/cocomo/internal/cocomo"
	"github.com/bornholm/cocomo/internal/model"
	"github.com/bornholm/cocomo/internal/stats"
)

// Report is the input of a formatter: an estimator, the size it was run with and its result
type Report struct {
	Label     string
	SLOC      int
	Estimator *cocomo.Estimator
	Result    cocomo.Result
}

// Formatter renders a report
type Formatter interface {
	Format(report Report) (string, error)
}

// ErrUnknownFormat is returned for an output format name with no formatter
var ErrUnknownFormat = errors.New("unknown output format")

// New returns the formatter for the given format name. An empty name selects text.
func New(name string, config *model.Config) (Formatter, error) {
	switch name {
	case "", "text":
		return NewTextFormatter(config), nil
	case "json":
		return NewJSONFormatter(config), nil
	case "yaml", "yml":
		return NewYAMLFormatter(config), nil
	case "markdown", "md":
		return NewMarkdownFormatter(config), nil
	default:
		return nil, fmt.Errorf("%w '%s' (text, json, yaml, markdown)", ErrUnknownFormat, name)
	}
}

// JSONFormatter formats reports as JSON with calculated values
type JSONFormatter struct {
	config *model.Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(config *model.Config) *JSONFormatter {
	return &JSONFormatter{config: config}
}

// Output represents the complete estimate output
type Output struct {
	Label        string               `json:"label,omitempty" yaml:"label,omitempty"`
	SLOC         int                  `json:"sloc" yaml:"sloc"`
	Class        cocomo.ProjectClass  `json:"class" yaml:"class"`
	Coefficients cocomo.Profile       `json:"coefficients" yaml:"coefficients"`
	EAF          float64              `json:"eaf" yaml:"eaf"`
	Multipliers  []MultiplierOutput   `json:"multipliers" yaml:"multipliers"`
	Estimate     cocomo.Result        `json:"estimate" yaml:"estimate"`
	Productivity float64              `json:"productivity" yaml:"productivity"`
	Cost         stats.CostEstimation `json:"cost" yaml:"cost"`
}

// MultiplierOutput represents one resolved attribute multiplier
type MultiplierOutput struct {
	Attribute cocomo.Attribute `json:"attribute" yaml:"attribute"`
	Label     string           `json:"label" yaml:"label"`
	Factor    float64          `json:"factor" yaml:"factor"`
}

// Format formats a report as JSON
func (f *JSONFormatter) Format(report Report) (string, error) {
	output := f.BuildOutput(report)
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

// BuildOutput builds the output structure
func (f *JSONFormatter) BuildOutput(report Report) *Output {
	precision := f.config.Precision
	est := report.Estimator

	multipliers := make([]MultiplierOutput, 0, len(cocomo.Attributes()))
	for _, attr := range cocomo.Attributes() {
		multipliers = append(multipliers, MultiplierOutput{
			Attribute: attr,
			Label:     attr.Label(),
			Factor:    est.Factor(attr),
		})
	}

	cost := stats.CalculateCost(report.Result, f.config)
	cost.Hours = stats.Round(cost.Hours, precision)
	cost.TotalCost = stats.Round(cost.TotalCost, precision)

	return &Output{
		Label:        report.Label,
		SLOC:         report.SLOC,
		Class:        est.Class(),
		Coefficients: est.Profile(),
		EAF:          stats.Round(est.EAF(), precision),
		Multipliers:  multipliers,
		Estimate: cocomo.Result{
			Effort:          stats.Round(report.Result.Effort, precision),
			DevelopmentTime: stats.Round(report.Result.DevelopmentTime, precision),
			PeopleRequired:  stats.Round(report.Result.PeopleRequired, precision),
		},
		Productivity: stats.Round(stats.Productivity(report.SLOC, report.Result), precision),
		Cost:         cost,
	}
}
