package format

import (
	"github.com/bornholm/cocomo/internal/model"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats reports as YAML with calculated values
type YAMLFormatter struct {
	config *model.Config
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(config *model.Config) *YAMLFormatter {
	return &YAMLFormatter{config: config}
}

// Format formats a report as YAML
func (f *YAMLFormatter) Format(report Report) (string, error) {
	// Use the same output structure as JSON formatter
	output := NewJSONFormatter(f.config).BuildOutput(report)

	data, err := yaml.Marshal(output)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
