package model

import (
	"github.com/bornholm/cocomo/internal/cocomo"
)

// Default values used when the configuration does not set them
const (
	DefaultPrecision     = -1
	DefaultHoursPerMonth = 152
	DefaultMonthlyRate   = 10000
)

// Config represents the application configuration stored in .cocomo.yml
type Config struct {
	DefaultClass  cocomo.ProjectClass `yaml:"defaultClass" json:"defaultClass" envconfig:"DEFAULT_CLASS" validate:"omitempty,oneof=organic semi-detached embedded"`
	StrictRatings bool                `yaml:"strictRatings" json:"strictRatings" envconfig:"STRICT_RATINGS"`
	Precision     int                 `yaml:"precision" json:"precision" envconfig:"PRECISION" validate:"gte=-1,lte=10"`
	OutputFormat  string              `yaml:"outputFormat" json:"outputFormat" envconfig:"OUTPUT_FORMAT" validate:"omitempty,oneof=text json yaml markdown md"`
	Currency      string              `yaml:"currency" json:"currency" envconfig:"CURRENCY"`
	MonthlyRate   float64             `yaml:"monthlyRate" json:"monthlyRate" envconfig:"MONTHLY_RATE" validate:"gte=0"`
	HoursPerMonth float64             `yaml:"hoursPerMonth,omitempty" json:"hoursPerMonth,omitempty" envconfig:"HOURS_PER_MONTH" validate:"gte=0"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultClass:  cocomo.ClassOrganic,
		StrictRatings: false,
		Precision:     DefaultPrecision,
		OutputFormat:  "text",
		Currency:      "€",
		MonthlyRate:   DefaultMonthlyRate,
		HoursPerMonth: DefaultHoursPerMonth,
	}
}

// GetDefaultClass returns the configured default project class or organic
func (c *Config) GetDefaultClass() cocomo.ProjectClass {
	if c.DefaultClass == "" {
		return cocomo.ClassOrganic
	}
	return c.DefaultClass
}

// GetHoursPerMonth returns the configured hours per person-month or the default
func (c *Config) GetHoursPerMonth() float64 {
	if c.HoursPerMonth <= 0 {
		return DefaultHoursPerMonth
	}
	return c.HoursPerMonth
}

// EstimatorOptions returns the cocomo options implied by the configuration
func (c *Config) EstimatorOptions() []cocomo.Option {
	if c.StrictRatings {
		return []cocomo.Option{cocomo.WithStrictRatings()}
	}
	return nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	return validate.Struct(c)
}
