package model

import (
	"testing"

	"github.com/bornholm/cocomo/internal/cocomo"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	assert.Equal(t, cocomo.ClassOrganic, c.GetDefaultClass())
	assert.Equal(t, DefaultPrecision, c.Precision)
	assert.Equal(t, float64(DefaultHoursPerMonth), c.GetHoursPerMonth())
	assert.Empty(t, c.EstimatorOptions())
	assert.NoError(t, c.Validate())
}

func TestConfigFallbacks(t *testing.T) {
	c := &Config{}

	assert.Equal(t, cocomo.ClassOrganic, c.GetDefaultClass())
	assert.Equal(t, float64(DefaultHoursPerMonth), c.GetHoursPerMonth())

	c.StrictRatings = true
	assert.Len(t, c.EstimatorOptions(), 1)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "embedded class", mutate: func(c *Config) { c.DefaultClass = cocomo.ClassEmbedded }},
		{name: "unknown class", mutate: func(c *Config) { c.DefaultClass = "X" }, wantErr: true},
		{name: "negative rate", mutate: func(c *Config) { c.MonthlyRate = -1 }, wantErr: true},
		{name: "precision too low", mutate: func(c *Config) { c.Precision = -2 }, wantErr: true},
		{name: "unknown format", mutate: func(c *Config) { c.OutputFormat = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(c)
			if tt.wantErr {
				assert.Error(t, c.Validate())
			} else {
				assert.NoError(t, c.Validate())
			}
		})
	}
}
