package command

import (
	"fmt"

	"github.com/bornholm/cocomo/internal/cocomo"
	"github.com/bornholm/cocomo/internal/model"
	"github.com/spf13/cobra"
)

// addRatingFlags registers one --<attribute> flag per cost driver
func addRatingFlags(cmd *cobra.Command) {
	for _, attr := range cocomo.Attributes() {
		cmd.Flags().String(string(attr), "", fmt.Sprintf("%s (VL, L, N, H, VH, XH)", attr.Label()))
	}
	cmd.Flags().String("class", "", "Project class: O (organic), S (semi-detached), E (embedded) (default: from configuration)")
	cmd.Flags().Bool("strict", false, "Reject invalid ratings instead of using nominal")
}

// collectRatings returns the ratings given on the command line.
// Values are passed through untouched: the estimator decides what is valid.
func collectRatings(cmd *cobra.Command) map[string]string {
	ratings := make(map[string]string)
	for _, attr := range cocomo.Attributes() {
		name := string(attr)
		if cmd.Flags().Changed(name) {
			value, _ := cmd.Flags().GetString(name)
			ratings[name] = value
		}
	}
	return ratings
}

// buildEstimator creates the estimator described by the rating flags and the configuration
func buildEstimator(cmd *cobra.Command, config *model.Config) (*cocomo.Estimator, error) {
	classFlag, _ := cmd.Flags().GetString("class")

	class := config.GetDefaultClass()
	if classFlag != "" {
		var err error
		class, err = cocomo.ParseClass(classFlag)
		if err != nil {
			return nil, err
		}
	}

	opts := config.EstimatorOptions()
	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		opts = append(opts, cocomo.WithStrictRatings())
	}

	return cocomo.New(class, collectRatings(cmd), opts...)
}

// outputFormat returns the --format flag value or the configured format
func outputFormat(cmd *cobra.Command, config *model.Config) string {
	if cmd.Flags().Changed("format") {
		f, _ := cmd.Flags().GetString("format")
		return f
	}
	return config.OutputFormat
}

// applyPrecision overrides the configured precision with --precision when given
func applyPrecision(cmd *cobra.Command, config *model.Config) {
	if cmd.Flags().Changed("precision") {
		config.Precision, _ = cmd.Flags().GetInt("precision")
	}
}
