package command

import (
	"fmt"
	"os"

	"github.com/bornholm/cocomo/internal/cocomo"
	"github.com/bornholm/cocomo/internal/format"
	"github.com/bornholm/cocomo/internal/model"
	"github.com/bornholm/cocomo/internal/stats"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate effort, development time and people required",
	Long: `Estimate a project from its source line count.

Each of the 15 attributes can be rated VL, L, N, H, VH or XH (or very-low ... extra-high).
Missing or unrecognized ratings count as nominal unless --strict is set.`,
	Example: `  cocomo estimate --sloc 30000
  cocomo estimate --sloc 30000 --class E --rely H --cplx VH --acap L`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rawSLOC, _ := cmd.Flags().GetString("sloc")

		sloc, err := cocomo.ParseSLOC(rawSLOC)
		if err != nil {
			return err
		}

		config, err := getStore().LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		applyPrecision(cmd, config)

		estimator, err := buildEstimator(cmd, config)
		if err != nil {
			return err
		}

		result, err := estimator.Estimate(sloc)
		if err != nil {
			return err
		}

		zap.S().Debugw("estimate computed",
			"sloc", sloc,
			"class", estimator.Class(),
			"eaf", estimator.EAF(),
			"effort", result.Effort,
		)

		label, _ := cmd.Flags().GetString("label")
		formatter, err := format.New(outputFormat(cmd, config), config)
		if err != nil {
			return err
		}

		out, err := formatter.Format(format.Report{
			Label:     label,
			SLOC:      sloc,
			Estimator: estimator,
			Result:    result,
		})
		if err != nil {
			return fmt.Errorf("failed to format estimate: %w", err)
		}

		return writeOutput(cmd, out)
	},
}

// Decimals of sweep tables when the configuration keeps full precision
const sweepPrecision = 2

// sweepCmd represents the sweep command
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Estimate a range of sizes",
	Long:  `Estimate every size from --from to --to by --step with the same attributes.`,
	Example: `  cocomo sweep --from 10000 --to 100000 --step 10000 --class S
  cocomo sweep --to 50000 --step 5000 --xlsx sweep.xlsx`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetInt("from")
		to, _ := cmd.Flags().GetInt("to")
		step, _ := cmd.Flags().GetInt("step")

		slocs, err := stats.Range(from, to, step)
		if err != nil {
			return err
		}

		config, err := getStore().LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		applyPrecision(cmd, config)
		if config.Precision < 0 {
			config.Precision = sweepPrecision
		}

		estimator, err := buildEstimator(cmd, config)
		if err != nil {
			return err
		}

		points, err := stats.Sweep(cmd.Context(), estimator, slocs)
		if err != nil {
			return err
		}

		zap.S().Debugf("swept %d sizes for class %s", len(points), estimator.Class())

		if xlsx, _ := cmd.Flags().GetString("xlsx"); xlsx != "" {
			return writeWorkbook(cmd, xlsx, estimator, points, config)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%10s  %14s  %16s  %15s\n", "SLOC", format.EffortApplied, format.DevelopmentTime, format.PeopleRequired)
		for _, p := range points {
			fmt.Fprintf(w, "%10d  %14s  %16s  %15s\n", p.SLOC,
				format.FormatFloat(p.Result.Effort, config.Precision),
				format.FormatFloat(p.Result.DevelopmentTime, config.Precision),
				format.FormatFloat(p.Result.PeopleRequired, config.Precision))
		}

		return nil
	},
}

// writeWorkbook saves the sweep as a spreadsheet
func writeWorkbook(cmd *cobra.Command, path string, estimator *cocomo.Estimator, points []stats.SweepPoint, config *model.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create workbook: %w", err)
	}
	defer f.Close()

	if err := format.WriteSweepWorkbook(f, estimator, points, config); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Sweep written to %s\n", path)
	return nil
}

// writeOutput prints out, or writes it to --output when set
func writeOutput(cmd *cobra.Command, out string) error {
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	if err := os.WriteFile(output, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Output written to %s\n", output)
	return nil
}

func init() {
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(sweepCmd)

	// estimate command flags
	estimateCmd.Flags().String("sloc", "", "Source lines of code (required)")
	estimateCmd.Flags().String("label", "", "Label used in markdown, JSON and YAML output")
	estimateCmd.Flags().StringP("format", "f", "text", "Output format (text, markdown, json, yaml)")
	estimateCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	estimateCmd.Flags().Int("precision", -1, "Decimals in output, -1 for full precision (default: from configuration)")
	addRatingFlags(estimateCmd)
	_ = estimateCmd.MarkFlagRequired("sloc")

	// sweep command flags
	sweepCmd.Flags().Int("from", 1000, "First size in SLOC")
	sweepCmd.Flags().Int("to", 100000, "Last size in SLOC")
	sweepCmd.Flags().Int("step", 10000, "Size increment in SLOC")
	sweepCmd.Flags().String("xlsx", "", "Write the sweep to an xlsx workbook instead of stdout")
	sweepCmd.Flags().Int("precision", -1, fmt.Sprintf("Decimals in output (default: from configuration, %d when unset)", sweepPrecision))
	addRatingFlags(sweepCmd)
}
