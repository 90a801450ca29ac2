package command

import (
	"encoding/json"
	"fmt"

	"github.com/bornholm/cocomo/internal/cocomo"
	"github.com/bornholm/cocomo/internal/format"
	"github.com/spf13/cobra"
)

type attributeOutput struct {
	Name        cocomo.Attribute          `json:"name"`
	Label       string                    `json:"label"`
	Multipliers map[cocomo.Rating]float64 `json:"multipliers"`
}

// attributesCmd represents the attributes command
var attributesCmd = &cobra.Command{
	Use:   "attributes",
	Short: "List the effort adjustment attributes",
	Long:  `List the 15 effort adjustment attributes with their multiplier for every rating, and the project class coefficients.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		formatType, _ := cmd.Flags().GetString("format")
		w := cmd.OutOrStdout()

		switch formatType {
		case "json":
			attrs := make([]attributeOutput, 0, len(cocomo.Attributes()))
			for _, attr := range cocomo.Attributes() {
				multipliers := make(map[cocomo.Rating]float64)
				for _, r := range cocomo.Ratings() {
					multipliers[r], _ = cocomo.Multiplier(attr, r)
				}
				attrs = append(attrs, attributeOutput{Name: attr, Label: attr.Label(), Multipliers: multipliers})
			}

			data, err := json.MarshalIndent(attrs, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal attributes to JSON: %w", err)
			}
			fmt.Fprintln(w, string(data))
		default:
			fmt.Fprint(w, format.FormatTable())
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Project classes:")
			for _, class := range cocomo.Classes() {
				p, _ := cocomo.ProfileOf(class)
				fmt.Fprintf(w, "  %-14s a=%.2f b=%.2f c=%.2f d=%.2f\n", class, p.A, p.B, p.C, p.D)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(attributesCmd)

	attributesCmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
}
