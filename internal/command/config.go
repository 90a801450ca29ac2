package command

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bornholm/cocomo/internal/model"
	"github.com/bornholm/cocomo/internal/store"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management commands",
	Long:  `Manage the cocomo configuration file.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration file",
	Long:  `Create a default configuration file in the current directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := getStore()

		configPath := configFile
		if configPath == "" {
			configPath = store.DefaultConfigFile
		}
		if _, err := os.Stat(configPath); err == nil {
			force, _ := cmd.Flags().GetBool("force")
			if !force {
				return fmt.Errorf("configuration file already exists at %s, use --force to overwrite", configPath)
			}
		}

		if err := s.SaveConfig(model.DefaultConfig()); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created at %s\n", configPath)
		return nil
	},
}

// configViewCmd represents the config view command
var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "View current configuration",
	Long:  `Display the effective configuration, environment overrides included.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := getStore().LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		w := cmd.OutOrStdout()
		format, _ := cmd.Flags().GetString("format")

		switch format {
		case "json":
			data, err := json.MarshalIndent(config, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal config to JSON: %w", err)
			}
			fmt.Fprintln(w, string(data))
		case "yaml":
			data, err := yaml.Marshal(config)
			if err != nil {
				return fmt.Errorf("failed to marshal config to YAML: %w", err)
			}
			fmt.Fprint(w, string(data))
		default:
			fmt.Fprintf(w, "Default Class: %s\n", config.GetDefaultClass())
			fmt.Fprintf(w, "Strict Ratings: %v\n", config.StrictRatings)
			fmt.Fprintf(w, "Precision: %d\n", config.Precision)
			fmt.Fprintf(w, "Output Format: %s\n", config.OutputFormat)
			fmt.Fprintf(w, "Monthly Rate: %.2f %s\n", config.MonthlyRate, config.Currency)
			fmt.Fprintf(w, "Hours Per Month: %.0f\n", config.GetHoursPerMonth())
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configViewCmd)

	configInitCmd.Flags().BoolP("force", "f", false, "Force overwrite existing configuration")
	configViewCmd.Flags().StringP("format", "f", "text", "Output format (text, yaml, json)")
}
