package command

import (
	"fmt"
	"os"

	"github.com/bornholm/cocomo/internal/log"
	"github.com/bornholm/cocomo/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cocomo",
	Short: "A CLI tool for COCOMO software cost estimation",
	Long: `Cocomo estimates software development effort, schedule and staffing
from a source line count using the COCOMO model.

It allows you to:
- Estimate effort (person-months), development time (months) and people required
- Tune the estimate with the 15 effort adjustment attributes
- Keep project inputs in YAML files and edit them interactively
- Expose the estimator to LLMs through an MCP server

Use "cocomo [command] --help" for more information about a command.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zap.ReplaceGlobals(log.InitLog(log.Level(verbose)))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	_ = zap.L().Sync()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "configuration file path (default: nearest "+store.DefaultConfigFile+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
}

// getStore creates a new YAML store with the configured file
func getStore() *store.YAMLStore {
	return store.NewYAMLStore(configFile)
}
