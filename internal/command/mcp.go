package command

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bornholm/cocomo/internal/mcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	mcpRootDir string
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server management commands",
	Long:  `Manage MCP server for LLM integration.`,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.AddCommand(mcpServerCmd)
	mcpServerCmd.Flags().StringVar(&mcpRootDir, "root", "", "Root directory for project files (default: current working directory)")
}

// mcpServerCmd represents the mcp server command
var mcpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the MCP server",
	Long:  `Run the MCP server with specified configuration. The server uses stdio transport for communication.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rootDir := mcpRootDir
		if rootDir == "" {
			var err error
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current working directory: %w", err)
			}
		}

		// Configuration comes from the global config file, outside of the root
		config, err := getStore().LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		server, err := mcp.NewServer(&mcp.ServerOptions{
			RootDir: rootDir,
			Config:  config,
		})
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}
		defer server.Close()

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		go func() {
			<-sigChan
			zap.S().Info("shutting down MCP server")
			cancel()
		}()

		zap.S().Infof("MCP server serving projects from %s", rootDir)

		if err := server.Run(ctx); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}

		return nil
	},
}
