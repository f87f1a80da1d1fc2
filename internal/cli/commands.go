package cli

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/devtools-mcp/internal/server"
)

func newServeCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server over stdio",
		Long: "Reads JSON-RPC 2.0 requests from stdin and writes responses to\n" +
			"stdout. Diagnostics go to stderr so the protocol stream stays clean.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, cfg, err := loadRegistry(cmd)
			if err != nil {
				return err
			}
			// stdout carries the protocol; logging must go to stderr
			log.SetOutput(os.Stderr)
			log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
			if cfg.Debug() {
				log.Printf("devtools-mcp %s serving %d tools", version, len(registry.Names()))
			}
			return server.New(registry, version).Run()
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all available tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, _, err := loadRegistry(cmd)
			if err != nil {
				return err
			}
			names := registry.Names()
			byCategory := make(map[string][]string)
			for _, category := range registry.Categories() {
				byCategory[category] = registry.NamesByCategory(category)
			}
			return printJSON(cmd, map[string]any{
				"total_tools":       len(names),
				"categories":        registry.Categories(),
				"tools":             names,
				"tools_by_category": byCategory,
			})
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <tool>",
		Short: "Show a tool's metadata and input schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, _, err := loadRegistry(cmd)
			if err != nil {
				return err
			}
			info, err := registry.Info(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, info)
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <tool> [json-arguments]",
		Short: "Run a tool with a JSON argument object",
		Long: "Executes a tool directly. Arguments are a single JSON object,\n" +
			"defaulting to {} when omitted:\n\n" +
			"  devtools-mcp run base64 '{\"text\":\"hello\"}'\n" +
			"  devtools-mcp run color '{\"color\":\"#ff0000\"}'",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawArgs := "{}"
			if len(args) == 2 {
				rawArgs = args[1]
			}
			if !json.Valid([]byte(rawArgs)) {
				return fmt.Errorf("arguments must be a valid JSON object, got %q", rawArgs)
			}
			registry, _, err := loadRegistry(cmd)
			if err != nil {
				return err
			}
			result, err := registry.Execute(args[0], json.RawMessage(rawArgs))
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}
}
