// Package cli implements the devtools-mcp command tree.
//
// Besides the registry-driven commands (list, info, run, serve), every
// tool gets a shortcut subcommand that maps positional arguments and
// flags onto the tool's JSON argument object, so
// "devtools-mcp base64 hello" and
// "devtools-mcp run base64 '{\"text\":\"hello\"}'" are equivalent.
// All success output is pretty-printed JSON on stdout.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/devtools-mcp/internal/config"
	"github.com/ironsheep/devtools-mcp/internal/toolkit"
)

// BuildInfo carries version metadata set via ldflags at build time.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd(info BuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:   "devtools-mcp",
		Short: "Developer utility toolkit and MCP server",
		Long: "devtools-mcp — a catalog of developer utilities (encode, hash,\n" +
			"format, convert, generate) usable as CLI subcommands or exposed to\n" +
			"MCP clients over stdio.",
		// SilenceUsage prevents printing usage on every error
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "",
		"Path to config file (default: ./devtools.yaml, then ~/.devtools-mcp/config.yaml)")

	root.Version = info.Version
	root.SetVersionTemplate(fmt.Sprintf(
		"devtools-mcp version %s (built %s, commit %s)\n",
		info.Version, info.BuildTime, info.GitCommit))

	root.AddCommand(newServeCmd(info.Version))
	root.AddCommand(newListCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newShortcutCmds()...)

	return root
}

// loadRegistry builds the tool registry honoring the --config flag.
func loadRegistry(cmd *cobra.Command) (*toolkit.Registry, *config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, nil, err
	}
	return toolkit.DefaultRegistry(cfg), cfg, nil
}

// printJSON writes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}

// runTool executes one tool with the given argument object and prints
// the result.
func runTool(cmd *cobra.Command, name string, args any) error {
	registry, _, err := loadRegistry(cmd)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encoding arguments: %w", err)
	}
	result, err := registry.Execute(name, raw)
	if err != nil {
		if errors.Is(err, toolkit.ErrUnknownTool) {
			return fmt.Errorf("%w. Available tools: %s", err, strings.Join(registry.Names(), ", "))
		}
		return err
	}
	return printJSON(cmd, result)
}
