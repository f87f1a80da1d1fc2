package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// newShortcutCmds returns one subcommand per tool so the common cases
// don't require hand-writing JSON.
func newShortcutCmds() []*cobra.Command {
	return []*cobra.Command{
		newEscapeCmd(),
		newColorCmd(),
		newBase64Cmd(),
		newURLCmd(),
		newHashCmd(),
		newJWTCmd(),
		newJSONCmd(),
		newUUIDCmd(),
		newEpochCmd(),
	}
}

func newEscapeCmd() *cobra.Command {
	var format string
	var unescape bool
	cmd := &cobra.Command{
		Use:   "escape <text>",
		Short: "Escape or unescape text for HTML, JSON, XML, or JavaScript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			operation := "escape"
			if unescape {
				operation = "unescape"
			}
			return runTool(cmd, "escape", map[string]any{
				"text":      args[0],
				"operation": operation,
				"format":    format,
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "html", "Target format: html, json, xml, javascript")
	cmd.Flags().BoolVarP(&unescape, "unescape", "u", false, "Unescape instead of escape")
	return cmd
}

func newColorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "color <value>",
		Short: "Convert a color between HEX, RGB, and HSL",
		Long: "Accepts #rrggbb, #rgb, bare hex, rgb(r, g, b), or hsl(h, s%, l%)\n" +
			"and reports the value in every representation plus WCAG contrast\n" +
			"ratios against white and black.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "color", map[string]any{"color": args[0]})
		},
	}
}

func newBase64Cmd() *cobra.Command {
	var decode bool
	cmd := &cobra.Command{
		Use:   "base64 <text>",
		Short: "Base64 encode or decode text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "base64", map[string]any{
				"text":      args[0],
				"operation": operationFlag(decode),
			})
		},
	}
	cmd.Flags().BoolVarP(&decode, "decode", "d", false, "Decode instead of encode")
	return cmd
}

func newURLCmd() *cobra.Command {
	var decode bool
	cmd := &cobra.Command{
		Use:   "url <text>",
		Short: "Percent-encode or decode a URL component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "url", map[string]any{
				"text":      args[0],
				"operation": operationFlag(decode),
			})
		},
	}
	cmd.Flags().BoolVarP(&decode, "decode", "d", false, "Decode instead of encode")
	return cmd
}

func newHashCmd() *cobra.Command {
	var algorithm string
	cmd := &cobra.Command{
		Use:   "hash <text>",
		Short: "Hash text with md5, sha1, sha256, or sha512",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "hash", map[string]any{
				"text":      args[0],
				"algorithm": algorithm,
			})
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "sha256", "Hash algorithm")
	return cmd
}

func newJWTCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jwt <token>",
		Short: "Decode a JWT without verifying its signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "jwt", map[string]any{"token": args[0]})
		},
	}
}

func newJSONCmd() *cobra.Command {
	var minify bool
	cmd := &cobra.Command{
		Use:   "json <text>",
		Short: "Pretty-print or minify JSON",
		Long:  "Pass \"-\" as the argument to read the JSON document from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := args[0]
			if text == "-" {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				text = strings.TrimSpace(string(b))
			}
			return runTool(cmd, "json", map[string]any{
				"text":   text,
				"minify": minify,
			})
		},
	}
	cmd.Flags().BoolVarP(&minify, "minify", "m", false, "Minify instead of pretty-print")
	return cmd
}

func newUUIDCmd() *cobra.Command {
	var version, count int
	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Generate UUIDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "uuid", map[string]any{
				"version": version,
				"count":   count,
			})
		},
	}
	cmd.Flags().IntVarP(&version, "version", "V", 4, "UUID version (1 or 4)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of UUIDs (max 100)")
	return cmd
}

func newEpochCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "epoch [timestamp]",
		Short: "Convert a Unix timestamp to readable forms",
		Long:  "With no argument, reports the current time.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			timestamp := ""
			if len(args) == 1 {
				timestamp = args[0]
			}
			return runTool(cmd, "epoch", map[string]any{"timestamp": timestamp})
		},
	}
}

func operationFlag(decode bool) string {
	if decode {
		return "decode"
	}
	return "encode"
}
