package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tskforge/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(gcfg *GlobalConfig) *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show tskforge version information.

Displays:
  - tskforge version, commit, and build date
  - the external tools the update and build paths shell out to
    (git, sh, and the configured binding generator)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(cmd, gcfg, outputFlag)
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output format: json")

	return cmd
}

// runVersion executes the version command.
func runVersion(cmd *cobra.Command, gcfg *GlobalConfig, outputFlag string) error {
	info := version.Get()
	tools := version.DetectTools(gcfg.Effective().Bindings.Generator)

	switch outputFlag {
	case "":
		fmt.Fprintln(cmd.OutOrStdout(), version.FullString(info, tools))
		return nil
	case "json":
		payload := struct {
			version.Info
			Tools []version.ToolInfo `json:"tools"`
		}{Info: info, Tools: tools}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	default:
		return fmt.Errorf("invalid output format %q (valid: json)", outputFlag)
	}
}
