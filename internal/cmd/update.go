package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tskforge/cli/internal/cmdutil"
	"github.com/tskforge/cli/internal/release"
	"github.com/tskforge/cli/internal/run"
)

// NewUpdateCmd creates the update command.
func NewUpdateCmd(gcfg *GlobalConfig) *cobra.Command {
	var compilerFlag string

	cmd := &cobra.Command{
		Use:   "update [path]",
		Short: "Sync, patch, and stamp the vendor tree",
		Long: `Update the vendored SleuthKit tree to the pinned release.

Stashes local vendor changes, syncs the submodule, pins the checkout to
the configured release tag, rewrites the sources from the rule table,
regenerates the vendor configure script (skipped for msvc), stamps
version.txt with today's date, and regenerates the binding source.

The sequence is fail-fast: a failing stage stops the update and leaves
the tree as that stage left it.

Arguments:
  path    Path to the project root (default: current directory)

Examples:
  # Update the vendor tree in the current directory
  tskforge update

  # Update without the autotools bootstrap
  tskforge update --compiler msvc`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, args, gcfg, compilerFlag)
		},
	}

	cmd.Flags().StringVar(&compilerFlag, "compiler", "",
		"Toolchain kind: msvc|unix (default: detect from platform)")

	return cmd
}

// runUpdate executes the update command.
func runUpdate(cmd *cobra.Command, args []string, gcfg *GlobalConfig, compilerFlag string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := gcfg.Effective()
	root := cmdutil.ResolvePath(args)

	kind, err := resolveToolchain(cfg, compilerFlag)
	if err != nil {
		return err
	}

	orch := release.NewOrchestrator(root, cfg, run.Exec{}, cmd.OutOrStdout())

	_, err = orch.Run(ctx, kind)
	return err
}
