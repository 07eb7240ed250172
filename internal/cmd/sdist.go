package cmd

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tskforge/cli/internal/cmdutil"
	tskerrors "github.com/tskforge/cli/internal/errors"
	"github.com/tskforge/cli/internal/output"
	"github.com/tskforge/cli/internal/release"
	"github.com/tskforge/cli/internal/run"
	"github.com/tskforge/cli/internal/vcs"
)

// NewSdistCmd creates the sdist command.
func NewSdistCmd(gcfg *GlobalConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sdist [path]",
		Short: "Check the tree is ready for source distribution",
		Long: `Check that the project can be packaged into a source distribution.

Initializes the vendor submodule when the tree is missing, then requires
the artifacts a source distribution must carry: the vendor configure
script and the stamped version.txt. Packaging itself is left to the
distribution tooling.

Arguments:
  path    Path to the project root (default: current directory)

Examples:
  # Verify the current directory
  tskforge sdist`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSdist(cmd, args, gcfg)
		},
	}

	return cmd
}

// runSdist executes the sdist command.
func runSdist(cmd *cobra.Command, args []string, gcfg *GlobalConfig) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := gcfg.Effective()
	root := cmdutil.ResolvePath(args)
	out := cmd.OutOrStdout()

	vendorPath := filepath.Join(root, filepath.FromSlash(cfg.Vendor.Dir))

	// A fresh clone has an empty vendor directory until the submodule is
	// initialized.
	if _, err := os.Stat(filepath.Join(vendorPath, "tsk")); err != nil {
		git := vcs.NewGit(run.Exec{})
		if err := git.SubmoduleInit(ctx, root); err != nil {
			return err
		}
		if err := git.SubmoduleUpdate(ctx, root); err != nil {
			return err
		}
	}
	fmt.Fprintln(out, output.FormatVetCheck("vendor tree", cfg.Vendor.Dir))

	configurePath := filepath.Join(vendorPath, "configure")
	if _, err := os.Stat(configurePath); err != nil {
		return tskerrors.NewNotFoundError("vendor configure script missing", configurePath,
			"Run 'tskforge update' to bootstrap the vendor tree.")
	}
	fmt.Fprintln(out, output.FormatVetCheck("configure script", path.Join(cfg.Vendor.Dir, "configure")))

	version, err := release.ReadVersion(root)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, output.FormatVetCheck("version stamp", version))

	fmt.Fprintln(out, output.FormatCheckmark("source tree is ready for packaging"))

	return nil
}
