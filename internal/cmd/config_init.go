package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tskforge/cli/internal/config"
	tskerrors "github.com/tskforge/cli/internal/errors"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(gcfg *GlobalConfig) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the tskforge configuration.

Writes the default configuration to ~/.tskforge/config.yaml, or to the
path given with --config. Values can also be overridden with TSKFORGE_*
environment variables, so the file is a starting point, not a
requirement.

Examples:
  # Initialize configuration
  tskforge config init

  # Overwrite existing configuration
  tskforge config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, gcfg, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return cmd
}

// runConfigInit executes the config init command.
func runConfigInit(cmd *cobra.Command, gcfg *GlobalConfig, force bool) error {
	target, err := resolveConfigTarget(gcfg.ConfigPath)
	if err != nil {
		return err
	}

	exists, err := config.ConfigFileExists(target)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return tskerrors.NewConfigurationError("configuration file already exists", target,
			"Use --force to overwrite it.")
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(target, []byte(config.DefaultConfigTemplate), 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration initialized at "+target)
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Next: adjust vendor.tag to the release you are packaging")
	fmt.Fprintln(out, "Validate with: tskforge config vet")

	return nil
}

// resolveConfigTarget resolves the config file path commands read from and
// write to: --config flag, then TSKFORGE_CONFIG, then the home config file.
func resolveConfigTarget(flagValue string) (string, error) {
	target := flagValue
	if target == "" {
		var err error
		target, err = config.GetConfigFile()
		if err != nil {
			return "", fmt.Errorf("resolving config path: %w", err)
		}
	}

	return config.ExpandPath(target)
}
