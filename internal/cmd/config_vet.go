package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tskforge/cli/internal/config"
	tskerrors "github.com/tskforge/cli/internal/errors"
	"github.com/tskforge/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(gcfg *GlobalConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the tskforge configuration file.

Checks performed:
  1. Config file exists at the resolved path
  2. File parses as YAML
  3. Field values pass validation (compiler kind, relative paths,
     git ref syntax)

The config path is resolved using precedence:
  --config flag > TSKFORGE_CONFIG env > ~/.tskforge/config.yaml

Examples:
  # Validate default configuration
  tskforge config vet

  # Validate a custom config path
  tskforge config vet --config ./tskforge.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigVet(cmd, gcfg)
		},
	}

	return cmd
}

// runConfigVet executes the config vet command.
func runConfigVet(cmd *cobra.Command, gcfg *GlobalConfig) error {
	out := cmd.OutOrStdout()

	target, err := resolveConfigTarget(gcfg.ConfigPath)
	if err != nil {
		return err
	}

	output.Debug("validating config", "path", target)

	exists, err := config.ConfigFileExists(target)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		return tskerrors.NewNotFoundError("configuration file not found", target,
			"Run 'tskforge config init' to create it.")
	}
	fmt.Fprintln(out, output.FormatVetCheck("config file", target))

	cfg, err := config.NewLoader().Load(target)
	if err != nil {
		return tskerrors.Wrap(tskerrors.ErrConfiguration, err.Error())
	}
	fmt.Fprintln(out, output.FormatVetCheck("yaml syntax", ""))

	if err := config.NewValidator().Validate(cfg); err != nil {
		return err
	}
	fmt.Fprintln(out, output.FormatVetCheck("field values", ""))

	fmt.Fprintln(out, output.FormatCheckmark("configuration is valid"))

	return nil
}
