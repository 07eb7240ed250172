package cmd

import (
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(gcfg *GlobalConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the tskforge CLI.`,
	}

	cmd.AddCommand(
		NewConfigInitCmd(gcfg),
		NewConfigVetCmd(gcfg),
	)

	return cmd
}
