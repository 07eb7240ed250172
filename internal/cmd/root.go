// Package cmd provides the tskforge command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tskforge/cli/internal/config"
	"github.com/tskforge/cli/internal/output"
)

// GlobalConfig holds CLI-wide state resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every
// sub-command constructor.
type GlobalConfig struct {
	// Config is the merged file/env/default configuration.
	Config *config.Config

	// ConfigPath is the raw --config flag value.
	ConfigPath string

	// Verbose reports whether --verbose was set.
	Verbose bool
}

// Effective returns the loaded configuration. Commands constructed outside
// the root command, such as in tests, get the defaults.
func (g *GlobalConfig) Effective() *config.Config {
	if g.Config != nil {
		return g.Config
	}
	return config.DefaultConfig()
}

// NewRootCmd creates the root command for the tskforge CLI.
func NewRootCmd() *cobra.Command {
	gcfg := &GlobalConfig{}

	var (
		configFlag     string
		verboseFlag    bool
		timestampsFlag bool
	)

	rootCmd := &cobra.Command{
		Use:   "tskforge",
		Short: "Vendored SleuthKit build preparation",
		Long: `tskforge prepares a vendored SleuthKit source tree for compilation into
a native binding extension: it pins the vendor checkout to a release tag,
rewrites the sources from a declarative rule table, regenerates the
binding artifact, and assembles the extension build request.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, gcfg, configFlag, verboseFlag, timestampsFlag)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: TSKFORGE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(
		NewBuildCmd(gcfg),
		NewUpdateCmd(gcfg),
		NewSdistCmd(gcfg),
		NewConfigCmd(gcfg),
		NewVersionCmd(gcfg),
	)

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, gcfg *GlobalConfig, configFlag string, verboseFlag, timestampsFlag bool) error {
	loaded, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		// A broken config file must not brick the CLI. Fall back to the
		// defaults so commands like version and config init keep working.
		output.Warn("config load failed, using defaults", "error", err)
		loaded = config.DefaultConfig()
	}

	gcfg.Config = loaded
	gcfg.ConfigPath = configFlag
	gcfg.Verbose = verboseFlag

	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}

	// Timestamps precedence: flag (if explicitly set) > config > default (on).
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	if verboseFlag {
		output.Debug("initializing CLI",
			"config", configFlag,
			"compiler", loaded.Compiler,
			"vendor", loaded.Vendor.Dir,
			"tag", loaded.Vendor.Tag,
		)
	}

	return nil
}
