// Package cmdutil provides shared command utilities for tskforge
// subcommands: flag groups and project path resolution.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tskforge/cli/internal/output"
)

// FormatFlags holds the output format flag shared by commands that can
// render structured output (build, config vet).
type FormatFlags struct {
	Output string
}

// AddTo registers the format flag on the given cobra command.
func (f *FormatFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Output, "output", "o", "",
		"Output format: yaml|json|table")
}

// Resolve parses the flag value. The second return is false when the flag
// was left empty and the command should use its default rendering.
func (f *FormatFlags) Resolve() (output.OutputFormat, bool, error) {
	if f.Output == "" {
		return "", false, nil
	}

	format, ok := output.ParseOutputFormat(f.Output)
	if !ok {
		return "", false, fmt.Errorf("unknown output format %q (valid: %s)",
			f.Output, strings.Join(output.ValidFormats(), ", "))
	}
	return format, true, nil
}

// BuildFlags holds flags for the build command.
type BuildFlags struct {
	Compiler string
	ShowDiff bool
	Report   bool
}

// AddTo registers the build flags on the given cobra command.
func (f *BuildFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Compiler, "compiler", "",
		"Toolchain kind: msvc|unix (default: detect from platform)")
	cmd.Flags().BoolVar(&f.ShowDiff, "show-diff", false,
		"Show what changed against the previous build request")
	cmd.Flags().BoolVar(&f.Report, "report", false,
		"Print the full build report")
}

// ResolvePath returns the project root from command args, defaulting to
// the current directory.
func ResolvePath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
