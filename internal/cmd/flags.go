package cmd

import (
	"github.com/tskforge/cli/internal/config"
	"github.com/tskforge/cli/internal/toolchain"
)

// resolveToolchain resolves the toolchain kind for a command from the
// --compiler flag value and the configured override, in that order. With
// neither set, the kind is detected from the platform.
func resolveToolchain(cfg *config.Config, compilerFlag string) (toolchain.Kind, error) {
	compiler := compilerFlag
	if compiler == "" {
		compiler = cfg.Compiler
	}
	return toolchain.Detect(compiler)
}
