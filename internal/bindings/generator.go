// Package bindings triggers the external generator that produces the C
// binding source from the vendor headers.
package bindings

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	tskerrors "github.com/tskforge/cli/internal/errors"
	"github.com/tskforge/cli/internal/output"
	"github.com/tskforge/cli/internal/run"
)

// Spec describes one binding generation: the artifact to produce, the
// generator argv, the initialization snippet compiled into the bindings,
// and the headers handed to the generator in order.
type Spec struct {
	Artifact       string
	Generator      []string
	Initialization string
	Headers        []string
}

// Generator invokes the external binding generator through a Runner, from
// the project root so the header paths resolve.
type Generator struct {
	root   string
	runner run.Runner
	log    *log.Logger
}

// NewGenerator returns a generator rooted at the project directory.
func NewGenerator(root string, runner run.Runner) *Generator {
	return &Generator{
		root:   root,
		runner: runner,
		log:    output.StageLogger("bindings"),
	}
}

// Ensure generates the artifact only when it does not exist yet. An
// existing artifact is left completely untouched, contents and mtime
// both. It reports whether generation ran.
func (g *Generator) Ensure(ctx context.Context, spec Spec) (bool, error) {
	full := filepath.Join(g.root, filepath.FromSlash(spec.Artifact))
	_, err := os.Stat(full)
	if err == nil {
		g.log.Debug("artifact exists, skipping generation", "artifact", spec.Artifact)
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking %s: %w", spec.Artifact, err)
	}

	if err := g.Generate(ctx, spec); err != nil {
		return false, err
	}
	return true, nil
}

// Generate runs the generator unconditionally, overwriting any existing
// artifact. Release updates take this path so fresh headers produce fresh
// bindings.
func (g *Generator) Generate(ctx context.Context, spec Spec) error {
	if len(spec.Generator) == 0 || strings.TrimSpace(spec.Generator[0]) == "" {
		return tskerrors.NewConfigurationError(
			"no binding generator configured",
			"",
			"Set bindings.generator to the generator command, e.g. [python, class_parser.py].",
		)
	}

	args := append([]string{}, spec.Generator[1:]...)
	args = append(args, "-o", spec.Artifact, "--init", spec.Initialization)
	args = append(args, spec.Headers...)

	g.log.Info("generating bindings", "artifact", spec.Artifact)
	_, err := run.RunChecked(ctx, g.runner, g.root, spec.Generator[0], args...)
	return err
}
