package release

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tskforge/cli/internal/bindings"
	"github.com/tskforge/cli/internal/config"
	"github.com/tskforge/cli/internal/manifest"
	"github.com/tskforge/cli/internal/output"
	"github.com/tskforge/cli/internal/patch"
	"github.com/tskforge/cli/internal/run"
	"github.com/tskforge/cli/internal/toolchain"
	"github.com/tskforge/cli/internal/vcs"
)

// Orchestrator drives the full release update: stash, submodule sync, pin
// to the release tag, patch, bootstrap, version stamp, binding
// regeneration. Every external step is fatal on first failure; recovery
// is resetting the vendor checkout and re-running.
type Orchestrator struct {
	// Now supplies the release instant. Tests pin it; production code
	// leaves the default.
	Now func() time.Time

	root   string
	cfg    *config.Config
	runner run.Runner
	git    *vcs.Git
	engine *patch.Engine
	gen    *bindings.Generator
	out    io.Writer
	log    *log.Logger
}

// NewOrchestrator returns an orchestrator for the project root. The
// config is expected to have defaults applied.
func NewOrchestrator(root string, cfg *config.Config, runner run.Runner, out io.Writer) *Orchestrator {
	return &Orchestrator{
		Now:    time.Now,
		root:   root,
		cfg:    cfg,
		runner: runner,
		git:    vcs.NewGit(runner),
		engine: patch.NewEngine(root),
		gen:    bindings.NewGenerator(root, runner),
		out:    out,
		log:    output.StageLogger("update"),
	}
}

// Result summarizes a completed release update.
type Result struct {
	// Stamp holds the versions cut for this release.
	Stamp Stamp

	// Patched lists what the patch stage did to each target file.
	Patched []patch.FileResult

	// Bootstrapped reports whether the vendor bootstrap script ran.
	Bootstrapped bool
}

// Run performs the update for the given toolchain kind. The bootstrap
// stage is skipped on msvc, where the vendor configure machinery is never
// used.
func (o *Orchestrator) Run(ctx context.Context, kind toolchain.Kind) (*Result, error) {
	stamp := NewStamp(o.Now())
	vendor := o.cfg.Vendor.Dir
	vendorPath := filepath.Join(o.root, filepath.FromSlash(vendor))

	o.stage("stash", "saving local vendor changes")
	if err := o.git.Stash(ctx, vendorPath); err != nil {
		return nil, err
	}

	o.stage("submodule", "initializing vendor submodule")
	if err := o.git.SubmoduleInit(ctx, o.root); err != nil {
		return nil, err
	}
	if err := o.git.SubmoduleUpdate(ctx, o.root); err != nil {
		return nil, err
	}

	o.stage("sync", fmt.Sprintf("pinning %s to %s", vendor, o.cfg.Vendor.Tag))
	err := output.RunWithSpinner(ctx, func() error {
		return o.syncVendor(ctx, vendorPath)
	}, output.WithTitle("Syncing "+vendor))
	if err != nil {
		return nil, err
	}

	o.stage("patch", "rewriting vendor sources")
	patched, err := o.engine.ApplyAll(patch.Table(vendor, stamp.Version, stamp.PackageVersion))
	if err != nil {
		return nil, err
	}
	for _, res := range patched {
		fmt.Fprintln(o.out, "  "+output.FormatFileLine(res.Path, res.Status()))
	}

	result := &Result{Stamp: stamp, Patched: patched}

	if kind != toolchain.KindMSVC {
		o.stage("bootstrap", "regenerating vendor configure")
		err := output.RunWithSpinner(ctx, func() error {
			_, err := run.RunChecked(ctx, o.runner, vendorPath, "./bootstrap")
			return err
		}, output.WithTitle("Running bootstrap"))
		if err != nil {
			return nil, err
		}
		result.Bootstrapped = true
	}

	o.stage("version", stamp.Version)
	if err := stamp.WriteVersion(o.root); err != nil {
		return nil, err
	}

	o.stage("bindings", o.cfg.Bindings.Artifact)
	spec := bindings.Spec{
		Artifact:       o.cfg.Bindings.Artifact,
		Generator:      o.cfg.Bindings.Generator,
		Initialization: o.cfg.Bindings.Initialization,
		Headers:        manifest.Headers(vendor),
	}
	if err := o.gen.Generate(ctx, spec); err != nil {
		return nil, err
	}

	fmt.Fprintln(o.out, output.FormatCheckmark("release update complete"))
	return result, nil
}

// syncVendor forces the checkout onto the pinned release tag, discarding
// anything local.
func (o *Orchestrator) syncVendor(ctx context.Context, vendorPath string) error {
	if err := o.git.ResetHard(ctx, vendorPath); err != nil {
		return err
	}
	if err := o.git.Clean(ctx, vendorPath); err != nil {
		return err
	}
	if err := o.git.Checkout(ctx, vendorPath, o.cfg.Vendor.Branch); err != nil {
		return err
	}
	if err := o.git.Pull(ctx, vendorPath); err != nil {
		return err
	}
	if err := o.git.FetchTags(ctx, vendorPath); err != nil {
		return err
	}
	return o.git.CheckoutTag(ctx, vendorPath, o.cfg.Vendor.Tag)
}

func (o *Orchestrator) stage(name, detail string) {
	o.log.Debug("stage", "name", name)
	fmt.Fprintln(o.out, output.FormatStageLine(name, detail))
}
