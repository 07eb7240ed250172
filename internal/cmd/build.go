package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tskforge/cli/internal/bindings"
	"github.com/tskforge/cli/internal/build"
	"github.com/tskforge/cli/internal/cmdutil"
	"github.com/tskforge/cli/internal/config"
	tskerrors "github.com/tskforge/cli/internal/errors"
	"github.com/tskforge/cli/internal/manifest"
	"github.com/tskforge/cli/internal/output"
	"github.com/tskforge/cli/internal/run"
	"github.com/tskforge/cli/internal/toolchain"
)

// NewBuildCmd creates the build command.
func NewBuildCmd(gcfg *GlobalConfig) *cobra.Command {
	var bf cmdutil.BuildFlags
	var ff cmdutil.FormatFlags

	cmd := &cobra.Command{
		Use:   "build [path]",
		Short: "Assemble the extension build request",
		Long: `Assemble the native extension build request.

Probes the toolchain (running the vendor configure script on unix),
generates the binding source if it is missing, discovers the vendor
sources, and writes the build request for the underlying build framework
to build/extension.yaml.

Arguments:
  path    Path to the project root (default: current directory)

Examples:
  # Assemble the request for the current directory
  tskforge build

  # Force the MSVC toolchain profile
  tskforge build --compiler msvc

  # Print the full request instead of the summary table
  tskforge build -o yaml

  # Show what changed since the last request
  tskforge build --show-diff

  # Explain every macro and source decision
  tskforge build --report`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args, gcfg, &bf, &ff)
		},
	}

	bf.AddTo(cmd)
	ff.AddTo(cmd)

	return cmd
}

// runBuild executes the build command.
func runBuild(cmd *cobra.Command, args []string, gcfg *GlobalConfig, bf *cmdutil.BuildFlags, ff *cmdutil.FormatFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := gcfg.Effective()
	root := cmdutil.ResolvePath(args)
	out := cmd.OutOrStdout()

	format, explicit, err := ff.Resolve()
	if err != nil {
		return tskerrors.NewExitError(err, tskerrors.ExitGeneralError)
	}

	kind, err := resolveToolchain(cfg, bf.Compiler)
	if err != nil {
		return err
	}

	vendorPath := filepath.Join(root, filepath.FromSlash(cfg.Vendor.Dir))

	profile, err := toolchain.NewProber(run.Exec{}, out).Probe(ctx, kind, vendorPath)
	if err != nil {
		return err
	}

	generated, err := bindings.NewGenerator(root, run.Exec{}).Ensure(ctx, bindings.Spec{
		Artifact:       cfg.Bindings.Artifact,
		Generator:      cfg.Bindings.Generator,
		Initialization: cfg.Bindings.Initialization,
		Headers:        manifest.Headers(cfg.Vendor.Dir),
	})
	if err != nil {
		return err
	}

	sources, err := manifest.NewDiscovery(root).Sources(cfg.Vendor.Dir, cfg.Build.Subdirs, cfg.Build.Sources, cfg.Bindings.Artifact)
	if err != nil {
		return err
	}

	asm := build.NewAssembler(root, cfg)

	req, err := asm.Assemble(profile, sources)
	if err != nil {
		return err
	}

	previous, err := asm.Submit(req)
	if err != nil {
		return err
	}

	if bf.Report {
		return output.WriteBuildReport(buildReportInfo(cfg, req, sources, generated), output.ReportOptions{
			JSON:   format == output.FormatJSON,
			Writer: out,
		})
	}

	// -o table falls through to the default summary rendering.
	if explicit && format != output.FormatTable {
		doc, err := req.Document()
		if err != nil {
			return err
		}
		return output.WriteRequest(doc, output.RequestOptions{Format: format, Writer: out})
	}

	status := output.StatusSkipped
	if generated {
		status = output.StatusGenerated
	}
	fmt.Fprintln(out, output.FormatFileLine(cfg.Bindings.Artifact, status))
	fmt.Fprintln(out, output.RenderRequestTable(req.Summary()))

	if bf.ShowDiff {
		if err := writeRequestDiff(out, root, cfg, previous); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, output.FormatCheckmark("build request written to "+cfg.Build.RequestFile))

	return nil
}

// writeRequestDiff renders what changed between the previous request file
// and the one just written.
func writeRequestDiff(out io.Writer, root string, cfg *config.Config, previous []byte) error {
	if previous == nil {
		fmt.Fprintln(out, "No previous request to compare.")
		return nil
	}

	current, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(cfg.Build.RequestFile)))
	if err != nil {
		return fmt.Errorf("reading request file: %w", err)
	}

	diff, err := output.DiffRequests(previous, current, output.IsTTY())
	if err != nil {
		return err
	}
	if diff == "" {
		fmt.Fprintln(out, "No changes since the last request.")
		return nil
	}

	fmt.Fprintln(out, "Changes since the last request:")
	fmt.Fprint(out, output.IndentDiff(diff, "  "))

	return nil
}

// buildReportInfo flattens the assembled request into the report shape.
func buildReportInfo(cfg *config.Config, req *build.Request, sources []string, generated bool) *output.BuildReportInfo {
	info := &output.BuildReportInfo{
		ExtensionName:    req.Name,
		ExtensionVersion: req.Version,
		Compiler:         req.Compiler,
		Configured:       req.Configured,
		BindingArtifact:  cfg.Bindings.Artifact,
		BindingGenerated: generated,
		SourcesDigest:    manifest.Digest(sources),
		RequestFile:      cfg.Build.RequestFile,
	}

	for _, m := range req.Macros {
		info.Macros = append(info.Macros, output.MacroInfo{Name: m.Name, Value: m.Value})
	}

	for _, src := range sources {
		info.Sources = append(info.Sources, output.SourceInfo{
			Path:   src,
			Origin: manifest.Classify(src, cfg.Build.Sources, cfg.Bindings.Artifact),
		})
	}

	return info
}
