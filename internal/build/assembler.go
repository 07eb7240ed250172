package build

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"sigs.k8s.io/yaml"

	"github.com/tskforge/cli/internal/config"
	"github.com/tskforge/cli/internal/manifest"
	"github.com/tskforge/cli/internal/output"
	"github.com/tskforge/cli/internal/release"
	"github.com/tskforge/cli/internal/toolchain"
)

// Assembler combines toolchain and manifest results into build requests
// and submits them to the request file.
type Assembler struct {
	root string
	cfg  *config.Config
	log  *log.Logger
}

// NewAssembler returns an assembler for the project root. The config is
// expected to have defaults applied.
func NewAssembler(root string, cfg *config.Config) *Assembler {
	return &Assembler{
		root: root,
		cfg:  cfg,
		log:  output.StageLogger("build"),
	}
}

// Assemble builds the request for one probed profile and source manifest.
// The version comes from the stamp recorded by the last release update.
func (a *Assembler) Assemble(profile toolchain.Profile, sources []string) (*Request, error) {
	version, err := release.ReadVersion(a.root)
	if err != nil {
		return nil, err
	}

	macros := make([]Macro, 0, len(profile.Macros))
	for _, m := range profile.Macros {
		macros = append(macros, Macro{Name: m.Name, Value: m.Value})
	}

	req := &Request{
		Name:        a.cfg.Build.Name,
		Version:     version,
		Compiler:    profile.Kind.String(),
		Configured:  profile.Configured,
		Sources:     sources,
		Macros:      macros,
		IncludeDirs: a.cfg.Build.IncludeDirs,
		LibraryDirs: a.cfg.Build.LibraryDirs,
		Libraries:   a.cfg.Build.Libraries,
	}

	a.log.Debug("assembled request",
		"name", req.Name, "version", req.Version,
		"sources", len(req.Sources), "digest", manifest.Digest(req.Sources),
		"macros", len(req.Macros))
	return req, nil
}

// Submit writes the request to the configured request file, creating the
// directory as needed. The previous request bytes, if any, are returned
// so callers can show what the release changed.
func (a *Assembler) Submit(req *Request) ([]byte, error) {
	full := filepath.Join(a.root, filepath.FromSlash(a.cfg.Build.RequestFile))

	previous, err := os.ReadFile(full)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading previous request: %w", err)
		}
		previous = nil
	}

	data, err := yaml.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return nil, fmt.Errorf("creating request dir: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return nil, fmt.Errorf("writing request: %w", err)
	}

	a.log.Debug("request written", "file", a.cfg.Build.RequestFile, "bytes", len(data))
	return previous, nil
}

// Summary condenses the request for the one-row build table.
func (r *Request) Summary() output.RequestSummary {
	return output.RequestSummary{
		Name:        r.Name,
		Version:     r.Version,
		Compiler:    r.Compiler,
		Sources:     len(r.Sources),
		Macros:      len(r.Macros),
		IncludeDirs: len(r.IncludeDirs),
		Libraries:   len(r.Libraries),
	}
}
