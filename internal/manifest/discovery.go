// Package manifest assembles the deterministic source and header lists
// for one extension build.
package manifest

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/tskforge/cli/internal/output"
)

// Origin classifications for discovered sources.
const (
	OriginSeed      = "seed"
	OriginGenerated = "generated"
	OriginVendor    = "vendor"
)

// nativeExtensions are the file patterns collected from each vendor
// subdirectory.
var nativeExtensions = []string{"*.c", "*.cpp"}

// Discovery walks a project root for the native sources of a build.
type Discovery struct {
	root string
	log  *log.Logger
}

// NewDiscovery returns a discovery rooted at the project directory.
func NewDiscovery(root string) *Discovery {
	return &Discovery{
		root: root,
		log:  output.StageLogger("discovery"),
	}
}

// Sources returns every native source for the build: the configured seed
// files, the binding artifact, and all C and C++ files under the vendor
// tsk subdirectories. The result is deduplicated and sorted, so two runs
// over the same tree agree regardless of directory enumeration order.
// Seeds and the artifact are listed whether or not they exist yet; vendor
// subdirectories without native files contribute nothing.
func (d *Discovery) Sources(vendorDir string, subdirs, seeds []string, artifact string) ([]string, error) {
	collected := append([]string{}, seeds...)
	if artifact != "" {
		collected = append(collected, artifact)
	}

	for _, sub := range subdirs {
		found := 0
		for _, pattern := range nativeExtensions {
			glob := filepath.Join(d.root, filepath.FromSlash(vendorDir), "tsk", sub, pattern)
			matches, err := filepath.Glob(glob)
			if err != nil {
				return nil, fmt.Errorf("scanning %s/%s: %w", vendorDir, sub, err)
			}
			for _, match := range matches {
				rel, err := filepath.Rel(d.root, match)
				if err != nil {
					return nil, fmt.Errorf("scanning %s/%s: %w", vendorDir, sub, err)
				}
				collected = append(collected, filepath.ToSlash(rel))
				found++
			}
		}
		d.log.Debug("scanned subdir", "subdir", sub, "files", found)
	}

	seen := make(map[string]bool, len(collected))
	sources := make([]string, 0, len(collected))
	for _, src := range collected {
		if seen[src] {
			continue
		}
		seen[src] = true
		sources = append(sources, src)
	}
	sort.Strings(sources)

	return sources, nil
}

// Classify reports where a discovered source came from, for display.
func Classify(source string, seeds []string, artifact string) string {
	if source == artifact {
		return OriginGenerated
	}
	for _, seed := range seeds {
		if source == seed {
			return OriginSeed
		}
	}
	return OriginVendor
}
