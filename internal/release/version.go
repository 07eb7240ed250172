// Package release cuts a new vendor release: it resynchronizes the
// vendor checkout to the pinned tag, patches it, stamps the version, and
// regenerates the bindings.
package release

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tskerrors "github.com/tskforge/cli/internal/errors"
)

// versionFile is the plaintext version persisted at the project root and
// read by every subsequent build.
const versionFile = "version.txt"

// Stamp is the pair of version strings cut for one release.
type Stamp struct {
	// Version is the release date, YYYYMMDD.
	Version string

	// PackageVersion is the packaging changelog date, RFC 2822 style with
	// a numeric UTC offset.
	PackageVersion string
}

// NewStamp derives both version forms from one instant, so the release
// date and the changelog date can never disagree.
func NewStamp(now time.Time) Stamp {
	return Stamp{
		Version:        now.Format("20060102"),
		PackageVersion: now.Format("Mon, 02 Jan 2006 15:04:05 -0700"),
	}
}

// WriteVersion persists the stamp's version for later builds.
func (s Stamp) WriteVersion(root string) error {
	if err := os.WriteFile(filepath.Join(root, versionFile), []byte(s.Version), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", versionFile, err)
	}
	return nil
}

// ReadVersion returns the version recorded by the last release update,
// with surrounding whitespace trimmed.
func ReadVersion(root string) (string, error) {
	full := filepath.Join(root, versionFile)
	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return "", tskerrors.NewConfigurationError(
				fmt.Sprintf("%s not found", versionFile),
				full,
				"Run 'tskforge update' to sync the vendor tree and stamp a version.",
			)
		}
		return "", fmt.Errorf("reading %s: %w", versionFile, err)
	}
	return strings.TrimSpace(string(data)), nil
}
