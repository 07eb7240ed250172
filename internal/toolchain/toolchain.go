// Package toolchain detects the active compiler family and probes the
// vendor tree for the preprocessor macros a build needs.
package toolchain

import (
	"fmt"
	"runtime"
	"strings"

	tskerrors "github.com/tskforge/cli/internal/errors"
)

// Kind is the compiler family a build targets.
type Kind string

const (
	// KindMSVC is the native Windows toolchain.
	KindMSVC Kind = "msvc"

	// KindUnix covers every toolchain driven through the vendor's
	// configure script.
	KindUnix Kind = "unix"
)

// String returns the kind's configuration spelling.
func (k Kind) String() string {
	return string(k)
}

// ParseKind maps a configuration value to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(s)) {
	case KindMSVC:
		return KindMSVC, nil
	case KindUnix:
		return KindUnix, nil
	}
	return "", tskerrors.NewConfigurationError(
		fmt.Sprintf("unknown compiler kind %q", s),
		"",
		"Set compiler to msvc or unix, or leave it empty to detect from the platform.",
	)
}

// Detect returns the toolchain kind, honoring an explicit override from
// configuration before falling back to the host platform.
func Detect(override string) (Kind, error) {
	if override != "" {
		return ParseKind(override)
	}
	if runtime.GOOS == "windows" {
		return KindMSVC, nil
	}
	return KindUnix, nil
}

// Macro is one preprocessor definition. An empty Value defines the name
// alone.
type Macro struct {
	Name  string
	Value string
}

// String renders the macro the way it appears in a build transcript.
func (m Macro) String() string {
	if m.Value == "" {
		return m.Name
	}
	return m.Name + "=" + m.Value
}

// Profile is the probed toolchain state threaded from the prober through
// to the build assembler.
type Profile struct {
	// Kind is the compiler family the build targets.
	Kind Kind

	// Macros are the preprocessor definitions, in declaration order.
	Macros []Macro

	// Configured reports whether the vendor configure script has run.
	Configured bool
}
