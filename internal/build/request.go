// Package build assembles the extension build request from the probed
// toolchain, the discovered sources, and configuration.
package build

import (
	"fmt"

	"sigs.k8s.io/yaml"
)

// Macro is one preprocessor definition carried by a build request.
type Macro struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// Request is the full description of one extension build, as written to
// the request file for the build backend.
type Request struct {
	// Name is the extension name.
	Name string `json:"name"`

	// Version is the release version the build is stamped with.
	Version string `json:"version"`

	// Compiler is the toolchain kind the request was assembled for.
	Compiler string `json:"compiler"`

	// Configured reports whether the vendor configure script ran during
	// assembly.
	Configured bool `json:"configured"`

	// Sources is the deterministic source manifest.
	Sources []string `json:"sources"`

	// Macros are the preprocessor definitions, in declaration order.
	Macros []Macro `json:"macros,omitempty"`

	// IncludeDirs are header search paths.
	IncludeDirs []string `json:"includeDirs,omitempty"`

	// LibraryDirs are library search paths.
	LibraryDirs []string `json:"libraryDirs,omitempty"`

	// Libraries are libraries linked into the extension.
	Libraries []string `json:"libraries,omitempty"`
}

// Document returns the request as an unstructured document for rendering.
func (r *Request) Document() (map[string]any, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding request document: %w", err)
	}
	return doc, nil
}
