// Package config provides configuration loading and management.
package config

// VendorConfig contains vendor tree settings.
type VendorConfig struct {
	// Dir is the vendor checkout directory, relative to the project root.
	// Env: TSKFORGE_VENDOR_DIR, Default: "sleuthkit"
	Dir string `json:"dir,omitempty"`

	// Branch is the branch pulled before the release tag is checked out.
	// Env: TSKFORGE_VENDOR_BRANCH, Default: "master"
	Branch string `json:"branch,omitempty"`

	// Tag is the release tag the vendor tree is pinned to.
	// Env: TSKFORGE_VENDOR_TAG, Default: "sleuthkit-4.4.2"
	Tag string `json:"tag,omitempty"`
}

// BindingsConfig contains binding generation settings.
type BindingsConfig struct {
	// Artifact is the generated binding source, relative to the project root.
	// Env: TSKFORGE_BINDINGS_ARTIFACT, Default: "pytsk3.c"
	Artifact string `json:"artifact,omitempty"`

	// Generator is the command that regenerates the binding artifact.
	// Default: ["python", "class_parser.py"]
	Generator []string `json:"generator,omitempty"`

	// Initialization is the init snippet passed to the generator.
	// Env: TSKFORGE_BINDINGS_INITIALIZATION, Default: "tsk_init();"
	Initialization string `json:"initialization,omitempty"`
}

// BuildConfig contains build request assembly settings.
type BuildConfig struct {
	// Name is the extension name stamped into the build request.
	// Env: TSKFORGE_BUILD_NAME, Default: "tsk3"
	Name string `json:"name,omitempty"`

	// Sources are seed source files always included in the request,
	// relative to the project root.
	Sources []string `json:"sources,omitempty"`

	// Subdirs are the vendor tsk subdirectories scanned for sources.
	Subdirs []string `json:"subdirs,omitempty"`

	// IncludeDirs are header search paths for the request.
	IncludeDirs []string `json:"includeDirs,omitempty"`

	// LibraryDirs are library search paths for the request.
	LibraryDirs []string `json:"libraryDirs,omitempty"`

	// Libraries are libraries linked into the extension.
	Libraries []string `json:"libraries,omitempty"`

	// RequestFile is where the assembled request is written, relative to
	// the project root.
	// Env: TSKFORGE_BUILD_REQUESTFILE, Default: "build/extension.yaml"
	RequestFile string `json:"requestFile,omitempty"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty"`
}

// Config represents the tskforge CLI configuration.
// Loaded from ~/.tskforge/config.yaml.
type Config struct {
	// Compiler forces the toolchain kind instead of autodetecting from
	// the platform. Valid values: "msvc", "unix".
	// Env: TSKFORGE_COMPILER
	Compiler string `json:"compiler,omitempty"`

	// Vendor contains vendor tree settings.
	Vendor VendorConfig `json:"vendor,omitempty"`

	// Bindings contains binding generation settings.
	Bindings BindingsConfig `json:"bindings,omitempty"`

	// Build contains build request assembly settings.
	Build BuildConfig `json:"build,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `tskforge config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Vendor: VendorConfig{
			Dir:    "sleuthkit",
			Branch: "master",
			Tag:    "sleuthkit-4.4.2",
		},
		Bindings: BindingsConfig{
			Artifact:       "pytsk3.c",
			Generator:      []string{"python", "class_parser.py"},
			Initialization: "tsk_init();",
		},
		Build: BuildConfig{
			Name:        "tsk3",
			Sources:     []string{"class.c", "error.c", "tsk3.c", "talloc/talloc.c"},
			Subdirs:     []string{"auto", "base", "docs", "fs", "hashdb", "img", "vs"},
			IncludeDirs: []string{"talloc", "sleuthkit/tsk", "sleuthkit", "."},
			RequestFile: "build/extension.yaml",
		},
	}
}

// WithDefaults returns a copy of the config with defaults applied to any
// unset fields. Explicit values, including empty slices, are kept.
func (c *Config) WithDefaults() *Config {
	defaults := DefaultConfig()
	cfg := *c

	if cfg.Vendor.Dir == "" {
		cfg.Vendor.Dir = defaults.Vendor.Dir
	}
	if cfg.Vendor.Branch == "" {
		cfg.Vendor.Branch = defaults.Vendor.Branch
	}
	if cfg.Vendor.Tag == "" {
		cfg.Vendor.Tag = defaults.Vendor.Tag
	}

	if cfg.Bindings.Artifact == "" {
		cfg.Bindings.Artifact = defaults.Bindings.Artifact
	}
	if cfg.Bindings.Generator == nil {
		cfg.Bindings.Generator = defaults.Bindings.Generator
	}
	if cfg.Bindings.Initialization == "" {
		cfg.Bindings.Initialization = defaults.Bindings.Initialization
	}

	if cfg.Build.Name == "" {
		cfg.Build.Name = defaults.Build.Name
	}
	if cfg.Build.Sources == nil {
		cfg.Build.Sources = defaults.Build.Sources
	}
	if cfg.Build.Subdirs == nil {
		cfg.Build.Subdirs = defaults.Build.Subdirs
	}
	if cfg.Build.IncludeDirs == nil {
		cfg.Build.IncludeDirs = defaults.Build.IncludeDirs
	}
	if cfg.Build.RequestFile == "" {
		cfg.Build.RequestFile = defaults.Build.RequestFile
	}

	return &cfg
}
