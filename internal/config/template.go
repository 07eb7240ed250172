package config

// DefaultConfigTemplate is the config file written by `tskforge config init`.
// It spells out every default so the file doubles as documentation; the
// commented entries show accepted values for the optional knobs.
const DefaultConfigTemplate = `# tskforge configuration
#
# Values can be overridden with TSKFORGE_* environment variables,
# e.g. TSKFORGE_VENDOR_TAG=sleuthkit-4.6.0.

# Force the toolchain kind instead of detecting it from the platform.
# Valid values: msvc, unix.
#compiler: unix

vendor:
  dir: sleuthkit
  branch: master
  tag: sleuthkit-4.4.2

bindings:
  artifact: pytsk3.c
  generator: [python, class_parser.py]
  initialization: "tsk_init();"

build:
  name: tsk3
  sources: [class.c, error.c, tsk3.c, talloc/talloc.c]
  subdirs: [auto, base, docs, fs, hashdb, img, vs]
  includeDirs: [talloc, sleuthkit/tsk, sleuthkit, "."]
  requestFile: build/extension.yaml

# Logging knobs. Timestamps default to on; --timestamps overrides.
#log:
#  timestamps: false
`
