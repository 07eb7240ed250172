package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// refRegex validates git branch and tag names loosely: no whitespace, no
// control characters, and none of the characters git itself rejects.
var refRegex = regexp.MustCompile(`^[A-Za-z0-9._/-]+$`)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validator validates configuration values.
type Validator struct{}

// NewValidator creates a new configuration validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates the given configuration.
func (v *Validator) Validate(cfg *Config) error {
	var errs ValidationErrors

	// Validate compiler override
	if cfg.Compiler != "" && cfg.Compiler != "msvc" && cfg.Compiler != "unix" {
		errs = append(errs, ValidationError{
			Field:   "compiler",
			Message: `must be "msvc" or "unix"`,
		})
	}

	// Vendor paths are joined onto the project root, so they must stay relative
	if cfg.Vendor.Dir != "" {
		if strings.TrimSpace(cfg.Vendor.Dir) == "" {
			errs = append(errs, ValidationError{
				Field:   "vendor.dir",
				Message: "must not be empty or whitespace only",
			})
		} else if filepath.IsAbs(cfg.Vendor.Dir) {
			errs = append(errs, ValidationError{
				Field:   "vendor.dir",
				Message: "must be relative to the project root",
			})
		}
	}

	if cfg.Vendor.Branch != "" && !refRegex.MatchString(cfg.Vendor.Branch) {
		errs = append(errs, ValidationError{
			Field:   "vendor.branch",
			Message: "must be a valid git branch name",
		})
	}

	if cfg.Vendor.Tag != "" && !refRegex.MatchString(cfg.Vendor.Tag) {
		errs = append(errs, ValidationError{
			Field:   "vendor.tag",
			Message: "must be a valid git tag name",
		})
	}

	if len(cfg.Bindings.Generator) > 0 && strings.TrimSpace(cfg.Bindings.Generator[0]) == "" {
		errs = append(errs, ValidationError{
			Field:   "bindings.generator",
			Message: "first element must be a command name",
		})
	}

	if cfg.Build.RequestFile != "" {
		if strings.TrimSpace(cfg.Build.RequestFile) == "" {
			errs = append(errs, ValidationError{
				Field:   "build.requestFile",
				Message: "must not be empty or whitespace only",
			})
		} else if filepath.IsAbs(cfg.Build.RequestFile) {
			errs = append(errs, ValidationError{
				Field:   "build.requestFile",
				Message: "must be relative to the project root",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ValidateFile validates a configuration file at the given path.
func (v *Validator) ValidateFile(path string) error {
	loader := NewLoader()
	cfg, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}

	return v.Validate(cfg)
}
