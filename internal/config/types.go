// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"jdkprobe/internal/buildcfg"
	"jdkprobe/pkg/platform"
)

const (
	// PlatformAuto selects the host platform.
	PlatformAuto PlatformChoice = "auto"

	// FormatPath prints only the primary JDK library directory.
	FormatPath OutputFormat = "path"
	// FormatJSON prints the build configuration as JSON.
	FormatJSON OutputFormat = "json"
	// FormatYAML prints the build configuration as YAML.
	FormatYAML OutputFormat = "yaml"
	// FormatTOML prints the build configuration as TOML.
	FormatTOML OutputFormat = "toml"
	// FormatFlags prints the build configuration as compiler flags.
	FormatFlags OutputFormat = "flags"
)

var (
	// ErrInvalidFormat is returned when an OutputFormat value is not recognized.
	ErrInvalidFormat = errors.New("invalid output format")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// PlatformChoice is "auto" or any name accepted by platform.Parse.
	PlatformChoice string

	// OutputFormat selects how a discovery result is printed.
	OutputFormat string

	// InvalidFormatError is returned when an OutputFormat value is not recognized.
	// It wraps ErrInvalidFormat for errors.Is() compatibility.
	InvalidFormatError struct {
		Value OutputFormat
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Platform selects whose JDK layout is searched.
		Platform PlatformChoice `json:"platform" mapstructure:"platform"`
		// Sysroot confines probing to a directory. Empty probes the host.
		Sysroot string `json:"sysroot" mapstructure:"sysroot"`
		// SearchPaths are extra candidates probed after the platform's own.
		SearchPaths []string `json:"search_paths" mapstructure:"search_paths"`
		// Native locates the project's native source tree.
		Native NativeConfig `json:"native" mapstructure:"native"`
		// Output configures result printing.
		Output OutputConfig `json:"output" mapstructure:"output"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// NativeConfig mirrors buildcfg.Layout.
	NativeConfig struct {
		CommonDir        string   `json:"common_dir" mapstructure:"common_dir"`
		BindingDir       string   `json:"binding_dir" mapstructure:"binding_dir"`
		CompatDir        string   `json:"compat_dir" mapstructure:"compat_dir"`
		SourceExtensions []string `json:"source_extensions" mapstructure:"source_extensions"`
	}

	// OutputConfig configures result printing.
	OutputConfig struct {
		// Format is the default for "jdkprobe show".
		Format OutputFormat `json:"format" mapstructure:"format"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// Verbose enables debug logging of every probe.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	layout := buildcfg.DefaultLayout()
	return &Config{
		Platform:    PlatformAuto,
		SearchPaths: []string{},
		Native: NativeConfig{
			CommonDir:        layout.CommonDir,
			BindingDir:       layout.BindingDir,
			CompatDir:        layout.CompatDir,
			SourceExtensions: layout.SourceExtensions,
		},
		Output: OutputConfig{Format: FormatJSON},
	}
}

// String returns the string representation of the PlatformChoice.
func (p PlatformChoice) String() string { return string(p) }

// Resolve maps the choice to a platform, detecting the host for "auto" or
// an empty value.
func (p PlatformChoice) Resolve() (platform.Platform, error) {
	if p == "" || strings.EqualFold(string(p), string(PlatformAuto)) {
		return platform.Detect(), nil
	}
	return platform.Parse(string(p))
}

// IsValid returns whether the PlatformChoice names a known platform.
func (p PlatformChoice) IsValid() (bool, []error) {
	if _, err := p.Resolve(); err != nil {
		return false, []error{err}
	}
	return true, nil
}

// String returns the string representation of the OutputFormat.
func (f OutputFormat) String() string { return string(f) }

// IsValid returns whether the OutputFormat is one of the defined formats,
// and a list of validation errors if it is not.
func (f OutputFormat) IsValid() (bool, []error) {
	switch f {
	case FormatPath, FormatJSON, FormatYAML, FormatTOML, FormatFlags:
		return true, nil
	default:
		return false, []error{&InvalidFormatError{Value: f}}
	}
}

// Error implements the error interface for InvalidFormatError.
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: path, json, yaml, toml, flags)", e.Value)
}

// Unwrap returns ErrInvalidFormat for errors.Is() compatibility.
func (e *InvalidFormatError) Unwrap() error { return ErrInvalidFormat }

// Layout converts the native section into a build layout.
func (c NativeConfig) Layout() buildcfg.Layout {
	return buildcfg.Layout{
		CommonDir:        c.CommonDir,
		BindingDir:       c.BindingDir,
		CompatDir:        c.CompatDir,
		SourceExtensions: c.SourceExtensions,
	}
}

// IsValid returns whether the Config has valid fields.
// It delegates to Platform.IsValid(), Output.Format.IsValid() and the
// native layout's Validate(). Search paths are not checked: a path that
// does not exist is simply never accepted as a JDK home.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Platform.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Output.Format.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if err := c.Native.Layout().Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
