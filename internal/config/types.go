// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// FormatText renders the discovered tree for terminals.
	FormatText OutputFormat = "text"
	// FormatJSON exports the discovered tree as JSON.
	FormatJSON OutputFormat = "json"
	// FormatYAML exports the discovered tree as YAML.
	FormatYAML OutputFormat = "yaml"
	// FormatTOML exports the discovered tree as TOML.
	FormatTOML OutputFormat = "toml"

	// DefaultEnginePrefix is the prefix used by the legacy engine.
	DefaultEnginePrefix EnginePrefix = "junit4"
	// DefaultParallelism builds candidates sequentially.
	DefaultParallelism = 1
	// DefaultManifestCacheSize is the number of parsed manifests kept in memory.
	DefaultManifestCacheSize = 256
)

var (
	// ErrInvalidOutputFormat is returned when an OutputFormat value is not recognized.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidEnginePrefix is returned when an EnginePrefix value is empty or
	// contains an ID separator.
	ErrInvalidEnginePrefix = errors.New("invalid engine prefix")
	// ErrInvalidClasspathRoot is returned when a ClasspathRoot is whitespace-only.
	ErrInvalidClasspathRoot = errors.New("invalid classpath root")
	// ErrInvalidParallelism is returned when parallelism is below one.
	ErrInvalidParallelism = errors.New("invalid parallelism")
	// ErrInvalidCacheSize is returned when the manifest cache size is below one.
	ErrInvalidCacheSize = errors.New("invalid manifest cache size")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// OutputFormat selects how `vintage discover` prints its result.
	OutputFormat string

	// EnginePrefix is the first segment of every unique ID.
	EnginePrefix string

	// ClasspathRoot is a directory scanned for class manifests.
	ClasspathRoot string

	// InvalidValueError reports a single invalid configuration value.
	// It wraps the field's sentinel error for errors.Is() compatibility.
	InvalidValueError struct {
		Field    string
		Value    any
		Reason   string
		sentinel error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// EnginePrefix is the prefix of top-level unique IDs.
		EnginePrefix EnginePrefix `json:"engine_prefix" mapstructure:"engine_prefix"`
		// Classpath lists the roots used for class and package lookups.
		Classpath []ClasspathRoot `json:"classpath" mapstructure:"classpath"`
		// Parallelism bounds concurrent runner construction.
		Parallelism int `json:"parallelism" mapstructure:"parallelism"`
		// ManifestCacheSize is the capacity of the parsed-manifest cache.
		ManifestCacheSize int `json:"manifest_cache_size" mapstructure:"manifest_cache_size"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// Format is the default output format of `vintage discover`
		Format OutputFormat `json:"format" mapstructure:"format"`
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		EnginePrefix:      DefaultEnginePrefix,
		Classpath:         []ClasspathRoot{},
		Parallelism:       DefaultParallelism,
		ManifestCacheSize: DefaultManifestCacheSize,
		UI: UIConfig{
			Verbose: false,
			Format:  FormatText,
		},
	}
}

// ClasspathStrings returns the classpath as plain paths.
func (c Config) ClasspathStrings() []string {
	out := make([]string, len(c.Classpath))
	for i, root := range c.Classpath {
		out[i] = string(root)
	}
	return out
}

// IsValid returns whether the Config has valid fields.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.EnginePrefix.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	for _, root := range c.Classpath {
		if valid, fieldErrs := root.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if c.Parallelism < 1 {
		errs = append(errs, &InvalidValueError{
			Field: "parallelism", Value: c.Parallelism, Reason: "must be at least 1", sentinel: ErrInvalidParallelism,
		})
	}
	if c.ManifestCacheSize < 1 {
		errs = append(errs, &InvalidValueError{
			Field: "manifest_cache_size", Value: c.ManifestCacheSize, Reason: "must be at least 1", sentinel: ErrInvalidCacheSize,
		})
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// IsValid returns whether the UIConfig has valid fields.
func (c UIConfig) IsValid() (bool, []error) {
	return c.Format.IsValid()
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig followed by the field errors, so callers
// can match either the aggregate or a specific field sentinel.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// Error implements the error interface for InvalidValueError.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s %v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns the field's sentinel error.
func (e *InvalidValueError) Unwrap() error { return e.sentinel }

// String returns the string representation of the OutputFormat.
func (f OutputFormat) String() string { return string(f) }

// IsValid returns whether the OutputFormat is one of the defined formats.
func (f OutputFormat) IsValid() (bool, []error) {
	switch f {
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
		return true, nil
	default:
		return false, []error{&InvalidValueError{
			Field: "ui.format", Value: fmt.Sprintf("%q", string(f)),
			Reason: "must be one of text, json, yaml, toml", sentinel: ErrInvalidOutputFormat,
		}}
	}
}

// String returns the string representation of the EnginePrefix.
func (p EnginePrefix) String() string { return string(p) }

// IsValid returns whether the EnginePrefix can start a unique ID.
// The prefix may not contain ':' or '/', which delimit ID segments.
func (p EnginePrefix) IsValid() (bool, []error) {
	if strings.TrimSpace(string(p)) == "" || strings.ContainsAny(string(p), ":/ ") {
		return false, []error{&InvalidValueError{
			Field: "engine_prefix", Value: fmt.Sprintf("%q", string(p)),
			Reason: "must be non-empty without ':', '/' or spaces", sentinel: ErrInvalidEnginePrefix,
		}}
	}
	return true, nil
}

// String returns the string representation of the ClasspathRoot.
func (r ClasspathRoot) String() string { return string(r) }

// IsValid returns whether the ClasspathRoot is non-empty and not whitespace-only.
func (r ClasspathRoot) IsValid() (bool, []error) {
	if strings.TrimSpace(string(r)) == "" {
		return false, []error{&InvalidValueError{
			Field: "classpath", Value: fmt.Sprintf("%q", string(r)),
			Reason: "must be non-empty", sentinel: ErrInvalidClasspathRoot,
		}}
	}
	return true, nil
}
