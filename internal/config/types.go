// Package config loads the optional Lua configuration of the locator.
//
// A config file declares a global rosettafinder table:
//
//	rosettafinder = {
//	    binary = "rosetta_scripts",
//	    search_paths = {
//	        "/opt/rosetta/main/source/bin",
//	        platform.when(platform.is_macos, "~/rosetta/bin"),
//	    },
//	    log_level = "info",
//	}
//
// Files run in a sandboxed gopher-lua VM with a read-only platform table.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config is the parsed locator configuration.
type Config struct {
	// Binary is the default binary name looked up when none is given.
	Binary string `json:"binary,omitempty"`

	// SearchPaths are searched after every environment-derived directory
	// and after the path given on the command line.
	SearchPaths []string `json:"search_paths,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{LogLevel: LogLevelWarn}
}

// Validate performs basic validation on a Config.
func (c *Config) Validate() error {
	if c.Binary != "" && strings.ContainsAny(c.Binary, `/\`) {
		return &ValidationError{Field: luaFieldBinary, Message: fmt.Sprintf("binary name %q must not contain a path separator", c.Binary)}
	}

	if len(c.SearchPaths) > MaxSearchPaths {
		return &ValidationError{
			Field:   luaFieldPaths,
			Message: fmt.Sprintf("too many search paths (%d), maximum is %d", len(c.SearchPaths), MaxSearchPaths),
		}
	}

	for i, p := range c.SearchPaths {
		if err := validateSearchPath(p); err != nil {
			return &ValidationError{Field: fmt.Sprintf("%s[%d]", luaFieldPaths, i+1), Message: err.Error()}
		}
	}

	switch c.LogLevel {
	case "", LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return &ValidationError{Field: luaFieldLogLevel, Message: fmt.Sprintf("unknown log level %q", c.LogLevel)}
	}

	return nil
}

// ValidationError represents a config validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "config validation failed for " + e.Field + ": " + e.Message
	}
	return "config validation failed: " + e.Message
}

// validateSearchPath accepts absolute paths and paths starting with ~/.
func validateSearchPath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if strings.HasPrefix(path, "~/") {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("search path must be absolute or start with ~/: %s", path)
	}
	return nil
}

// expandHome replaces a leading ~/ with the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return filepath.Clean(path), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}

// ResolvedSearchPaths returns SearchPaths with ~/ expanded, in order.
func (c *Config) ResolvedSearchPaths() ([]string, error) {
	paths := make([]string, 0, len(c.SearchPaths))
	for _, p := range c.SearchPaths {
		expanded, err := expandHome(p)
		if err != nil {
			return nil, err
		}
		paths = append(paths, expanded)
	}
	return paths, nil
}
