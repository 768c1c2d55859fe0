package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZebulonRouseFrantzich/rosettafinder/internal/platform"
	lua "github.com/yuin/gopher-lua"
)

// Parser represents a Lua config parser with platform detection.
type Parser struct {
	detector platform.Detector
}

// NewParser creates a new config parser with the given platform detector.
// A nil detector leaves the platform table undefined.
func NewParser(detector platform.Detector) *Parser {
	return &Parser{detector: detector}
}

// ParseString parses a Lua config from a string.
func (p *Parser) ParseString(ctx context.Context, luaCode string) (*Config, error) {
	L := newSandboxedVM()
	defer L.Close()
	L.SetContext(ctx)

	if p.detector != nil {
		platformInfo, err := p.detector.Detect(ctx)
		if err != nil {
			return nil, fmt.Errorf("platform detection failed: %w", err)
		}
		if err := platform.InjectPlatformTable(L, platformInfo); err != nil {
			return nil, fmt.Errorf("inject platform table: %w", err)
		}
	}

	if err := L.DoString(luaCode); err != nil {
		return nil, &ParseError{
			Message: "Lua syntax error",
			Detail:  err.Error(),
		}
	}

	return extractConfig(L)
}

// ParseFile reads and parses the config file at path.
func (p *Parser) ParseFile(ctx context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := p.ParseString(ctx, string(data))
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Load resolves the config location and parses it. An explicit path wins,
// then $ROSETTAFINDER_CONFIG, then DefaultPath. A missing file is an error
// only when it was asked for explicitly; otherwise Default is returned.
// The returned path is empty when no file was read.
func (p *Parser) Load(ctx context.Context, explicitPath string) (*Config, string, error) {
	path, explicit := explicitPath, explicitPath != ""
	if !explicit {
		if env := os.Getenv(EnvConfigPath); env != "" {
			path, explicit = env, true
		}
	}
	if !explicit {
		def, err := DefaultPath()
		if err != nil {
			return Default(), "", nil
		}
		path = def
	}

	cfg, err := p.ParseFile(ctx, path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), "", nil
		}
		return nil, path, err
	}
	return cfg, path, nil
}

// DefaultPath returns <user config dir>/rosettafinder/config.lua.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config directory: %w", err)
	}
	return filepath.Join(dir, "rosettafinder", "config.lua"), nil
}

// ParseError represents a config parsing error with friendly message.
type ParseError struct {
	Message string // User-friendly message
	Detail  string // Technical details (raw Lua error)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Detail)
}

// extractConfig reads the global rosettafinder table.
func extractConfig(L *lua.LState) (*Config, error) {
	root := L.GetGlobal(luaGlobal)
	if root.Type() != lua.LTTable {
		return nil, &ParseError{
			Message: fmt.Sprintf("missing or invalid '%s' table", luaGlobal),
			Detail:  fmt.Sprintf("expected table, got %s", root.Type()),
		}
	}

	cfg := Default()
	table := root.(*lua.LTable)

	switch v := table.RawGetString(luaFieldBinary); v.Type() {
	case lua.LTNil:
	case lua.LTString:
		cfg.Binary = v.String()
	default:
		return nil, fieldTypeError(luaFieldBinary, "string", v)
	}

	switch v := table.RawGetString(luaFieldPaths); v.Type() {
	case lua.LTNil:
	case lua.LTTable:
		paths, err := extractPaths(v.(*lua.LTable))
		if err != nil {
			return nil, err
		}
		cfg.SearchPaths = paths
	default:
		return nil, fieldTypeError(luaFieldPaths, "table", v)
	}

	switch v := table.RawGetString(luaFieldLogLevel); v.Type() {
	case lua.LTNil:
	case lua.LTString:
		cfg.LogLevel = strings.ToLower(v.String())
	default:
		return nil, fieldTypeError(luaFieldLogLevel, "string", v)
	}

	if err := cfg.Validate(); err != nil {
		return nil, &ParseError{
			Message: "config validation failed",
			Detail:  err.Error(),
		}
	}

	return cfg, nil
}

func fieldTypeError(field, want string, got lua.LValue) error {
	return &ParseError{
		Message: fmt.Sprintf("invalid '%s.%s'", luaGlobal, field),
		Detail:  fmt.Sprintf("expected %s, got %s", want, got.Type()),
	}
}

// extractPaths returns the string entries of the array part in order. nil
// holes left by platform conditionals are skipped; any other non-string
// entry is an error.
func extractPaths(table *lua.LTable) ([]string, error) {
	var paths []string
	for i := 1; i <= table.MaxN(); i++ {
		switch v := table.RawGetInt(i); v.Type() {
		case lua.LTNil:
		case lua.LTString:
			paths = append(paths, v.String())
		default:
			return nil, fieldTypeError(fmt.Sprintf("%s[%d]", luaFieldPaths, i), "string", v)
		}
	}
	return paths, nil
}

// FormatError formats a ParseError for user display.
// In verbose mode, show the raw Lua error. Otherwise, show friendly message.
func FormatError(err error, verbose bool) string {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		if verbose {
			return fmt.Sprintf("%s\n\nDetails:\n%s", parseErr.Message, parseErr.Detail)
		}
		detail := parseErr.Detail
		if idx := strings.Index(detail, "stack traceback"); idx > 0 {
			detail = strings.TrimSpace(detail[:idx])
		}
		return fmt.Sprintf("%s: %s", parseErr.Message, detail)
	}
	return err.Error()
}
