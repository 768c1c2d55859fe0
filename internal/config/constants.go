package config

// Lua schema field names and globals
const (
	luaGlobal        = "rosettafinder"
	luaFieldBinary   = "binary"
	luaFieldPaths    = "search_paths"
	luaFieldLogLevel = "log_level"
)

// EnvConfigPath overrides the default config file location.
const EnvConfigPath = "ROSETTAFINDER_CONFIG"

// MaxSearchPaths bounds the number of configured search paths.
const MaxSearchPaths = 64

// Log levels accepted by the log_level field.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)
