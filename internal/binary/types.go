package binary

import "fmt"

// DefaultName is the binary looked up when no name is given.
const DefaultName = "rosetta_scripts"

// Mode is the optional build variant segment of a binary filename.
type Mode string

const (
	// ModeNone means the filename carries no mode segment.
	ModeNone Mode = ""
	// ModeStatic is a statically linked build
	ModeStatic Mode = "static"
	// ModeMPI is an MPI-enabled build
	ModeMPI Mode = "mpi"
	// ModeDefault is the explicit default build. It formats without a
	// segment, exactly like ModeNone.
	ModeDefault Mode = "default"
)

// OS is the operating system token of a binary filename.
type OS string

const (
	OSLinux OS = "linux"
	OSMacOS OS = "macos"
)

// Compiler is the compiler token of a binary filename.
type Compiler string

const (
	CompilerGCC   Compiler = "gcc"
	CompilerClang Compiler = "clang"
)

// ReleaseType is the build type token of a binary filename.
type ReleaseType string

const (
	ReleaseTypeRelease ReleaseType = "release"
	ReleaseTypeDebug   ReleaseType = "debug"
)

// String returns the string representation of the mode
func (m Mode) String() string {
	if m == ModeNone {
		return "none"
	}
	return string(m)
}

// segment reports whether the mode occupies its own filename segment.
func (m Mode) segment() bool {
	return m == ModeStatic || m == ModeMPI
}

func (o OS) String() string          { return string(o) }
func (c Compiler) String() string    { return string(c) }
func (r ReleaseType) String() string { return string(r) }

// AllModes returns every accepted mode, including ModeNone.
func AllModes() []Mode {
	return []Mode{ModeNone, ModeStatic, ModeMPI, ModeDefault}
}

// AllOSes returns every supported operating system token.
func AllOSes() []OS {
	return []OS{OSLinux, OSMacOS}
}

// AllCompilers returns every supported compiler token.
func AllCompilers() []Compiler {
	return []Compiler{CompilerGCC, CompilerClang}
}

// AllReleaseTypes returns every supported release type token.
func AllReleaseTypes() []ReleaseType {
	return []ReleaseType{ReleaseTypeRelease, ReleaseTypeDebug}
}

// ParseMode validates a mode string. The empty string is ModeNone.
func ParseMode(s string) (Mode, error) {
	for _, m := range AllModes() {
		if string(m) == s {
			return m, nil
		}
	}
	return ModeNone, &InvalidValueError{Field: "mode", Value: s}
}

// ParseOS validates an operating system token. Matching is case-sensitive.
func ParseOS(s string) (OS, error) {
	for _, o := range AllOSes() {
		if string(o) == s {
			return o, nil
		}
	}
	return "", &InvalidValueError{Field: "os", Value: s}
}

// ParseCompiler validates a compiler token.
func ParseCompiler(s string) (Compiler, error) {
	for _, c := range AllCompilers() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", &InvalidValueError{Field: "compiler", Value: s}
}

// ParseReleaseType validates a release type token.
func ParseReleaseType(s string) (ReleaseType, error) {
	for _, r := range AllReleaseTypes() {
		if string(r) == s {
			return r, nil
		}
	}
	return "", &InvalidValueError{Field: "release type", Value: s}
}

// Triple returns the unbroken <os><compiler><release> token.
func Triple(o OS, c Compiler, r ReleaseType) string {
	return fmt.Sprintf("%s%s%s", o, c, r)
}
