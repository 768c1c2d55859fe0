package binary

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// filenamePattern matches <name>[.<mode>].<os><compiler><release>.
// The name is non-greedy so that a trailing mode segment is captured as a
// mode rather than as part of the name.
var filenamePattern = regexp.MustCompile(
	`^(?P<name>.+?)` +
		`(?:\.(?P<mode>` + alternation(ModeStatic, ModeMPI, ModeDefault) + `))?` +
		`\.(?P<os>` + alternation(OSLinux, OSMacOS) + `)` +
		`(?P<compiler>` + alternation(CompilerGCC, CompilerClang) + `)` +
		`(?P<release>` + alternation(ReleaseTypeRelease, ReleaseTypeDebug) + `)$`,
)

func alternation[T ~string](values ...T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = regexp.QuoteMeta(string(v))
	}
	return strings.Join(parts, "|")
}

// Descriptor is a located (or locatable) suite binary. It is immutable:
// every field is validated when the descriptor is built and exposed only
// through accessors.
type Descriptor struct {
	dir         string
	name        string
	mode        Mode
	os          OS
	compiler    Compiler
	releaseType ReleaseType

	// source is the filename Parse was given; empty for New.
	source string
}

// New builds a descriptor from explicit field values. An empty mode means
// the filename has no mode segment. Values outside their closed sets fail
// with an *InvalidValueError.
func New(dir, name, mode, osName, compiler, releaseType string) (Descriptor, error) {
	m, err := ParseMode(mode)
	if err != nil {
		return Descriptor{}, err
	}
	o, err := ParseOS(osName)
	if err != nil {
		return Descriptor{}, err
	}
	c, err := ParseCompiler(compiler)
	if err != nil {
		return Descriptor{}, err
	}
	r, err := ParseReleaseType(releaseType)
	if err != nil {
		return Descriptor{}, err
	}
	if err := validateName(name, m); err != nil {
		return Descriptor{}, err
	}

	return Descriptor{
		dir:         dir,
		name:        name,
		mode:        m,
		os:          o,
		compiler:    c,
		releaseType: r,
	}, nil
}

// Parse decomposes filename into a descriptor rooted at dir. Filenames that
// do not end in one of the eight <os><compiler><release> tokens, or that are
// otherwise malformed, fail with an *InvalidFormatError.
//
// Parse accepts only filenames that Filename can reproduce. A name ending in
// a mode word followed by ".default", as in foo.static.default.linuxgccrelease,
// matches the pattern but is rejected: its canonical form would read back
// as name foo with mode static.
func Parse(dir, filename string) (Descriptor, error) {
	match := filenamePattern.FindStringSubmatch(filename)
	if match == nil {
		return Descriptor{}, &InvalidFormatError{Filename: filename}
	}

	field := func(group string) string {
		return match[filenamePattern.SubexpIndex(group)]
	}

	d, err := New(dir, field("name"), field("mode"), field("os"), field("compiler"), field("release"))
	if err != nil {
		return Descriptor{}, fmt.Errorf("%w: %w", &InvalidFormatError{Filename: filename}, err)
	}
	d.source = filename
	return d, nil
}

// validateName rejects names that cannot survive a format/parse round trip.
func validateName(name string, mode Mode) error {
	if name == "" {
		return &InvalidValueError{Field: "binary name", Value: name, Reason: "must not be empty"}
	}
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return &InvalidValueError{Field: "binary name", Value: name, Reason: "must not contain a path separator"}
	}

	// Without its own mode segment, a name ending in ".mpi" would be read
	// back as a shorter name plus a mode.
	if !mode.segment() {
		for _, m := range []Mode{ModeStatic, ModeMPI, ModeDefault} {
			suffix := "." + string(m)
			if strings.HasSuffix(name, suffix) && len(name) > len(suffix) {
				return &InvalidValueError{
					Field:  "binary name",
					Value:  name,
					Reason: fmt.Sprintf("ends in mode segment %q", suffix),
				}
			}
		}
	}
	return nil
}

// Dir returns the directory containing the binary.
func (d Descriptor) Dir() string { return d.dir }

// Name returns the logical tool name, e.g. "rosetta_scripts".
func (d Descriptor) Name() string { return d.name }

// Mode returns the build mode, ModeNone when the filename has no mode segment.
func (d Descriptor) Mode() Mode { return d.mode }

func (d Descriptor) OS() OS                   { return d.os }
func (d Descriptor) Compiler() Compiler       { return d.compiler }
func (d Descriptor) ReleaseType() ReleaseType { return d.releaseType }

// IsZero reports whether d is the zero descriptor.
func (d Descriptor) IsZero() bool {
	return d == Descriptor{}
}

// Filename reconstructs the canonical filename. ModeNone and ModeDefault
// both omit the mode segment together with its dot.
func (d Descriptor) Filename() string {
	var b strings.Builder
	b.WriteString(d.name)
	if d.mode.segment() {
		b.WriteByte('.')
		b.WriteString(string(d.mode))
	}
	b.WriteByte('.')
	b.WriteString(Triple(d.os, d.compiler, d.releaseType))
	return b.String()
}

// FullPath joins the directory and the canonical filename.
func (d Descriptor) FullPath() string {
	return filepath.Join(d.dir, d.Filename())
}

// Path returns the path of the file the descriptor was parsed from. It
// differs from FullPath only for ".default." filenames, whose canonical form
// drops the mode segment. Descriptors built with New return FullPath.
func (d Descriptor) Path() string {
	if d.source == "" {
		return d.FullPath()
	}
	return filepath.Join(d.dir, d.source)
}

// String returns the full path of the binary.
func (d Descriptor) String() string {
	return d.FullPath()
}

// Equal compares two descriptors field by field. ModeDefault and ModeNone
// are the same build and compare equal.
func (d Descriptor) Equal(other Descriptor) bool {
	return d.dir == other.dir &&
		d.name == other.name &&
		canonicalMode(d.mode) == canonicalMode(other.mode) &&
		d.os == other.os &&
		d.compiler == other.compiler &&
		d.releaseType == other.releaseType
}

func canonicalMode(m Mode) Mode {
	if m == ModeDefault {
		return ModeNone
	}
	return m
}
