// Package finder locates Rosetta binaries on disk.
//
// Candidate directories come from the environment, an optional custom path
// and optional configured paths. Each directory is listed and every entry is
// matched against the suite naming convention understood by package binary.
package finder

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ZebulonRouseFrantzich/rosettafinder/internal/binary"
	"github.com/ZebulonRouseFrantzich/rosettafinder/internal/platform"
)

// Environment variables that seed the search path.
const (
	// EnvBin names a directory searched before anything else.
	EnvBin = "ROSETTA_BIN"
	// EnvRosetta3 is a suite install root; its bin directory is searched.
	EnvRosetta3 = "ROSETTA3"
	// EnvRosetta is a source checkout root; main/source/bin is searched.
	EnvRosetta = "ROSETTA"
)

// Finder searches candidate directories for suite binaries. A Finder holds
// no state between lookups; every call re-reads the environment.
type Finder struct {
	searchPath string
	extraPaths []string
	getenv     func(string) string
	detector   platform.Detector
	logger     Logger
	readDir    func(string) ([]fs.DirEntry, error)
}

// Option configures a Finder.
type Option func(*Finder)

// WithSearchPath adds a custom directory, searched after the
// environment-derived ones.
func WithSearchPath(dir string) Option {
	return func(f *Finder) {
		f.searchPath = dir
	}
}

// WithExtraPaths appends directories searched after the custom path.
func WithExtraPaths(dirs ...string) Option {
	return func(f *Finder) {
		f.extraPaths = append(f.extraPaths, dirs...)
	}
}

// WithEnv replaces os.Getenv as the source of environment variables.
func WithEnv(getenv func(string) string) Option {
	return func(f *Finder) {
		if getenv != nil {
			f.getenv = getenv
		}
	}
}

// WithDetector replaces the host platform detector.
func WithDetector(d platform.Detector) Option {
	return func(f *Finder) {
		if d != nil {
			f.detector = d
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l Logger) Option {
	return func(f *Finder) {
		if l != nil {
			f.logger = l
		}
	}
}

// New creates a Finder.
func New(opts ...Option) *Finder {
	f := &Finder{
		getenv:   os.Getenv,
		detector: platform.NewDetector(),
		logger:   &noopLogger{},
		readDir:  os.ReadDir,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CandidateDirectories returns the directories to search, highest priority
// first:
//
//  1. $ROSETTA_BIN
//  2. $ROSETTA3/bin
//  3. $ROSETTA/main/source/bin
//  4. the custom search path
//  5. extra (configured) paths
//
// Unset variables contribute nothing. Directories are not checked for
// existence here.
func (f *Finder) CandidateDirectories() []string {
	var dirs []string

	if bin := f.getenv(EnvBin); bin != "" {
		dirs = append(dirs, bin)
	}
	if root := f.getenv(EnvRosetta3); root != "" {
		dirs = append(dirs, filepath.Join(root, "bin"))
	}
	if root := f.getenv(EnvRosetta); root != "" {
		dirs = append(dirs, filepath.Join(root, "main", "source", "bin"))
	}
	if f.searchPath != "" {
		dirs = append(dirs, f.searchPath)
	}
	for _, dir := range f.extraPaths {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}

	return dirs
}

// FindBinary returns the first binary called name built for the host OS.
// Directories are visited in CandidateDirectories order and entries within a
// directory in lexical order. An empty name means binary.DefaultName.
//
// On a host other than Linux or macOS it fails with
// *UnsupportedPlatformError before reading any directory. When nothing
// matches it fails with *NotFoundError.
func (f *Finder) FindBinary(ctx context.Context, name string) (binary.Descriptor, error) {
	var found binary.Descriptor
	err := f.search(ctx, name, func(d binary.Descriptor) bool {
		found = d
		return false
	})
	if err != nil {
		return binary.Descriptor{}, err
	}
	return found, nil
}

// FindAll returns every binary called name built for the host OS, in the
// same order FindBinary would consider them.
func (f *Finder) FindAll(ctx context.Context, name string) ([]binary.Descriptor, error) {
	var found []binary.Descriptor
	err := f.search(ctx, name, func(d binary.Descriptor) bool {
		found = append(found, d)
		return true
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// search calls visit for each match until visit returns false.
func (f *Finder) search(ctx context.Context, name string, visit func(binary.Descriptor) bool) error {
	if name == "" {
		name = binary.DefaultName
	}

	hostOS, err := f.hostOS(ctx)
	if err != nil {
		return err
	}

	dirs := f.CandidateDirectories()
	f.logger.Debug("searching for binary", "name", name, "os", hostOS, "directories", dirs)

	matched := false
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("search cancelled: %w", err)
		}

		entries, err := f.readDir(dir)
		if err != nil {
			f.logger.Debug("skipping directory", "dir", dir, "error", err)
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			d, err := binary.Parse(dir, entry.Name())
			if err != nil {
				continue
			}
			if d.Name() != name || d.OS() != hostOS {
				continue
			}

			f.logger.Debug("found binary", "path", d.Path(), "mode", d.Mode())
			matched = true
			if !visit(d) {
				return nil
			}
		}
	}

	if !matched {
		return &NotFoundError{Name: name, Searched: dirs}
	}
	return nil
}

// hostOS detects the platform and maps it to the suite OS token.
func (f *Finder) hostOS(ctx context.Context) (binary.OS, error) {
	info, err := f.detector.Detect(ctx)
	if err != nil {
		return "", fmt.Errorf("detect platform: %w", err)
	}
	if info == nil {
		return "", fmt.Errorf("detect platform: no platform info")
	}
	if !info.IsSupported() {
		return "", &UnsupportedPlatformError{OS: info.OS}
	}
	return binary.HostOS(info)
}
