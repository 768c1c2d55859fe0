// Package platform detects the host the locator runs on.
//
// Only the operating system decides which suite builds are usable; the
// architecture and Linux distribution are collected for diagnostics and are
// exposed to Lua configuration files through a read-only platform table.
// Distribution details come from gopsutil and fall back to empty values when
// detection fails.
package platform

import (
	"context"
	"errors"
)

// Linux distribution family constants.
const (
	FamilyDebian  = "debian"  // Debian, Ubuntu, Linux Mint
	FamilyRHEL    = "rhel"    // RHEL, CentOS, Rocky Linux, AlmaLinux
	FamilyFedora  = "fedora"  // Fedora
	FamilySUSE    = "suse"    // openSUSE, SLES
	FamilyArch    = "arch"    // Arch Linux, Manjaro
	FamilyAlpine  = "alpine"  // Alpine Linux
	FamilyUnknown = "unknown" // Unrecognized distributions
)

// Info contains platform detection information.
type Info struct {
	OS       string // GOOS value: "linux", "darwin", "windows", ...
	Arch     string // normalized: "amd64", "arm64", or the raw value
	ArchRaw  string // original GOARCH
	Platform string // distro ID (Linux only, e.g., "ubuntu")
	Family   string // canonical family (e.g., "debian")
	Version  string // distro version (Linux only, e.g., "22.04")
}

// Distro contains Linux distribution information.
type Distro struct {
	ID      string
	Family  string
	Version string
}

// GetDistro returns distro information if this is a Linux platform.
// Returns nil for non-Linux platforms or if distro detection failed.
func (i *Info) GetDistro() *Distro {
	if i.OS != "linux" || i.Platform == "" {
		return nil
	}
	return &Distro{
		ID:      i.Platform,
		Family:  i.Family,
		Version: i.Version,
	}
}

// IsLinux returns true if the platform is Linux.
func (i *Info) IsLinux() bool {
	return i.OS == "linux"
}

// IsMacOS returns true if the platform is macOS.
func (i *Info) IsMacOS() bool {
	return i.OS == "darwin"
}

// IsSupported reports whether the suite ships builds for this OS.
func (i *Info) IsSupported() bool {
	return i.IsLinux() || i.IsMacOS()
}

// IsAppleSilicon returns true if running on Apple Silicon (macOS + arm64).
func (i *Info) IsAppleSilicon() bool {
	return i.OS == "darwin" && i.Arch == "arm64"
}

// Detector is the interface for platform detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}

// StaticDetector always reports the same platform. It is used to pin the
// platform in tests and to simulate hosts the locator does not support.
type StaticDetector struct {
	Info *Info
	Err  error
}

// NewStaticDetector returns a detector that reports info.
func NewStaticDetector(info *Info) *StaticDetector {
	return &StaticDetector{Info: info}
}

// Detect returns the configured info and error.
func (s *StaticDetector) Detect(ctx context.Context) (*Info, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Info == nil {
		return nil, errors.New("static detector has no platform info")
	}
	info := *s.Info
	return &info, nil
}
