package finder

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedPlatform is returned before any directory is scanned
	// when the host OS is neither Linux nor macOS.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrNotFound is returned when no candidate directory holds a match.
	ErrNotFound = errors.New("binary not found")
)

// UnsupportedPlatformError names the host OS that was rejected.
type UnsupportedPlatformError struct {
	OS string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("%s: %s (Rosetta binaries are built for linux and macos only)", ErrUnsupportedPlatform, e.OS)
}

func (e *UnsupportedPlatformError) Unwrap() error {
	return ErrUnsupportedPlatform
}

// NotFoundError lists the directories that were searched, in order.
type NotFoundError struct {
	Name     string
	Searched []string
}

func (e *NotFoundError) Error() string {
	if len(e.Searched) == 0 {
		return fmt.Sprintf("%s: %s (no search directories; set ROSETTA_BIN, ROSETTA3 or ROSETTA)", ErrNotFound, e.Name)
	}
	return fmt.Sprintf("%s: %s (searched: %s)", ErrNotFound, e.Name, strings.Join(e.Searched, ", "))
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
