package binary

import (
	"fmt"

	"github.com/ZebulonRouseFrantzich/rosettafinder/internal/platform"
)

// HostOS maps detected platform information to the suite's OS token.
func HostOS(platformInfo *platform.Info) (OS, error) {
	if platformInfo == nil {
		return "", fmt.Errorf("platform info is required")
	}
	return mapSuiteOS(platformInfo.OS)
}

// mapSuiteOS maps Go GOOS values to suite OS tokens.
// The suite only ships Linux and macOS builds.
func mapSuiteOS(goos string) (OS, error) {
	switch goos {
	case "linux":
		return OSLinux, nil
	case "darwin":
		return OSMacOS, nil
	default:
		return "", fmt.Errorf("%w: %s (supported: linux, darwin)", ErrUnsupportedOS, goos)
	}
}
