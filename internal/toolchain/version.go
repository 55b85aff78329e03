package toolchain

import (
	"context"
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// semverPattern finds the first version string in CLI output. The SDK may
// print first-run notices before the version line.
var semverPattern = regexp.MustCompile(`\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?`)

// ExtractVersion parses the first semantic version found in output.
func ExtractVersion(output string) (*semver.Version, error) {
	match := semverPattern.FindString(output)
	if match == "" {
		return nil, fmt.Errorf("no version found in %q", lastLines(output, 1))
	}
	v, err := semver.NewVersion(match)
	if err != nil {
		return nil, fmt.Errorf("parse version %q: %w", match, err)
	}
	return v, nil
}

// CheckInstalled runs the version command in dir and verifies the installed
// SDK is at least minimum. Returns the detected version.
func (d DotNet) CheckInstalled(ctx context.Context, runner Runner, dir, minimum string) (*semver.Version, error) {
	minVer, err := semver.NewVersion(minimum)
	if err != nil {
		return nil, fmt.Errorf("parse minimum version %q: %w", minimum, err)
	}

	res, err := runner.Run(ctx, d.Version(dir))
	if err != nil {
		return nil, fmt.Errorf("checking %s version: %w", d.Binary, err)
	}

	installed, err := ExtractVersion(res.Output)
	if err != nil {
		return nil, fmt.Errorf("checking %s version: %w", d.Binary, err)
	}

	if installed.LessThan(minVer) {
		return installed, fmt.Errorf("%w: %s %s installed, %s required", ErrToolVersion, d.Binary, installed, minVer)
	}
	return installed, nil
}
