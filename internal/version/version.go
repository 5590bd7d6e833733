// Package version carries the build metadata baked into the warden
// binary. Release builds override the variables below with
// -ldflags "-X textwarden/internal/version.GitCommit=..." and friends.
package version

import "github.com/fatih/color"

const (
	major = "0"
	minor = "1"
	patch = "0"
	pre   = "dev"
)

var (
	majorStyle = color.New(color.FgCyan, color.Bold)
	minorStyle = color.New(color.FgMagenta, color.Bold)
	patchStyle = color.New(color.FgWhite)
)

var (
	// Version is the semantic version of the CLI.
	Version = majorStyle.Sprint(major) + "." + minorStyle.Sprint(minor) + "." + patchStyle.Sprint(patch) + "-" + pre

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Plain returns the version without terminal styling, for logs and
// JSON output.
func Plain() string {
	return major + "." + minor + "." + patch + "-" + pre
}
