// Package version reports the docnav build version, set at link time:
//
//	go build -ldflags "-X git.home.luguber.info/inful/docnav/internal/version.Version=v0.3.0"
package version

import "fmt"

// Version is the release tag of the binary.
var Version = "dev"

// Build metadata, also set via ldflags.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the version line printed by the CLI.
func String() string {
	return fmt.Sprintf("docnav %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
