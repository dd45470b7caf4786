// Package version holds build metadata stamped by the linker:
//
//	go build -ldflags "-X github.com/droidgen/droidgen/pkg/version.Version=v0.4.0 \
//	  -X github.com/droidgen/droidgen/pkg/version.Commit=$(git rev-parse HEAD)"
package version

import "fmt"

// Build-time variables injected via -ldflags.
var (
	Version = "v0.4.0-dev"
	Commit  = "none"
	Date    = "unknown"
)

// shortCommitLen is the number of hash characters shown by GetFullVersion.
const shortCommitLen = 7

// GetVersion returns the release version. It is also written into generated
// projects as the generator version.
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version with abbreviated commit and build date.
func GetFullVersion() string {
	commit := Commit
	if len(commit) > shortCommitLen {
		commit = commit[:shortCommitLen]
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, Date)
}
