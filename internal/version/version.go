package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/cmdmatch/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/cmdmatch/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/cmdmatch/internal/version.Date={{.Date}}
)

// String formats the build information on three lines
func String() string {
	return fmt.Sprintf("cmdmatch version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
