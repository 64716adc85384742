package version

import "fmt"

// Version is the release version embedded in the binary.
// It can be overridden at build time via:
// go build -ldflags "-X github.com/oukeidos/transdata/internal/version.Version=0.1.0"
var Version = "0.1.0"

// Commit and BuildDate are set the same way as Version.
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info returns a multi-line version string for CLI output.
func Info() string {
	return fmt.Sprintf("transdata %s\ncommit: %s\nbuild: %s", Version, Commit, BuildDate)
}
