package app

import "fmt"

// Set via ldflags, for example:
//
//	go build -ldflags "-X github.com/heartmarshall/torque-dictionary/internal/app.Version=1.0.0 \
//	  -X github.com/heartmarshall/torque-dictionary/internal/app.Commit=$(git rev-parse --short HEAD)" ./cmd/server
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version string reported in startup logs and by /health.
func BuildVersion() string {
	if Commit == "unknown" && BuildTime == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
