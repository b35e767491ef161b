package app

import "log/slog"

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/heartmarshall/timesheet-relay/internal/app.Version=1.0.0" ./cmd/server
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// buildInfo groups the link-time metadata under a single "build" key.
func buildInfo() slog.Attr {
	return slog.Group("build",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("time", BuildTime),
	)
}
