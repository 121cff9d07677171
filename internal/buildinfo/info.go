// Package buildinfo carries version metadata injected at build time via
// -ldflags "-X github.com/finscope-dev/finscope/internal/buildinfo.Version=...".
package buildinfo

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
