// Package buildinfo carries version metadata stamped at build time.
package buildinfo

// Set via -ldflags at release build; defaults identify a dev build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
