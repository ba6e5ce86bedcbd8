// Package version exposes the build identifier.
package version

// Build holds the build identifier, injected via -ldflags. Default "dev".
var Build = "dev"
