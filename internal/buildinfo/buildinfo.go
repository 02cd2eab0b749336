// Package buildinfo holds build-time metadata injected via -ldflags.
package buildinfo

// Version is the semantic version or tag for this build.
// Inject via: -X github.com/codermillat/wbe-uni-fee-compare/internal/buildinfo.Version=...
var Version = ""

// Commit is the git commit SHA for this build.
// Inject via: -X github.com/codermillat/wbe-uni-fee-compare/internal/buildinfo.Commit=...
var Commit = ""

// BuildDate is the RFC3339 build timestamp.
// Inject via: -X github.com/codermillat/wbe-uni-fee-compare/internal/buildinfo.BuildDate=...
var BuildDate = ""
