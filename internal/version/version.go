package version

// Version is the current QuickDL release, overridable at build time via
// -ldflags "-X .../internal/version.Version=x.y.z".
var Version = "1.0.0"
