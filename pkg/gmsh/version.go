package gmsh

import "github.com/rgmsh/gmsh-go/internal/bindings"

// Version is the wrapper's semantic version, populated at build time via
// ldflags. In development it defaults to v0.0.0-dev.
var Version = "v0.0.0-dev"

// WrapperVersion returns the version of this Go wrapper.
func WrapperVersion() string {
	return Version
}

// EngineVersion returns the version string compiled into the native
// bindings, or "unavailable" when they are not linked in. A live Session can
// read the exact runtime value through StringOption(OptVersion).
func EngineVersion() string {
	if v := bindings.Version(); v != "" {
		return v
	}
	return "unavailable"
}
