package gmsh

// Well-known engine option names. The engine exposes hundreds of dotted
// option paths; these are the ones the wrapper and its tooling touch. Any
// other valid engine option name works with the Session accessors too.
const (
	// OptTerminal routes engine messages to the terminal (numeric, 0 or 1).
	OptTerminal = "General.Terminal"

	// OptVerbosity sets the engine message verbosity level (numeric, 0-99).
	OptVerbosity = "General.Verbosity"

	// OptVersion reports the engine version (string, read on startup).
	OptVersion = "General.Version"

	// OptBuildOptions reports the engine's compile-time options (string).
	OptBuildOptions = "General.BuildOptions"

	// OptMeshAlgorithm selects the 2D meshing algorithm (numeric).
	OptMeshAlgorithm = "Mesh.Algorithm"

	// OptMeshSizeFactor scales all target mesh element sizes (numeric).
	OptMeshSizeFactor = "Mesh.MeshSizeFactor"
)
