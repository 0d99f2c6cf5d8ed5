package gmsh

// TagAuto asks the engine to pick the next free tag for a new entity.
const TagAuto int32 = -1

// Backend is the call surface of the native engine. Every method exchanges
// primitive values plus an integer status code; translating statuses into
// structured errors happens above this boundary, never below it.
//
// Two implementations exist: the cgo bindings in internal/bindings, which
// link against libgmsh, and enginetest.Engine, a deterministic in-memory
// engine for tests and examples.
type Backend interface {
	Initialize(argv []string, readConfig bool) int
	Finalize() int

	ModelAdd(name string) int
	ModelSetCurrent(name string) int
	// ModelRemove removes whichever model is current.
	ModelRemove() int

	GeoAddPoint(x, y, z, meshSize float64, tagHint int32) (int32, int)
	GeoAddLine(p1, p2, tagHint int32) (int32, int)
	GeoAddCurveLoop(curves []int32, tagHint int32) (int32, int)
	GeoAddPlaneSurface(wires []int32, tagHint int32) (int32, int)
	GeoRemove(tags []int32, recursive bool) int
	GeoSynchronize() int

	OccAddPoint(x, y, z, meshSize float64, tagHint int32) (int32, int)
	OccAddLine(p1, p2, tagHint int32) (int32, int)
	OccAddCurveLoop(curves []int32, tagHint int32) (int32, int)
	OccAddPlaneSurface(wires []int32, tagHint int32) (int32, int)
	OccRemove(tags []int32, recursive bool) int
	OccSynchronize() int

	OccAddBox(x, y, z, dx, dy, dz float64, tagHint int32) (int32, int)
	OccAddSphere(xc, yc, zc, radius, angle1, angle2, angle3 float64, tagHint int32) (int32, int)
	OccAddTorus(xc, yc, zc, majorRadius, pipeRadius, angle float64, tagHint int32) (int32, int)

	MeshGenerate(dim int) int

	OptionGetNumber(name string) (float64, int)
	OptionSetNumber(name string, value float64) int
	OptionGetString(name string) (string, int)
	OptionSetString(name, value string) int
}
