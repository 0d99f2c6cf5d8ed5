package gmsh

// Tags identify entities inside one model. They are only issued by successful
// model operations; client code cannot build one from a raw integer. The raw
// value is model-scoped: two models may issue identical values, and a tag
// does not record which model issued it. See the package documentation for
// the resulting caller responsibilities.

// PointTag identifies a point. Points are the 0D building blocks for larger
// shapes.
type PointTag struct {
	tag int32
}

// Raw returns the engine-facing integer. It exists for diagnostics and
// logging; feeding raw values back into another model is on the caller.
func (t PointTag) Raw() int32 { return t.tag }

// CurveTag identifies a curve, including straight lines. 1D. Curves carry a
// direction from start to end, encoded in the tag's sign.
type CurveTag struct {
	tag int32
}

func (t CurveTag) Raw() int32 { return t.tag }

// Reversed returns the same curve traversed in the opposite direction. This
// is a pure value transform; no engine call is made. Reversing twice yields
// the original tag.
func (t CurveTag) Reversed() CurveTag {
	return CurveTag{tag: -t.tag}
}

// WireTag identifies a wire, a closed path of directed curves. Wires bound
// surfaces.
type WireTag struct {
	tag int32
}

func (t WireTag) Raw() int32 { return t.tag }

// SurfaceTag identifies a surface built from closed wires. 2D.
type SurfaceTag struct {
	tag int32
}

func (t SurfaceTag) Raw() int32 { return t.tag }

// ShellTag identifies a shell, a closed set of surfaces bounding a volume.
type ShellTag struct {
	tag int32
}

func (t ShellTag) Raw() int32 { return t.tag }

// VolumeTag identifies a volume built from closed shells. 3D.
type VolumeTag struct {
	tag int32
}

func (t VolumeTag) Raw() int32 { return t.tag }

// PhysicalGroupTag identifies a named group of model entities.
type PhysicalGroupTag struct {
	tag int32
}

func (t PhysicalGroupTag) Raw() int32 { return t.tag }

// CurveOrSurface is the closed set of tag kinds accepted by operations that
// work on curves and surfaces only. Only CurveTag and SurfaceTag satisfy it,
// so passing any other kind fails to compile rather than surfacing as an
// engine status.
type CurveOrSurface interface {
	curveOrSurface() (dim int, raw int32)
}

func (t CurveTag) curveOrSurface() (int, int32)   { return 1, t.tag }
func (t SurfaceTag) curveOrSurface() (int, int32) { return 2, t.tag }

// BasicShape is the closed set of point, curve, surface and volume tags.
type BasicShape interface {
	basicShape() (dim int, raw int32)
}

func (t PointTag) basicShape() (int, int32)   { return 0, t.tag }
func (t CurveTag) basicShape() (int, int32)   { return 1, t.tag }
func (t SurfaceTag) basicShape() (int, int32) { return 2, t.tag }
func (t VolumeTag) basicShape() (int, int32)  { return 3, t.tag }

// GeneralShape is the closed set of all six geometry tag kinds.
type GeneralShape interface {
	generalShape() (dim int, raw int32)
}

func (t PointTag) generalShape() (int, int32)   { return 0, t.tag }
func (t CurveTag) generalShape() (int, int32)   { return 1, t.tag }
func (t WireTag) generalShape() (int, int32)    { return 1, t.tag }
func (t SurfaceTag) generalShape() (int, int32) { return 2, t.tag }
func (t ShellTag) generalShape() (int, int32)   { return 2, t.tag }
func (t VolumeTag) generalShape() (int, int32)  { return 3, t.tag }
