package gmsh

import "fmt"

// Kernel selects the CAD engine backing a model.
type Kernel int

const (
	// KernelNative is the engine's built-in bottom-up kernel: points first,
	// then curves, surfaces and volumes.
	KernelNative Kernel = iota
	// KernelOcc is the OpenCASCADE kernel, which supports the same bottom-up
	// construction plus top-down solid primitives and Boolean operations.
	KernelOcc
)

func (k Kernel) String() string {
	switch k {
	case KernelNative:
		return "native"
	case KernelOcc:
		return "occ"
	default:
		return "unknown"
	}
}

func (k Kernel) ops() *kernelOps {
	if k == KernelOcc {
		return &occOps
	}
	return &geoOps
}

// kernelOps binds the shared operation set to one engine namespace. The
// common Model methods are written once against this table; each kernel
// contributes only its backend entry points.
type kernelOps struct {
	addPoint        func(Backend, float64, float64, float64, float64, int32) (int32, int)
	addLine         func(Backend, int32, int32, int32) (int32, int)
	addCurveLoop    func(Backend, []int32, int32) (int32, int)
	addPlaneSurface func(Backend, []int32, int32) (int32, int)
	remove          func(Backend, []int32, bool) int
	synchronize     func(Backend) int
}

var geoOps = kernelOps{
	addPoint:        Backend.GeoAddPoint,
	addLine:         Backend.GeoAddLine,
	addCurveLoop:    Backend.GeoAddCurveLoop,
	addPlaneSurface: Backend.GeoAddPlaneSurface,
	remove:          Backend.GeoRemove,
	synchronize:     Backend.GeoSynchronize,
}

var occOps = kernelOps{
	addPoint:        Backend.OccAddPoint,
	addLine:         Backend.OccAddLine,
	addCurveLoop:    Backend.OccAddCurveLoop,
	addPlaneSurface: Backend.OccAddPlaneSurface,
	remove:          Backend.OccRemove,
	synchronize:     Backend.OccSynchronize,
}

// Model is a handle to one named model registered inside the engine. The
// engine routes every model call through a single global current-model
// register, so each operation first makes sure this model is the selected
// one; that select-then-operate pair runs under the owning Session's lock.
//
// A Model is only valid while its Session is open. Operations on a model
// whose Session has been closed fail with ErrInitialization.
type Model struct {
	session *Session
	name    string
	kernel  Kernel
	ops     *kernelOps
}

// Name returns the engine-facing model name.
func (m *Model) Name() string { return m.name }

// Kernel reports which CAD kernel backs the model.
func (m *Model) Kernel() Kernel { return m.kernel }

// call runs fn against the backend with the session lock held, after the
// liveness check and the current-model switch. A failed switch aborts with
// ErrExecution before fn runs.
func (m *Model) call(op string, fn func(Backend) error) error {
	s := m.session
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLive(); err != nil {
		return opErr(op, err)
	}
	if err := s.ensureCurrent(m.name); err != nil {
		return opErr(op, err)
	}
	return opErr(op, fn(s.backend))
}

// AddPoint adds a point at the given coordinates, leaving the local target
// mesh size to the engine's defaults.
func (m *Model) AddPoint(x, y, z float64) (PointTag, error) {
	return m.addPoint(x, y, z, 0)
}

// AddPointWithMeshSize adds a point and prescribes the target element size
// close to it.
func (m *Model) AddPointWithMeshSize(x, y, z, meshSize float64) (PointTag, error) {
	return m.addPoint(x, y, z, meshSize)
}

// A meshSize of 0 tells the engine to use its default sizing.
func (m *Model) addPoint(x, y, z, meshSize float64) (PointTag, error) {
	var tag int32
	err := m.call("AddPoint", func(b Backend) error {
		t, status := m.ops.addPoint(b, x, y, z, meshSize, TagAuto)
		if err := modelStatus(status); err != nil {
			return err
		}
		tag = t
		return nil
	})
	if err != nil {
		return PointTag{}, err
	}
	return PointTag{tag: tag}, nil
}

// RemovePoint deletes a point from the model. The tag value held by the
// caller stays usable as a value; what the engine does if a removed tag is
// fed back into it is undefined at this layer.
func (m *Model) RemovePoint(p PointTag) error {
	return m.call("RemovePoint", func(b Backend) error {
		return modelStatus(m.ops.remove(b, []int32{p.tag}, false))
	})
}

// AddLine adds a straight line between two points. The returned curve runs
// from p1 to p2.
func (m *Model) AddLine(p1, p2 PointTag) (CurveTag, error) {
	var tag int32
	err := m.call("AddLine", func(b Backend) error {
		t, status := m.ops.addLine(b, p1.tag, p2.tag, TagAuto)
		if err := modelStatus(status); err != nil {
			return err
		}
		tag = t
		return nil
	})
	if err != nil {
		return CurveTag{}, err
	}
	return CurveTag{tag: tag}, nil
}

// AddCurveLoop builds a wire from an ordered sequence of directed curves.
// The sequence must form a closed, consistently directed path; use Reversed
// to flip a curve that runs the wrong way. The engine, not the wrapper,
// rejects unclosed or inconsistently directed sequences with
// ErrModelBadInput.
func (m *Model) AddCurveLoop(curves ...CurveTag) (WireTag, error) {
	raw := make([]int32, len(curves))
	for i, c := range curves {
		raw[i] = c.tag
	}
	var tag int32
	err := m.call("AddCurveLoop", func(b Backend) error {
		t, status := m.ops.addCurveLoop(b, raw, TagAuto)
		if err := modelStatus(status); err != nil {
			return err
		}
		tag = t
		return nil
	})
	if err != nil {
		return WireTag{}, err
	}
	return WireTag{tag: tag}, nil
}

// AddPlaneSurface builds a planar surface bounded by the given wire. Any
// additional wires define holes in the surface.
func (m *Model) AddPlaneSurface(boundary WireTag, holes ...WireTag) (SurfaceTag, error) {
	raw := make([]int32, 0, 1+len(holes))
	raw = append(raw, boundary.tag)
	for _, h := range holes {
		raw = append(raw, h.tag)
	}
	var tag int32
	err := m.call("AddPlaneSurface", func(b Backend) error {
		t, status := m.ops.addPlaneSurface(b, raw, TagAuto)
		if err := modelStatus(status); err != nil {
			return err
		}
		tag = t
		return nil
	})
	if err != nil {
		return SurfaceTag{}, err
	}
	return SurfaceTag{tag: tag}, nil
}

// Synchronize flushes buffered geometry definitions into the engine's
// internal representation. Both kernels buffer definitions outside that
// representation until flushed, so a synchronize is required before meshing
// or querying newly defined geometry. GenerateMesh synchronizes on its own.
func (m *Model) Synchronize() error {
	return m.call("Synchronize", func(b Backend) error {
		return modelStatus(m.ops.synchronize(b))
	})
}

// GenerateMesh meshes the model's geometry up to the given dimension (1 for
// curves, 2 for surfaces, 3 for volumes). The model is selected and
// synchronized first; the whole sequence runs under the session lock.
func (m *Model) GenerateMesh(dim int) error {
	const op = "GenerateMesh"
	if dim < 1 || dim > 3 {
		return opErr(op, fmt.Errorf("%w: mesh dimension %d outside 1..3", ErrModelBadInput, dim))
	}
	return m.call(op, func(b Backend) error {
		if err := modelStatus(m.ops.synchronize(b)); err != nil {
			return err
		}
		return modelStatus(b.MeshGenerate(dim))
	})
}

// EntityDimension reports the geometric dimension of a curve or surface.
// The argument set is closed: only CurveTag and SurfaceTag satisfy
// CurveOrSurface, so other kinds are rejected at compile time rather than by
// an engine status.
func (m *Model) EntityDimension(entity CurveOrSurface) int {
	dim, _ := entity.curveOrSurface()
	return dim
}

// Remove deletes the model from the engine. The engine removes whichever
// model is current, so the model selects itself first. Tags issued by the
// model become stale; the handle itself must not be used afterwards.
func (m *Model) Remove() error {
	return m.call("Remove", func(b Backend) error {
		switch status := b.ModelRemove(); status {
		case 0:
			// The register no longer points at a model we know.
			m.session.current = ""
			return nil
		case -1:
			return ErrInitialization
		default:
			return fmt.Errorf("%w: cannot remove model %q", ErrExecution, m.name)
		}
	})
}
