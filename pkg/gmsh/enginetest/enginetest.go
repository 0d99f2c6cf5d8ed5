package enginetest

import "sync"

// Status codes mirror the native engine's conventions: 0 success, -1 not
// initialized, then small positive codes whose meaning depends on the call
// category.
const (
	statusOK       = 0
	statusInit     = -1
	statusFailed   = 1
	statusLookup   = 2
	statusBadInput = 3
)

type point struct {
	x, y, z  float64
	meshSize float64
}

type curve struct {
	start, end int32
}

type surface struct {
	wires []int32
}

type model struct {
	points   map[int32]point
	curves   map[int32]curve
	wires    map[int32][]int32
	surfaces map[int32]surface
	volumes  map[int32]struct{}

	nextPoint   int32
	nextCurve   int32
	nextWire    int32
	nextSurface int32
	nextVolume  int32

	// pending counts definitions not yet flushed by a synchronize call.
	pending int

	meshedDim int
}

func newModel() *model {
	return &model{
		points:      make(map[int32]point),
		curves:      make(map[int32]curve),
		wires:       make(map[int32][]int32),
		surfaces:    make(map[int32]surface),
		volumes:     make(map[int32]struct{}),
		nextPoint:   1,
		nextCurve:   1,
		nextWire:    1,
		nextSurface: 1,
		nextVolume:  1,
	}
}

// Engine is the in-memory fake. The zero value is not usable; call New.
//
// The exported Fail* fields arm one-shot or persistent failures so tests can
// drive wrapper error paths. They may only be set from the test goroutine
// between wrapper calls.
type Engine struct {
	mu sync.Mutex

	initialized bool
	current     string
	models      map[string]*model

	numberOpts map[string]float64
	stringOpts map[string]string

	setCurrentCalls int

	// FailNextSetCurrent makes the next ModelSetCurrent call fail.
	FailNextSetCurrent bool

	// FailFinalize makes Finalize report failure while still tearing down.
	FailFinalize bool
}

// New returns a fresh engine with the default option table seeded.
func New() *Engine {
	return &Engine{
		models: make(map[string]*model),
		numberOpts: map[string]float64{
			"General.Terminal":    0,
			"General.Verbosity":   5,
			"General.Axes":        0,
			"Mesh.Algorithm":      6,
			"Mesh.MeshSizeFactor": 1,
		},
		stringOpts: map[string]string{
			"General.Version":      "4.4.1",
			"General.BuildOptions": "enginetest",
			"Solver.Name0":         "GetDP",
		},
	}
}

// SetCurrentCalls reports how many ModelSetCurrent calls the engine has
// served, including failed ones. Tests use it to observe the wrapper's
// current-model protocol.
func (e *Engine) SetCurrentCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.setCurrentCalls
}

// Current returns the name in the current-model register, or "".
func (e *Engine) Current() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// LivePoints reports how many non-removed points the named model holds.
func (e *Engine) LivePoints(name string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	m := e.models[name]
	if m == nil {
		return 0
	}
	return len(m.points)
}

// MeshedDim reports the highest dimension the named model was meshed to.
func (e *Engine) MeshedDim(name string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	m := e.models[name]
	if m == nil {
		return 0
	}
	return m.meshedDim
}

func (e *Engine) Initialize(argv []string, readConfig bool) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.initialized {
		return statusFailed
	}
	e.initialized = true
	return statusOK
}

func (e *Engine) Finalize() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return statusInit
	}
	e.initialized = false
	e.current = ""
	e.models = make(map[string]*model)
	if e.FailFinalize {
		return statusFailed
	}
	return statusOK
}

func (e *Engine) ModelAdd(name string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return statusInit
	}
	if _, exists := e.models[name]; exists {
		return statusFailed
	}
	e.models[name] = newModel()
	e.current = name
	return statusOK
}

func (e *Engine) ModelSetCurrent(name string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setCurrentCalls++
	if !e.initialized {
		return statusInit
	}
	if e.FailNextSetCurrent {
		e.FailNextSetCurrent = false
		return statusFailed
	}
	if _, exists := e.models[name]; !exists {
		return statusFailed
	}
	e.current = name
	return statusOK
}

func (e *Engine) ModelRemove() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return statusInit
	}
	if _, exists := e.models[e.current]; !exists {
		return statusFailed
	}
	delete(e.models, e.current)
	e.current = ""
	return statusOK
}

// currentModel must be called with e.mu held.
func (e *Engine) currentModel() (*model, int) {
	if !e.initialized {
		return nil, statusInit
	}
	m := e.models[e.current]
	if m == nil {
		return nil, statusFailed
	}
	return m, statusOK
}

func autoTag(next *int32, used func(int32) bool, hint int32) (int32, bool) {
	if hint > 0 {
		if used(hint) {
			return 0, false
		}
		return hint, true
	}
	for used(*next) {
		*next++
	}
	tag := *next
	*next++
	return tag, true
}

func (e *Engine) addPoint(x, y, z, meshSize float64, tagHint int32) (int32, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	m, status := e.currentModel()
	if status != statusOK {
		return 0, status
	}
	tag, ok := autoTag(&m.nextPoint, func(t int32) bool { _, u := m.points[t]; return u }, tagHint)
	if !ok {
		return 0, statusFailed
	}
	m.points[tag] = point{x: x, y: y, z: z, meshSize: meshSize}
	m.pending++
	return tag, statusOK
}

func (e *Engine) addLine(p1, p2, tagHint int32) (int32, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	m, status := e.currentModel()
	if status != statusOK {
		return 0, status
	}
	if _, ok := m.points[p1]; !ok {
		return 0, statusFailed
	}
	if _, ok := m.points[p2]; !ok {
		return 0, statusFailed
	}
	tag, ok := autoTag(&m.nextCurve, func(t int32) bool { _, u := m.curves[t]; return u }, tagHint)
	if !ok {
		return 0, statusFailed
	}
	m.curves[tag] = curve{start: p1, end: p2}
	m.pending++
	return tag, statusOK
}

// endpoints resolves a signed curve reference to its directed endpoints.
func (m *model) endpoints(signed int32) (start, end int32, ok bool) {
	raw := signed
	if raw < 0 {
		raw = -raw
	}
	c, exists := m.curves[raw]
	if !exists {
		return 0, 0, false
	}
	if signed < 0 {
		return c.end, c.start, true
	}
	return c.start, c.end, true
}

func (e *Engine) addCurveLoop(curves []int32, tagHint int32) (int32, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	m, status := e.currentModel()
	if status != statusOK {
		return 0, status
	}
	if len(curves) == 0 {
		return 0, statusBadInput
	}
	first, prev, ok := m.endpoints(curves[0])
	if !ok {
		return 0, statusFailed
	}
	for _, signed := range curves[1:] {
		start, end, ok := m.endpoints(signed)
		if !ok {
			return 0, statusFailed
		}
		if start != prev {
			return 0, statusBadInput
		}
		prev = end
	}
	if prev != first {
		return 0, statusBadInput
	}
	tag, ok := autoTag(&m.nextWire, func(t int32) bool { _, u := m.wires[t]; return u }, tagHint)
	if !ok {
		return 0, statusFailed
	}
	m.wires[tag] = append([]int32(nil), curves...)
	m.pending++
	return tag, statusOK
}

func (e *Engine) addPlaneSurface(wires []int32, tagHint int32) (int32, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	m, status := e.currentModel()
	if status != statusOK {
		return 0, status
	}
	if len(wires) == 0 {
		return 0, statusBadInput
	}
	for _, w := range wires {
		if _, ok := m.wires[w]; !ok {
			return 0, statusFailed
		}
	}
	tag, ok := autoTag(&m.nextSurface, func(t int32) bool { _, u := m.surfaces[t]; return u }, tagHint)
	if !ok {
		return 0, statusFailed
	}
	m.surfaces[tag] = surface{wires: append([]int32(nil), wires...)}
	m.pending++
	return tag, statusOK
}

// remove deletes entities by raw tag, first match across kinds. Removing a
// tag with no live referent succeeds silently; the real engine logs and
// keeps going, and the wrapper documents stale-tag reuse as undefined.
func (e *Engine) remove(tags []int32, recursive bool) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	m, status := e.currentModel()
	if status != statusOK {
		return status
	}
	for _, tag := range tags {
		switch {
		case hasKey(m.points, tag):
			delete(m.points, tag)
		case hasKey(m.curves, tag):
			delete(m.curves, tag)
		case hasKey(m.wires, tag):
			delete(m.wires, tag)
		case hasKey(m.surfaces, tag):
			delete(m.surfaces, tag)
		case hasKey(m.volumes, tag):
			delete(m.volumes, tag)
		}
	}
	return statusOK
}

func hasKey[V any](m map[int32]V, k int32) bool {
	_, ok := m[k]
	return ok
}

func (e *Engine) synchronize() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	m, status := e.currentModel()
	if status != statusOK {
		return status
	}
	m.pending = 0
	return statusOK
}

func (e *Engine) GeoAddPoint(x, y, z, meshSize float64, tagHint int32) (int32, int) {
	return e.addPoint(x, y, z, meshSize, tagHint)
}

func (e *Engine) GeoAddLine(p1, p2, tagHint int32) (int32, int) {
	return e.addLine(p1, p2, tagHint)
}

func (e *Engine) GeoAddCurveLoop(curves []int32, tagHint int32) (int32, int) {
	return e.addCurveLoop(curves, tagHint)
}

func (e *Engine) GeoAddPlaneSurface(wires []int32, tagHint int32) (int32, int) {
	return e.addPlaneSurface(wires, tagHint)
}

func (e *Engine) GeoRemove(tags []int32, recursive bool) int {
	return e.remove(tags, recursive)
}

func (e *Engine) GeoSynchronize() int {
	return e.synchronize()
}

func (e *Engine) OccAddPoint(x, y, z, meshSize float64, tagHint int32) (int32, int) {
	return e.addPoint(x, y, z, meshSize, tagHint)
}

func (e *Engine) OccAddLine(p1, p2, tagHint int32) (int32, int) {
	return e.addLine(p1, p2, tagHint)
}

func (e *Engine) OccAddCurveLoop(curves []int32, tagHint int32) (int32, int) {
	return e.addCurveLoop(curves, tagHint)
}

func (e *Engine) OccAddPlaneSurface(wires []int32, tagHint int32) (int32, int) {
	return e.addPlaneSurface(wires, tagHint)
}

func (e *Engine) OccRemove(tags []int32, recursive bool) int {
	return e.remove(tags, recursive)
}

func (e *Engine) OccSynchronize() int {
	return e.synchronize()
}

func (e *Engine) addVolume() (*model, func(int32) bool, int) {
	m, status := e.currentModel()
	if status != statusOK {
		return nil, nil, status
	}
	return m, func(t int32) bool { _, u := m.volumes[t]; return u }, statusOK
}

func (e *Engine) OccAddBox(x, y, z, dx, dy, dz float64, tagHint int32) (int32, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	m, used, status := e.addVolume()
	if status != statusOK {
		return 0, status
	}
	if dx == 0 || dy == 0 || dz == 0 {
		return 0, statusFailed
	}
	tag, ok := autoTag(&m.nextVolume, used, tagHint)
	if !ok {
		return 0, statusFailed
	}
	m.volumes[tag] = struct{}{}
	m.pending++
	return tag, statusOK
}

func (e *Engine) OccAddSphere(xc, yc, zc, radius, angle1, angle2, angle3 float64, tagHint int32) (int32, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	m, used, status := e.addVolume()
	if status != statusOK {
		return 0, status
	}
	if radius <= 0 {
		return 0, statusFailed
	}
	tag, ok := autoTag(&m.nextVolume, used, tagHint)
	if !ok {
		return 0, statusFailed
	}
	m.volumes[tag] = struct{}{}
	m.pending++
	return tag, statusOK
}

func (e *Engine) OccAddTorus(xc, yc, zc, majorRadius, pipeRadius, angle float64, tagHint int32) (int32, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	m, used, status := e.addVolume()
	if status != statusOK {
		return 0, status
	}
	if majorRadius <= 0 || pipeRadius <= 0 {
		return 0, statusFailed
	}
	tag, ok := autoTag(&m.nextVolume, used, tagHint)
	if !ok {
		return 0, statusFailed
	}
	m.volumes[tag] = struct{}{}
	m.pending++
	return tag, statusOK
}

// MeshGenerate insists on flushed geometry: the wrapper's contract is that a
// synchronize always precedes meshing, and the fake turns a violation into a
// hard status instead of the silent partial mesh the real engine produces.
func (e *Engine) MeshGenerate(dim int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	m, status := e.currentModel()
	if status != statusOK {
		return status
	}
	if m.pending > 0 {
		return statusFailed
	}
	if dim < 1 || dim > 3 {
		return statusBadInput
	}
	if dim > m.meshedDim {
		m.meshedDim = dim
	}
	return statusOK
}

func (e *Engine) OptionGetNumber(name string) (float64, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return 0, statusInit
	}
	v, ok := e.numberOpts[name]
	if !ok {
		return 0, statusFailed
	}
	return v, statusOK
}

func (e *Engine) OptionSetNumber(name string, value float64) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return statusInit
	}
	if _, ok := e.numberOpts[name]; !ok {
		return statusFailed
	}
	e.numberOpts[name] = value
	return statusOK
}

func (e *Engine) OptionGetString(name string) (string, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return "", statusInit
	}
	v, ok := e.stringOpts[name]
	if !ok {
		return "", statusFailed
	}
	return v, statusOK
}

func (e *Engine) OptionSetString(name, value string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return statusInit
	}
	if _, ok := e.stringOpts[name]; !ok {
		return statusFailed
	}
	e.stringOpts[name] = value
	return statusOK
}
