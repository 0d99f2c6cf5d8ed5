package gmsh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgmsh/gmsh-go/pkg/gmsh"
)

// Builds the unit square of gmsh tutorial t1/t2: four points, four directed
// lines with one traversed against its construction direction, closed into a
// loop and filled with a plane surface.
func buildUnitSquare(t *testing.T, m *gmsh.Model) gmsh.SurfaceTag {
	t.Helper()
	const lc = 1e-2
	p1, err := m.AddPointWithMeshSize(0, 0, 0, lc)
	require.NoError(t, err)
	p2, err := m.AddPointWithMeshSize(1, 0, 0, lc)
	require.NoError(t, err)
	p3, err := m.AddPointWithMeshSize(1, 1, 0, lc)
	require.NoError(t, err)
	p4, err := m.AddPointWithMeshSize(0, 1, 0, lc)
	require.NoError(t, err)

	l1, err := m.AddLine(p1, p2)
	require.NoError(t, err)
	// Built against the loop direction on purpose; reversed below.
	l2, err := m.AddLine(p3, p2)
	require.NoError(t, err)
	l3, err := m.AddLine(p3, p4)
	require.NoError(t, err)
	l4, err := m.AddLine(p4, p1)
	require.NoError(t, err)

	loop, err := m.AddCurveLoop(l1, l2.Reversed(), l3, l4)
	require.NoError(t, err)

	surf, err := m.AddPlaneSurface(loop)
	require.NoError(t, err)
	return surf
}

func TestUnitSquareMeshes(t *testing.T) {
	sess, engine := newTestSession(t)
	m, err := sess.CreateGeoModel("t1")
	require.NoError(t, err)

	surf := buildUnitSquare(t, m)
	assert.Equal(t, int32(1), surf.Raw())

	require.NoError(t, m.GenerateMesh(2))
	assert.Equal(t, 2, engine.MeshedDim("t1"))
}

func TestUnclosedCurveLoopIsBadInput(t *testing.T) {
	sess, _ := newTestSession(t)
	m, err := sess.CreateGeoModel("open")
	require.NoError(t, err)

	p1, err := m.AddPoint(0, 0, 0)
	require.NoError(t, err)
	p2, err := m.AddPoint(1, 0, 0)
	require.NoError(t, err)
	p3, err := m.AddPoint(2, 0, 0)
	require.NoError(t, err)
	p4, err := m.AddPoint(3, 0, 0)
	require.NoError(t, err)

	// Three lines that never return to the start.
	l1, err := m.AddLine(p1, p2)
	require.NoError(t, err)
	l2, err := m.AddLine(p2, p3)
	require.NoError(t, err)
	l3, err := m.AddLine(p3, p4)
	require.NoError(t, err)

	_, err = m.AddCurveLoop(l1, l2, l3)
	assert.ErrorIs(t, err, gmsh.ErrModelBadInput)
}

func TestModelScopedNumbering(t *testing.T) {
	sess, _ := newTestSession(t)

	a, err := sess.CreateGeoModel("A")
	require.NoError(t, err)
	b, err := sess.CreateGeoModel("B")
	require.NoError(t, err)

	pa, err := a.AddPoint(0, 0, 0)
	require.NoError(t, err)
	pb, err := b.AddPoint(1, 1, 1)
	require.NoError(t, err)

	// Each model numbers its entities independently, so the raw values
	// collide. This is the documented hazard: the tags carry no model
	// identity, only the handles do.
	assert.Equal(t, pa.Raw(), pb.Raw())
	assert.Equal(t, int32(1), pa.Raw())
	assert.NotEqual(t, a.Name(), b.Name())
}

func TestTagsNotReusedWhileLive(t *testing.T) {
	sess, engine := newTestSession(t)
	m, err := sess.CreateGeoModel("pts")
	require.NoError(t, err)

	seen := make(map[int32]bool)
	for i := 0; i < 10; i++ {
		p, err := m.AddPoint(float64(i), 0, 0)
		require.NoError(t, err)
		require.False(t, seen[p.Raw()], "tag %d issued twice among live points", p.Raw())
		seen[p.Raw()] = true
	}
	assert.Equal(t, 10, engine.LivePoints("pts"))
}

func TestRemovePointKeepsTagValueUsable(t *testing.T) {
	sess, engine := newTestSession(t)
	m, err := sess.CreateGeoModel("rm")
	require.NoError(t, err)

	p, err := m.AddPoint(0, 0, 0)
	require.NoError(t, err)
	require.NoError(t, m.RemovePoint(p))
	assert.Equal(t, 0, engine.LivePoints("rm"))

	// The tag value survives removal; feeding it back is passed straight
	// through to the engine, which shrugs here.
	assert.Equal(t, int32(1), p.Raw())
	require.NoError(t, m.RemovePoint(p))
}

func TestCrossModelTagMayFailAtRuntime(t *testing.T) {
	sess, _ := newTestSession(t)

	a, err := sess.CreateGeoModel("jimbo")
	require.NoError(t, err)
	b, err := sess.CreateGeoModel("carrier")
	require.NoError(t, err)

	_, err = a.AddPoint(0, 0, 0)
	require.NoError(t, err)
	pb1, err := b.AddPoint(0, 1, 0)
	require.NoError(t, err)
	pb2, err := b.AddPoint(1, 1, 0)
	require.NoError(t, err)

	// Model A has one point; pb2's raw value names nothing there.
	_, err = a.AddLine(pb1, pb2)
	assert.ErrorIs(t, err, gmsh.ErrModelMutation)
}

func TestModelOpsAfterSessionCloseFail(t *testing.T) {
	sess, _ := newTestSession(t)
	m, err := sess.CreateGeoModel("stale")
	require.NoError(t, err)

	p1, err := m.AddPoint(0, 0, 0)
	require.NoError(t, err)
	p2, err := m.AddPoint(1, 0, 0)
	require.NoError(t, err)
	p3, err := m.AddPoint(0, 1, 0)
	require.NoError(t, err)
	l1, err := m.AddLine(p1, p2)
	require.NoError(t, err)
	l2, err := m.AddLine(p2, p3)
	require.NoError(t, err)
	l3, err := m.AddLine(p3, p1)
	require.NoError(t, err)
	loop, err := m.AddCurveLoop(l1, l2, l3)
	require.NoError(t, err)

	require.NoError(t, sess.Close())

	_, err = m.AddPoint(1, 1, 1)
	assert.ErrorIs(t, err, gmsh.ErrInitialization)
	_, err = m.AddPointWithMeshSize(1, 1, 1, 0.1)
	assert.ErrorIs(t, err, gmsh.ErrInitialization)
	_, err = m.AddLine(p1, p2)
	assert.ErrorIs(t, err, gmsh.ErrInitialization)
	_, err = m.AddCurveLoop(l1, l2, l3)
	assert.ErrorIs(t, err, gmsh.ErrInitialization)
	_, err = m.AddPlaneSurface(loop)
	assert.ErrorIs(t, err, gmsh.ErrInitialization)
	assert.ErrorIs(t, m.RemovePoint(p1), gmsh.ErrInitialization)
	assert.ErrorIs(t, m.Synchronize(), gmsh.ErrInitialization)
	assert.ErrorIs(t, m.GenerateMesh(2), gmsh.ErrInitialization)
	assert.ErrorIs(t, m.Remove(), gmsh.ErrInitialization)
}

func TestCurrentModelSwitchingIsLazy(t *testing.T) {
	sess, engine := newTestSession(t)

	a, err := sess.CreateGeoModel("A")
	require.NoError(t, err)
	b, err := sess.CreateGeoModel("B")
	require.NoError(t, err)

	// CreateGeoModel("B") left B current; operating on B first needs no
	// select call.
	before := engine.SetCurrentCalls()
	_, err = b.AddPoint(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, before, engine.SetCurrentCalls())

	// Switching to A selects once; staying on A adds no further selects.
	_, err = a.AddPoint(0, 0, 0)
	require.NoError(t, err)
	_, err = a.AddPoint(1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, before+1, engine.SetCurrentCalls())
	assert.Equal(t, "A", engine.Current())
}

func TestSelectFailureAbortsOperation(t *testing.T) {
	sess, engine := newTestSession(t)

	a, err := sess.CreateGeoModel("A")
	require.NoError(t, err)
	_, err = sess.CreateGeoModel("B")
	require.NoError(t, err)

	engine.FailNextSetCurrent = true
	_, err = a.AddPoint(0, 0, 0)
	assert.ErrorIs(t, err, gmsh.ErrExecution)
	assert.Equal(t, 0, engine.LivePoints("A"))

	// The failed select did not poison the handle.
	_, err = a.AddPoint(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, engine.LivePoints("A"))
}

func TestGenerateMeshValidatesDimension(t *testing.T) {
	sess, _ := newTestSession(t)
	m, err := sess.CreateGeoModel("dims")
	require.NoError(t, err)

	assert.ErrorIs(t, m.GenerateMesh(0), gmsh.ErrModelBadInput)
	assert.ErrorIs(t, m.GenerateMesh(4), gmsh.ErrModelBadInput)
	assert.NoError(t, m.GenerateMesh(1))
}

func TestEntityDimension(t *testing.T) {
	sess, _ := newTestSession(t)
	m, err := sess.CreateGeoModel("ent")
	require.NoError(t, err)

	surf := buildUnitSquare(t, m)
	assert.Equal(t, 2, m.EntityDimension(surf))

	p1, err := m.AddPoint(5, 5, 0)
	require.NoError(t, err)
	p2, err := m.AddPoint(6, 5, 0)
	require.NoError(t, err)
	c, err := m.AddLine(p1, p2)
	require.NoError(t, err)
	assert.Equal(t, 1, m.EntityDimension(c))
}

func TestModelRemoveClearsRegister(t *testing.T) {
	sess, engine := newTestSession(t)
	m, err := sess.CreateGeoModel("gone")
	require.NoError(t, err)

	require.NoError(t, m.Remove())
	assert.Equal(t, "", engine.Current())

	// Operations on a removed model now fail at the select step.
	_, err = m.AddPoint(0, 0, 0)
	assert.ErrorIs(t, err, gmsh.ErrExecution)
}

func TestOccPrimitives(t *testing.T) {
	sess, engine := newTestSession(t)
	m, err := sess.CreateOccModel("solids")
	require.NoError(t, err)
	assert.Equal(t, gmsh.KernelOcc, m.Kernel())

	box, err := m.AddBox(0, 0, 0, 1, 1, 1)
	require.NoError(t, err)
	sphere, err := m.AddSphere(0, 0, 0, 0.5)
	require.NoError(t, err)
	torus, err := m.AddTorus(0, 0, 0, 2, 0.5)
	require.NoError(t, err)

	assert.Equal(t, int32(1), box.Raw())
	assert.Equal(t, int32(2), sphere.Raw())
	assert.Equal(t, int32(3), torus.Raw())

	_, err = m.AddSphereSlice(0, 0, 0, 1, 0, 0.5, 1)
	require.NoError(t, err)
	_, err = m.AddTorusSlice(0, 0, 0, 2, 0.5, 1.5)
	require.NoError(t, err)

	_, err = m.AddSphere(0, 0, 0, -1)
	assert.ErrorIs(t, err, gmsh.ErrModelMutation)

	require.NoError(t, m.GenerateMesh(3))
	assert.Equal(t, 3, engine.MeshedDim("solids"))
}

func TestOccModelSharesOperationSet(t *testing.T) {
	sess, engine := newTestSession(t)
	m, err := sess.CreateOccModel("occ-square")
	require.NoError(t, err)

	buildUnitSquare(t, &m.Model)
	require.NoError(t, m.GenerateMesh(2))
	assert.Equal(t, 2, engine.MeshedDim("occ-square"))
}
