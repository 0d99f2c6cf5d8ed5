package enginetest

import "testing"

func initialized(t *testing.T) *Engine {
	t.Helper()
	e := New()
	if status := e.Initialize([]string{"gmsh"}, false); status != 0 {
		t.Fatalf("Initialize status = %d", status)
	}
	return e
}

func TestCallsBeforeInitializeReturnInitStatus(t *testing.T) {
	e := New()
	if status := e.ModelAdd("m"); status != -1 {
		t.Fatalf("ModelAdd before init: status %d, want -1", status)
	}
	if _, status := e.GeoAddPoint(0, 0, 0, 0, -1); status != -1 {
		t.Fatalf("GeoAddPoint before init: status %d, want -1", status)
	}
	if _, status := e.OptionGetNumber("General.Terminal"); status != -1 {
		t.Fatalf("OptionGetNumber before init: status %d, want -1", status)
	}
}

func TestPerModelNumbering(t *testing.T) {
	e := initialized(t)
	e.ModelAdd("a")
	tagA, status := e.GeoAddPoint(0, 0, 0, 0, -1)
	if status != 0 || tagA != 1 {
		t.Fatalf("model a first point: tag %d status %d", tagA, status)
	}

	e.ModelAdd("b")
	tagB, status := e.GeoAddPoint(9, 9, 9, 0, -1)
	if status != 0 || tagB != 1 {
		t.Fatalf("model b first point: tag %d status %d", tagB, status)
	}
}

func TestTagHintCollision(t *testing.T) {
	e := initialized(t)
	e.ModelAdd("m")
	if _, status := e.GeoAddPoint(0, 0, 0, 0, 7); status != 0 {
		t.Fatalf("hinted point: status %d", status)
	}
	if _, status := e.GeoAddPoint(1, 1, 1, 0, 7); status != 1 {
		t.Fatalf("colliding hint: status %d, want 1", status)
	}
	// Auto numbering walks past manually used tags.
	for i := 0; i < 8; i++ {
		tag, status := e.GeoAddPoint(float64(i), 0, 0, 0, -1)
		if status != 0 {
			t.Fatalf("auto point %d: status %d", i, status)
		}
		if tag == 7 {
			t.Fatal("auto numbering reissued a live hinted tag")
		}
	}
}

func TestCurveLoopValidation(t *testing.T) {
	e := initialized(t)
	e.ModelAdd("m")
	p1, _ := e.GeoAddPoint(0, 0, 0, 0, -1)
	p2, _ := e.GeoAddPoint(1, 0, 0, 0, -1)
	p3, _ := e.GeoAddPoint(1, 1, 0, 0, -1)
	l1, _ := e.GeoAddLine(p1, p2, -1)
	l2, _ := e.GeoAddLine(p2, p3, -1)
	l3, _ := e.GeoAddLine(p3, p1, -1)
	backwards, _ := e.GeoAddLine(p1, p3, -1)

	if _, status := e.GeoAddCurveLoop([]int32{l1, l2, l3}, -1); status != 0 {
		t.Fatalf("closed loop: status %d", status)
	}
	if _, status := e.GeoAddCurveLoop([]int32{l1, l2}, -1); status != 3 {
		t.Fatalf("open path: status %d, want 3", status)
	}
	if _, status := e.GeoAddCurveLoop([]int32{l1, l2, backwards}, -1); status != 3 {
		t.Fatalf("misdirected loop: status %d, want 3", status)
	}
	if _, status := e.GeoAddCurveLoop([]int32{l1, l2, -backwards}, -1); status != 0 {
		t.Fatalf("sign-corrected loop: status %d", status)
	}
	if _, status := e.GeoAddCurveLoop([]int32{l1, l2, 99}, -1); status != 1 {
		t.Fatalf("unknown curve: status %d, want 1", status)
	}
}

func TestMeshRequiresSynchronize(t *testing.T) {
	e := initialized(t)
	e.ModelAdd("m")
	e.GeoAddPoint(0, 0, 0, 0, -1)

	if status := e.MeshGenerate(1); status != 1 {
		t.Fatalf("mesh with pending geometry: status %d, want 1", status)
	}
	if status := e.GeoSynchronize(); status != 0 {
		t.Fatalf("synchronize: status %d", status)
	}
	if status := e.MeshGenerate(1); status != 0 {
		t.Fatalf("mesh after synchronize: status %d", status)
	}
}

func TestOptionTable(t *testing.T) {
	e := initialized(t)

	if _, status := e.OptionGetNumber("No.Such"); status != 1 {
		t.Fatalf("unknown number get: status %d, want 1", status)
	}
	if status := e.OptionSetString("No.Such", "x"); status != 1 {
		t.Fatalf("unknown string set: status %d, want 1", status)
	}
	// A number option is not readable through the string getter.
	if _, status := e.OptionGetString("General.Terminal"); status != 1 {
		t.Fatalf("kind mismatch: status %d, want 1", status)
	}

	if v, status := e.OptionGetString("General.Version"); status != 0 || v == "" {
		t.Fatalf("version option: %q status %d", v, status)
	}
}

func TestFinalizeResetsState(t *testing.T) {
	e := initialized(t)
	e.ModelAdd("m")
	if status := e.Finalize(); status != 0 {
		t.Fatalf("finalize: status %d", status)
	}
	if status := e.ModelSetCurrent("m"); status != -1 {
		t.Fatalf("select after finalize: status %d, want -1", status)
	}
	if status := e.Initialize(nil, false); status != 0 {
		t.Fatalf("re-initialize: status %d", status)
	}
	if status := e.ModelSetCurrent("m"); status != 1 {
		t.Fatalf("models must not survive finalize: status %d, want 1", status)
	}
}
