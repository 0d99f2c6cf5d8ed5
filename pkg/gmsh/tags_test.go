package gmsh

import "testing"

func TestCurveReversedIsInvolution(t *testing.T) {
	for _, raw := range []int32{1, 2, 7, 1024} {
		c := CurveTag{tag: raw}
		r := c.Reversed()
		if r.Raw() != -raw {
			t.Fatalf("Reversed of %d: got raw %d, want %d", raw, r.Raw(), -raw)
		}
		if rr := r.Reversed(); rr != c {
			t.Fatalf("double reversal of %d: got %+v, want %+v", raw, rr, c)
		}
	}
}

func TestCapabilityGroupDimensions(t *testing.T) {
	var cs CurveOrSurface

	cs = CurveTag{tag: 3}
	if dim, raw := cs.curveOrSurface(); dim != 1 || raw != 3 {
		t.Fatalf("curve: got (%d, %d), want (1, 3)", dim, raw)
	}

	cs = SurfaceTag{tag: 5}
	if dim, raw := cs.curveOrSurface(); dim != 2 || raw != 5 {
		t.Fatalf("surface: got (%d, %d), want (2, 5)", dim, raw)
	}

	// PointTag and VolumeTag do not satisfy CurveOrSurface; assigning one
	// here would not compile. The internalcheck package verifies the sum
	// stays closed.
}

func TestGeneralShapeCoversAllKinds(t *testing.T) {
	shapes := []GeneralShape{
		PointTag{tag: 1},
		CurveTag{tag: 1},
		WireTag{tag: 1},
		SurfaceTag{tag: 1},
		ShellTag{tag: 1},
		VolumeTag{tag: 1},
	}
	wantDims := []int{0, 1, 1, 2, 2, 3}
	for i, s := range shapes {
		dim, raw := s.generalShape()
		if dim != wantDims[i] || raw != 1 {
			t.Fatalf("shape %d: got (%d, %d), want (%d, 1)", i, dim, raw, wantDims[i])
		}
	}
}
