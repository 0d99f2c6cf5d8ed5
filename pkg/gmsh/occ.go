package gmsh

import "math"

// OccModel is a model backed by the OpenCASCADE kernel. It carries the full
// shared operation set plus the top-down solid primitives the native kernel
// lacks. Solids still need a Synchronize before meshing, like any other
// buffered geometry.
type OccModel struct {
	Model
}

// AddBox adds an axis-aligned box with one corner at (x, y, z) and the
// diagonally opposite corner at (x+dx, y+dy, z+dz).
func (m *OccModel) AddBox(x, y, z, dx, dy, dz float64) (VolumeTag, error) {
	var tag int32
	err := m.call("AddBox", func(b Backend) error {
		t, status := b.OccAddBox(x, y, z, dx, dy, dz, TagAuto)
		if err := modelStatus(status); err != nil {
			return err
		}
		tag = t
		return nil
	})
	if err != nil {
		return VolumeTag{}, err
	}
	return VolumeTag{tag: tag}, nil
}

// AddSphere adds a full sphere of the given radius centered at (xc, yc, zc).
func (m *OccModel) AddSphere(xc, yc, zc, radius float64) (VolumeTag, error) {
	return m.addSphere(xc, yc, zc, radius, -math.Pi/2, math.Pi/2, 2*math.Pi)
}

// AddSphereSlice adds a sphere section: polarMin and polarMax bound the polar
// angle in [-Pi/2, Pi/2] and azimuth is the opening angle around the polar
// axis. AddSphere is the full-sphere special case.
func (m *OccModel) AddSphereSlice(xc, yc, zc, radius, polarMin, polarMax, azimuth float64) (VolumeTag, error) {
	return m.addSphere(xc, yc, zc, radius, polarMin, polarMax, azimuth)
}

func (m *OccModel) addSphere(xc, yc, zc, radius, angle1, angle2, angle3 float64) (VolumeTag, error) {
	var tag int32
	err := m.call("AddSphere", func(b Backend) error {
		t, status := b.OccAddSphere(xc, yc, zc, radius, angle1, angle2, angle3, TagAuto)
		if err := modelStatus(status); err != nil {
			return err
		}
		tag = t
		return nil
	})
	if err != nil {
		return VolumeTag{}, err
	}
	return VolumeTag{tag: tag}, nil
}

// AddTorus adds a full torus centered at (xc, yc, zc) with the given main
// (donut) and pipe (tube) radii.
func (m *OccModel) AddTorus(xc, yc, zc, mainRadius, pipeRadius float64) (VolumeTag, error) {
	return m.addTorus(xc, yc, zc, mainRadius, pipeRadius, 2*math.Pi)
}

// AddTorusSlice adds an angular section of a torus.
func (m *OccModel) AddTorusSlice(xc, yc, zc, mainRadius, pipeRadius, angle float64) (VolumeTag, error) {
	return m.addTorus(xc, yc, zc, mainRadius, pipeRadius, angle)
}

func (m *OccModel) addTorus(xc, yc, zc, r1, r2, angle float64) (VolumeTag, error) {
	var tag int32
	err := m.call("AddTorus", func(b Backend) error {
		t, status := b.OccAddTorus(xc, yc, zc, r1, r2, angle, TagAuto)
		if err := modelStatus(status); err != nil {
			return err
		}
		tag = t
		return nil
	})
	if err != nil {
		return VolumeTag{}, err
	}
	return VolumeTag{tag: tag}, nil
}
