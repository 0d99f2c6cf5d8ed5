//go:build cgo && !windows

package bindings

/*
#cgo LDFLAGS: -lgmsh
#include <stdlib.h>
#include <gmshc.h>
*/
import "C"

import "unsafe"

// Engine issues raw calls into libgmsh. It is stateless on the Go side; all
// state, including the current-model register, lives inside the native
// library.
type Engine struct{}

// New returns the cgo-backed engine.
func New() (*Engine, error) {
	return &Engine{}, nil
}

// Version returns the Gmsh API version the bindings were compiled against.
func Version() string {
	return C.GMSH_API_VERSION
}

func cBool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

func cInts(tags []int32) (*C.int, C.size_t, func()) {
	if len(tags) == 0 {
		return nil, 0, func() {}
	}
	buf := (*C.int)(C.malloc(C.size_t(len(tags)) * C.size_t(unsafe.Sizeof(C.int(0)))))
	dst := unsafe.Slice(buf, len(tags))
	for i, t := range tags {
		dst[i] = C.int(t)
	}
	return buf, C.size_t(len(tags)), func() { C.free(unsafe.Pointer(buf)) }
}

func (Engine) Initialize(argv []string, readConfig bool) int {
	cArgv := make([]*C.char, len(argv))
	for i, arg := range argv {
		cArgv[i] = C.CString(arg)
	}
	defer func() {
		for _, p := range cArgv {
			C.free(unsafe.Pointer(p))
		}
	}()
	var argvPtr **C.char
	if len(cArgv) > 0 {
		argvPtr = &cArgv[0]
	}

	var ierr C.int
	C.gmshInitialize(C.int(len(argv)), argvPtr, cBool(readConfig), &ierr)
	return int(ierr)
}

func (Engine) Finalize() int {
	var ierr C.int
	C.gmshFinalize(&ierr)
	return int(ierr)
}

func (Engine) ModelAdd(name string) int {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	var ierr C.int
	C.gmshModelAdd(cName, &ierr)
	return int(ierr)
}

func (Engine) ModelSetCurrent(name string) int {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	var ierr C.int
	C.gmshModelSetCurrent(cName, &ierr)
	return int(ierr)
}

func (Engine) ModelRemove() int {
	var ierr C.int
	C.gmshModelRemove(&ierr)
	return int(ierr)
}

func (Engine) GeoAddPoint(x, y, z, meshSize float64, tagHint int32) (int32, int) {
	var ierr C.int
	tag := C.gmshModelGeoAddPoint(C.double(x), C.double(y), C.double(z), C.double(meshSize), C.int(tagHint), &ierr)
	return int32(tag), int(ierr)
}

func (Engine) GeoAddLine(p1, p2, tagHint int32) (int32, int) {
	var ierr C.int
	tag := C.gmshModelGeoAddLine(C.int(p1), C.int(p2), C.int(tagHint), &ierr)
	return int32(tag), int(ierr)
}

func (Engine) GeoAddCurveLoop(curves []int32, tagHint int32) (int32, int) {
	buf, n, free := cInts(curves)
	defer free()
	var ierr C.int
	tag := C.gmshModelGeoAddCurveLoop(buf, n, C.int(tagHint), &ierr)
	return int32(tag), int(ierr)
}

func (Engine) GeoAddPlaneSurface(wires []int32, tagHint int32) (int32, int) {
	buf, n, free := cInts(wires)
	defer free()
	var ierr C.int
	tag := C.gmshModelGeoAddPlaneSurface(buf, n, C.int(tagHint), &ierr)
	return int32(tag), int(ierr)
}

func (Engine) GeoRemove(tags []int32, recursive bool) int {
	buf, n, free := cInts(tags)
	defer free()
	var ierr C.int
	C.gmshModelGeoRemove(buf, n, cBool(recursive), &ierr)
	return int(ierr)
}

func (Engine) GeoSynchronize() int {
	var ierr C.int
	C.gmshModelGeoSynchronize(&ierr)
	return int(ierr)
}

func (Engine) OccAddPoint(x, y, z, meshSize float64, tagHint int32) (int32, int) {
	var ierr C.int
	tag := C.gmshModelOccAddPoint(C.double(x), C.double(y), C.double(z), C.double(meshSize), C.int(tagHint), &ierr)
	return int32(tag), int(ierr)
}

func (Engine) OccAddLine(p1, p2, tagHint int32) (int32, int) {
	var ierr C.int
	tag := C.gmshModelOccAddLine(C.int(p1), C.int(p2), C.int(tagHint), &ierr)
	return int32(tag), int(ierr)
}

func (Engine) OccAddCurveLoop(curves []int32, tagHint int32) (int32, int) {
	buf, n, free := cInts(curves)
	defer free()
	var ierr C.int
	tag := C.gmshModelOccAddCurveLoop(buf, n, C.int(tagHint), &ierr)
	return int32(tag), int(ierr)
}

func (Engine) OccAddPlaneSurface(wires []int32, tagHint int32) (int32, int) {
	buf, n, free := cInts(wires)
	defer free()
	var ierr C.int
	tag := C.gmshModelOccAddPlaneSurface(buf, n, C.int(tagHint), &ierr)
	return int32(tag), int(ierr)
}

func (Engine) OccRemove(tags []int32, recursive bool) int {
	buf, n, free := cInts(tags)
	defer free()
	var ierr C.int
	C.gmshModelOccRemove(buf, n, cBool(recursive), &ierr)
	return int(ierr)
}

func (Engine) OccSynchronize() int {
	var ierr C.int
	C.gmshModelOccSynchronize(&ierr)
	return int(ierr)
}

func (Engine) OccAddBox(x, y, z, dx, dy, dz float64, tagHint int32) (int32, int) {
	var ierr C.int
	tag := C.gmshModelOccAddBox(C.double(x), C.double(y), C.double(z),
		C.double(dx), C.double(dy), C.double(dz), C.int(tagHint), &ierr)
	return int32(tag), int(ierr)
}

func (Engine) OccAddSphere(xc, yc, zc, radius, angle1, angle2, angle3 float64, tagHint int32) (int32, int) {
	var ierr C.int
	tag := C.gmshModelOccAddSphere(C.double(xc), C.double(yc), C.double(zc), C.double(radius),
		C.int(tagHint), C.double(angle1), C.double(angle2), C.double(angle3), &ierr)
	return int32(tag), int(ierr)
}

func (Engine) OccAddTorus(xc, yc, zc, majorRadius, pipeRadius, angle float64, tagHint int32) (int32, int) {
	var ierr C.int
	tag := C.gmshModelOccAddTorus(C.double(xc), C.double(yc), C.double(zc),
		C.double(majorRadius), C.double(pipeRadius), C.int(tagHint), C.double(angle), &ierr)
	return int32(tag), int(ierr)
}

func (Engine) MeshGenerate(dim int) int {
	var ierr C.int
	C.gmshModelMeshGenerate(C.int(dim), &ierr)
	return int(ierr)
}

func (Engine) OptionGetNumber(name string) (float64, int) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	var value C.double
	var ierr C.int
	C.gmshOptionGetNumber(cName, &value, &ierr)
	return float64(value), int(ierr)
}

func (Engine) OptionSetNumber(name string, value float64) int {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	var ierr C.int
	C.gmshOptionSetNumber(cName, C.double(value), &ierr)
	return int(ierr)
}

func (Engine) OptionGetString(name string) (string, int) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	var value *C.char
	var ierr C.int
	C.gmshOptionGetString(cName, &value, &ierr)
	var out string
	if value != nil {
		out = C.GoString(value)
		C.gmshFree(unsafe.Pointer(value))
	}
	return out, int(ierr)
}

func (Engine) OptionSetString(name, value string) int {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	cValue := C.CString(value)
	defer C.free(unsafe.Pointer(cValue))
	var ierr C.int
	C.gmshOptionSetString(cName, cValue, &ierr)
	return int(ierr)
}
