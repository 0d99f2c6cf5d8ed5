// Package enginetest provides a deterministic in-memory stand-in for the
// native Gmsh engine, so wrapper behavior can be exercised without cgo or a
// linked libgmsh.
//
// The fake reproduces the engine behaviors the wrapper's contract depends
// on: one process-wide initialized state, a single global current-model
// register, per-model entity numbering starting at 1, geometry definitions
// that stay buffered until a synchronize call, unknown-option statuses, and
// the status-code conventions of the C API. It does no geometry: meshing is
// bookkeeping, and curve-loop validation checks connectivity and direction
// only.
//
// Failure hooks (FailNextSetCurrent, FailFinalize) let tests drive the
// wrapper's error paths that a healthy engine never takes.
package enginetest
