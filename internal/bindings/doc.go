// Package bindings hosts the thin cgo layer that links the Go API to the
// native Gmsh library. The real implementation lives behind build tags so
// that the rest of the repository compiles without cgo; builds without the
// native library get ErrNotBuilt from New.
//
// Everything in this package deals in primitive values and raw integer
// statuses. Status interpretation, tag types and the current-model protocol
// all live in pkg/gmsh.
package bindings
