// Package internalcheck holds source-level policy tests for the gmsh
// wrapper.
//
// The wrapper's safety story rests on two properties the compiler cannot
// state globally: geometry tags are only ever minted inside pkg/gmsh, and
// the raw cgo surface in internal/bindings is only reachable through
// pkg/gmsh. The tests here load the module's packages and walk their syntax
// to keep both properties from eroding.
//
// This package is part of the internal implementation and should not be
// imported by applications; it exports nothing.
package internalcheck
