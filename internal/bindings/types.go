package bindings

import "errors"

// ErrNotBuilt reports that the native bindings were not linked into the
// current binary.
var ErrNotBuilt = errors.New("gmsh/internal/bindings: native bindings not built")
