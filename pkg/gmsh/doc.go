// Package gmsh exposes a capability-safe Go API over the Gmsh geometry and
// meshing engine. The native engine is a single global resource addressed
// through bare integer tags and a hidden "current model" register; this
// package wraps that surface in handles that make the common misuses hard to
// write.
//
// A Session owns the engine's process-wide initialized state. Models are
// created from a Session and are only usable while it is open. Geometry
// construction returns per-kind tags (PointTag, CurveTag, ...) that cannot be
// built from raw integers, so a tag always originates from a successful
// engine operation.
//
// The engine numbers each model's entities independently, so two models can
// legitimately issue equal raw tag values. A tag therefore carries no binding
// to the model that issued it. Using a tag with the wrong model may fail with
// a status error, silently succeed with wrong results, or corrupt engine
// state; keeping tags with their model is the caller's responsibility. The
// same applies to tags whose referent has been removed: removal does not
// invalidate values already held by callers.
//
// All Session and Model operations serialize through the owning Session, so
// handles are safe for concurrent use. The select-then-operate sequence the
// engine requires runs under one lock and cannot interleave across
// goroutines.
//
// The native bindings in internal/bindings require cgo and a linked libgmsh.
// Binaries built without them get ErrNotBuilt from NewSession; tests and
// examples can inject the in-memory engine from the enginetest package
// instead.
package gmsh
