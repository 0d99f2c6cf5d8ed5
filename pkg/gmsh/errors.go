package gmsh

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInitialization indicates the engine was not initialized, failed to
	// initialize, or the owning Session has been closed.
	ErrInitialization = errors.New("gmsh: engine not initialized")

	// ErrExecution indicates a top-level engine method could not run, for
	// example selecting or removing a model.
	ErrExecution = errors.New("gmsh: engine method could not run")

	// ErrModelMutation indicates a model-mutating call failed, for example a
	// tag collision on entity creation.
	ErrModelMutation = errors.New("gmsh: model mutation failed")

	// ErrModelLookup indicates a model data lookup failed.
	ErrModelLookup = errors.New("gmsh: model lookup failed")

	// ErrModelBadInput indicates the engine rejected an input parameter, for
	// example an unclosed curve loop.
	ErrModelBadInput = errors.New("gmsh: bad input for model operation")

	// ErrModelParallelMeshQuery indicates a parallelizable mesh query failed.
	ErrModelParallelMeshQuery = errors.New("gmsh: parallel mesh query failed")

	// ErrUnknownOption indicates the option name is not known to the engine.
	ErrUnknownOption = errors.New("gmsh: unknown option")

	// ErrForeignInterface indicates a value could not cross the C call
	// boundary at all; no engine call was issued.
	ErrForeignInterface = errors.New("gmsh: value cannot cross the C interface")

	// ErrUnknown covers status codes outside the engine's documented set.
	ErrUnknown = errors.New("gmsh: unexpected engine status")

	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary.
	ErrNotBuilt = errors.New("gmsh: native bindings not built")
)

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Op  string // operation that failed
	Err error  // underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("gmsh.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func opErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// topStatus maps status codes from top-level engine functions.
func topStatus(status int) error {
	switch status {
	case 0:
		return nil
	case -1:
		return ErrInitialization
	case 1:
		return ErrExecution
	default:
		return fmt.Errorf("%w: %d", ErrUnknown, status)
	}
}

// modelStatus maps status codes from model mutation and query functions.
func modelStatus(status int) error {
	switch status {
	case 0:
		return nil
	case -1:
		return ErrInitialization
	case 1:
		return ErrModelMutation
	case 2:
		return ErrModelLookup
	case 3:
		return ErrModelBadInput
	case 4:
		return ErrModelParallelMeshQuery
	default:
		return fmt.Errorf("%w: %d", ErrUnknown, status)
	}
}

// optionStatus maps status codes from option get/set functions.
func optionStatus(status int) error {
	switch status {
	case 0:
		return nil
	case -1:
		return ErrInitialization
	case 1:
		return ErrUnknownOption
	default:
		return fmt.Errorf("%w: %d", ErrUnknown, status)
	}
}

// checkCString rejects strings that cannot be represented as C strings before
// any engine call is attempted.
func checkCString(s string) error {
	if strings.ContainsRune(s, 0) {
		return fmt.Errorf("%w: string contains NUL", ErrForeignInterface)
	}
	return nil
}
