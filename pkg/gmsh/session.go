package gmsh

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/rgmsh/gmsh-go/internal/bindings"
	"github.com/rgmsh/gmsh-go/pkg/gmsh/logging"
)

// sessionLive enforces the engine's single-owner discipline. The native
// engine keeps one process-wide initialized state, so two live Sessions
// cannot coexist.
var sessionLive atomic.Bool

// Session owns the engine's process-wide initialization. All Models are
// created from a Session and stop working once it is closed. Session methods
// and the methods of every Model it created serialize through one internal
// lock, which also guards the engine's global current-model register.
type Session struct {
	mu      sync.Mutex
	backend Backend
	log     logging.Logger
	closed  bool

	// current mirrors the engine's current-model register. Empty means the
	// register does not point at a model created through this Session.
	current string

	argv       []string
	readConfig bool
}

// SessionOption configures a Session before the engine is initialized.
type SessionOption func(*Session)

// WithBackend injects an engine implementation. The default is the cgo
// bindings against libgmsh; tests and examples pass enginetest.New().
func WithBackend(b Backend) SessionOption {
	return func(s *Session) { s.backend = b }
}

// WithLogger routes wrapper diagnostics through l instead of slog.Default().
func WithLogger(l logging.Logger) SessionOption {
	return func(s *Session) { s.log = l }
}

// WithArgs forwards command-line arguments to the engine on initialization.
func WithArgs(argv []string) SessionOption {
	return func(s *Session) { s.argv = argv }
}

// WithConfigFiles controls whether the engine reads its own configuration
// files on startup. Off by default so wrapper behavior stays reproducible.
func WithConfigFiles(read bool) SessionOption {
	return func(s *Session) { s.readConfig = read }
}

// NewSession initializes the engine and returns the owning handle. Only one
// Session may be live per process; a second call while one is open fails with
// ErrInitialization. On success the session routes engine messages to the
// terminal, matching the engine's recommended baseline.
func NewSession(opts ...SessionOption) (*Session, error) {
	s := &Session{
		argv: []string{"gmsh"},
		log:  logging.New(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.backend == nil {
		b, err := bindings.New()
		if err != nil {
			return nil, opErr("NewSession", ErrNotBuilt)
		}
		s.backend = b
	}

	for _, arg := range s.argv {
		if err := checkCString(arg); err != nil {
			return nil, opErr("NewSession", err)
		}
	}

	if !sessionLive.CompareAndSwap(false, true) {
		return nil, opErr("NewSession", fmt.Errorf("%w: another session is live", ErrInitialization))
	}

	if err := topStatus(s.backend.Initialize(s.argv, s.readConfig)); err != nil {
		sessionLive.Store(false)
		return nil, opErr("NewSession", err)
	}

	if err := optionStatus(s.backend.OptionSetNumber(OptTerminal, 1)); err != nil {
		s.backend.Finalize()
		sessionLive.Store(false)
		return nil, opErr("NewSession", err)
	}

	if v, status := s.backend.OptionGetString(OptVersion); status == 0 {
		s.log.Info(context.Background(), "engine initialized", "version", v)
	}
	return s, nil
}

// Close finalizes the engine and invalidates every Model created from this
// Session. Teardown is infallible at this boundary: the engine does not
// reliably report cleanup failures, so a non-zero finalize status is logged
// and dropped. Close is idempotent.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.current = ""
	if status := s.backend.Finalize(); status != 0 {
		s.log.Warn(context.Background(), "finalize returned non-zero status", "status", status)
	}
	sessionLive.Store(false)
	return nil
}

// ensureLive must be called with s.mu held.
func (s *Session) ensureLive() error {
	if s.closed {
		return fmt.Errorf("%w: session closed", ErrInitialization)
	}
	return nil
}

// ensureCurrent switches the engine's current-model register to name if it
// does not already point there. Must be called with s.mu held.
func (s *Session) ensureCurrent(name string) error {
	if s.current == name {
		return nil
	}
	if status := s.backend.ModelSetCurrent(name); status != 0 {
		return fmt.Errorf("%w: cannot select model %q", ErrExecution, name)
	}
	s.current = name
	return nil
}

// CreateGeoModel registers a new model backed by the built-in bottom-up
// geometry kernel and makes it the engine's current model. An empty name gets
// a generated one; the engine allows duplicate model names and resolves them
// by first match, so generated names are the safer default.
func (s *Session) CreateGeoModel(name string) (*Model, error) {
	m, err := s.createModel("CreateGeoModel", name, KernelNative)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// CreateOccModel registers a new model backed by the OpenCASCADE kernel,
// which adds top-down solid primitives to the shared operation set.
func (s *Session) CreateOccModel(name string) (*OccModel, error) {
	m, err := s.createModel("CreateOccModel", name, KernelOcc)
	if err != nil {
		return nil, err
	}
	return &OccModel{Model: *m}, nil
}

func (s *Session) createModel(op, name string, kernel Kernel) (*Model, error) {
	if name == "" {
		name = "model-" + uuid.NewString()
	}
	if err := checkCString(name); err != nil {
		return nil, opErr(op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLive(); err != nil {
		return nil, opErr(op, err)
	}

	switch status := s.backend.ModelAdd(name); status {
	case 0:
		// ModelAdd also selects the new model.
		s.current = name
	case -1:
		return nil, opErr(op, ErrInitialization)
	default:
		return nil, opErr(op, fmt.Errorf("%w: cannot add model %q", ErrExecution, name))
	}

	return &Model{
		session: s,
		name:    name,
		kernel:  kernel,
		ops:     kernel.ops(),
	}, nil
}

// NumberOption reads a numeric engine option by its dotted name.
func (s *Session) NumberOption(name string) (float64, error) {
	const op = "NumberOption"
	if err := checkCString(name); err != nil {
		return 0, opErr(op, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLive(); err != nil {
		return 0, opErr(op, err)
	}
	value, status := s.backend.OptionGetNumber(name)
	if err := optionStatus(status); err != nil {
		return 0, opErr(op, err)
	}
	return value, nil
}

// SetNumberOption writes a numeric engine option.
func (s *Session) SetNumberOption(name string, value float64) error {
	const op = "SetNumberOption"
	if err := checkCString(name); err != nil {
		return opErr(op, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLive(); err != nil {
		return opErr(op, err)
	}
	return opErr(op, optionStatus(s.backend.OptionSetNumber(name, value)))
}

// StringOption reads a string engine option by its dotted name.
func (s *Session) StringOption(name string) (string, error) {
	const op = "StringOption"
	if err := checkCString(name); err != nil {
		return "", opErr(op, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLive(); err != nil {
		return "", opErr(op, err)
	}
	value, status := s.backend.OptionGetString(name)
	if err := optionStatus(status); err != nil {
		return "", opErr(op, err)
	}
	return value, nil
}

// SetStringOption writes a string engine option.
func (s *Session) SetStringOption(name, value string) error {
	const op = "SetStringOption"
	if err := checkCString(name); err != nil {
		return opErr(op, err)
	}
	if err := checkCString(value); err != nil {
		return opErr(op, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLive(); err != nil {
		return opErr(op, err)
	}
	return opErr(op, optionStatus(s.backend.OptionSetString(name, value)))
}
