// Package logging provides a minimal logging facade for the gmsh wrapper.
//
// The Logger interface wraps a subset of log/slog so that the wrapper's own
// diagnostics (engine version on startup, swallowed finalize statuses) can be
// routed into whatever logging the host application already uses. Note this
// is separate from the engine's own message stream, which is controlled by
// the General.Terminal and General.Verbosity engine options.
//
// The default implementation binds slog.Default():
//
//	sess, err := gmsh.NewSession(gmsh.WithLogger(logging.New(nil)))
//
// Applications can substitute any implementation of the Logger interface.
package logging
