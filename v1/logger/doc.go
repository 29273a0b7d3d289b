// Package logger provides a thin wrapper around Uber's Zap structured
// logger, configured for JSON output with service and process fields,
// plus an Fx module that wires it into the dependency graph and
// flushes buffered entries on shutdown.
package logger
