// Package log provides structured bus-event capture for the switch driver.
//
// This package defines the Logger interface and Event types for recording
// driver activity: control-register select writes, forwarded bus transfers,
// lifecycle changes and errors. It is separate from operational logging
// (slog) - event capture produces a complete machine-readable trace of the
// traffic a driver put on the bus, suitable for debugging channel-routing
// problems after the fact.
//
// # Basic Usage
//
// Applications configure capture by providing a Logger implementation in the
// driver Config:
//
//	// For development: log to console via slog
//	cfg.Logger = log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	cfg.Logger, _ = log.NewFileLogger("/var/log/mux/bus0.blog")
//
//	// Both: use MultiLogger
//	cfg.Logger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
// Events carry one of four payloads:
//   - Select: a control-register write changing the routed channels
//   - Transfer: a forwarded data operation (write/read/write-read/transact)
//   - StateChange: driver lifecycle (open, released)
//   - Error: a failed bus operation
//
// Events are encoded as CBOR with integer keys; Reader streams them back
// with optional filtering.
package log
