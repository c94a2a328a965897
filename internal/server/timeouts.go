package server

import "time"

// The admin surface serves small JSON payloads, so the read/write budgets
// stay short.
const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout bounds the whole graceful-shutdown sequence (pollers,
// HTTP, metrics, state). Var so tests can shrink it.
var shutdownTimeout = 15 * time.Second
