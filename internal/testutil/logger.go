package testutil

import (
	"bytes"
	"log/slog"
)

// NewBufferLogger returns a text-handler logger writing into the returned
// buffer, so tests can assert on emitted records.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	return logger, &buf
}
