package main

import (
	"testing"
)

// main must return immediately under SKIP_SERVER_RUN so `go test ./...`
// never starts the poll loops.
func TestMainRespectsSkipEnv(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}
