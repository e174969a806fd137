package main

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain guards against the demo's actor system leaking goroutines past
// the end of a test (e.g. a missing Shutdown call in runRelayDemo).
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
