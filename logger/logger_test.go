package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevel(t *testing.T) {
	testCases := []struct {
		verbose bool
		debug   bool
	}{
		{verbose: false, debug: false},
		{verbose: true, debug: true},
	}
	for _, tc := range testCases {
		l, err := New(tc.verbose)
		if err != nil {
			t.Fatalf("New(%v) returned an unexpected error: %v", tc.verbose, err)
		}
		if got := l.Core().Enabled(zapcore.DebugLevel); got != tc.debug {
			t.Errorf("New(%v) debug enabled = %v, want %v", tc.verbose, got, tc.debug)
		}
		if !l.Core().Enabled(zapcore.WarnLevel) {
			t.Errorf("New(%v) must log warnings", tc.verbose)
		}
	}
}

func TestNamedNil(t *testing.T) {
	if Named(nil, "store") == nil {
		t.Error("Named(nil) must return a usable logger")
	}
}
