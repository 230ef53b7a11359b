//go:build darwin && cgo

package oslog

import "testing"

func TestOpen_Darwin(t *testing.T) {
	native, err := Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	l, err := New(native, "com.philipp01105.unifiedlog", "tests")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Fault and default are always enabled by the system.
	if !l.IsEnabled(TypeFault) {
		t.Error("IsEnabled(fault) = false")
	}
	for _, typ := range Types() {
		l.Log(typ, "unifiedlog test "+typ.String())
	}
	l.LogTrace("trace")
	l.LogDebug("debug")
	l.LogInformation("information")
	l.LogWarning("warning")
	l.LogError("error")
	l.LogCritical("critical")
	l.LogNone("none")
}
