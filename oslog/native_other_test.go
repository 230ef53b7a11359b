//go:build !darwin || !cgo

package oslog

import (
	"errors"
	"testing"
)

func TestOpen_Unsupported(t *testing.T) {
	native, err := Open()
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("Open() error = %v, want ErrUnsupported", err)
	}
	if native != nil {
		t.Error("Open() returned a binding on an unsupported platform")
	}
}
