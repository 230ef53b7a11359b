//go:build !darwin || !cgo

package oslog

// Open returns ErrUnsupported: os_log only exists on Apple platforms and
// the binding needs cgo.
func Open() (Native, error) {
	return nil, ErrUnsupported
}
