//go:build darwin && cgo

package oslog

/*
#include <stdlib.h>
#include "native_darwin.h"
*/
import "C"

import "unsafe"

// cgoNative calls the C shim in native_darwin.c. Strings cross the
// boundary as NUL-terminated UTF-8; a message containing NUL is cut at
// the first one.
type cgoNative struct{}

// Open returns the os_log binding.
func Open() (Native, error) {
	return cgoNative{}, nil
}

func (cgoNative) Create(subsystem, category string) (Handle, error) {
	cs := C.CString(subsystem)
	defer C.free(unsafe.Pointer(cs))
	cc := C.CString(category)
	defer C.free(unsafe.Pointer(cc))

	h := C.Create(cs, cc)
	if h == 0 {
		return 0, ErrCreate
	}
	return Handle(h), nil
}

func (cgoNative) IsEnabled(h Handle, t Type) bool {
	return bool(C.IsEnabled(C.uintptr_t(h), C.uint8_t(t)))
}

func (cgoNative) Log(h Handle, t Type, message string) {
	cm := C.CString(message)
	C.Log(C.uintptr_t(h), C.uint8_t(t), cm)
	C.free(unsafe.Pointer(cm))
}

func (cgoNative) LogTrace(h Handle, message string) {
	cm := C.CString(message)
	C.LogTrace(C.uintptr_t(h), cm)
	C.free(unsafe.Pointer(cm))
}

func (cgoNative) LogDebug(h Handle, message string) {
	cm := C.CString(message)
	C.LogDebug(C.uintptr_t(h), cm)
	C.free(unsafe.Pointer(cm))
}

func (cgoNative) LogInfo(h Handle, message string) {
	cm := C.CString(message)
	C.LogInfo(C.uintptr_t(h), cm)
	C.free(unsafe.Pointer(cm))
}

func (cgoNative) LogWarning(h Handle, message string) {
	cm := C.CString(message)
	C.LogWarning(C.uintptr_t(h), cm)
	C.free(unsafe.Pointer(cm))
}

func (cgoNative) LogError(h Handle, message string) {
	cm := C.CString(message)
	C.LogError(C.uintptr_t(h), cm)
	C.free(unsafe.Pointer(cm))
}

func (cgoNative) LogCritical(h Handle, message string) {
	cm := C.CString(message)
	C.LogCritical(C.uintptr_t(h), cm)
	C.free(unsafe.Pointer(cm))
}

func (cgoNative) LogDefault(h Handle, message string) {
	cm := C.CString(message)
	C.LogDefault(C.uintptr_t(h), cm)
	C.free(unsafe.Pointer(cm))
}
