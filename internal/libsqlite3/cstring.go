package libsqlite3

import "unsafe"

// copyCString copies a NUL-terminated C string into a Go string. Returns ""
// for a NULL pointer.
func copyCString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(ptr + uintptr(n))) != 0 {
		n++
	}
	return string(copyBytes(ptr, n))
}

// copyBytes copies n bytes of C memory into a fresh Go slice. Returns nil
// for a NULL pointer or non-positive length.
func copyBytes(ptr uintptr, n int) []byte {
	if ptr == 0 || n <= 0 {
		return nil
	}
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(ptr)), n))
	return out
}
