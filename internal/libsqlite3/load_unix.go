//go:build darwin || linux || freebsd

package libsqlite3

import (
	"runtime"

	"github.com/ebitengine/purego"
)

func libraryNames() []string {
	if runtime.GOOS == "darwin" {
		return []string{"libsqlite3.dylib", "/usr/lib/libsqlite3.dylib"}
	}
	return []string{"libsqlite3.so.0", "libsqlite3.so"}
}

func openLibrary(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}
