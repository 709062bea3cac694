package libsqlite3

import (
	"fmt"
	"os"
	"sync"
)

// libraryEnv names an environment variable that overrides the library
// search: when set, only that path is tried.
const libraryEnv = "GSQLITE_LIBSQLITE3"

var (
	loadOnce sync.Once
	loadErr  error
)

// Load locates the SQLite shared library, loads it, and registers every
// function this package exposes. It is safe to call from multiple goroutines
// and does the work only once; every subsequent call reports the cached
// outcome.
func Load() error {
	loadOnce.Do(func() {
		names := libraryNames()
		if override := os.Getenv(libraryEnv); override != "" {
			names = []string{override}
		}
		var firstErr error
		for _, name := range names {
			handle, err := openLibrary(name)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			registerFuncs(handle)
			return
		}
		loadErr = fmt.Errorf("libsqlite3: cannot load shared library (tried %v): %w", names, firstErr)
	})
	return loadErr
}
