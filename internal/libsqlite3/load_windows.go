//go:build windows

package libsqlite3

import "golang.org/x/sys/windows"

func libraryNames() []string {
	return []string{"sqlite3.dll", "winsqlite3.dll"}
}

func openLibrary(name string) (uintptr, error) {
	handle, err := windows.LoadLibrary(name)
	if err != nil {
		return 0, err
	}
	return uintptr(handle), nil
}
