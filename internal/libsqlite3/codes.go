package libsqlite3

// Primary result codes returned by the SQLite C API.
const (
	OK         = 0
	Error      = 1
	Internal   = 2
	Perm       = 3
	Abort      = 4
	Busy       = 5
	Locked     = 6
	NoMem      = 7
	ReadOnly   = 8
	Interrupt  = 9
	IOErr      = 10
	Corrupt    = 11
	NotFound   = 12
	Full       = 13
	CantOpen   = 14
	Protocol   = 15
	Empty      = 16
	Schema     = 17
	TooBig     = 18
	Constraint = 19
	Mismatch   = 20
	Misuse     = 21
	NoLFS      = 22
	Auth       = 23
	Format     = 24
	Range      = 25
	NotADB     = 26

	Row  = 100
	Done = 101
)

// Fundamental datatype codes reported by sqlite3_column_type.
const (
	TypeInteger = 1
	TypeFloat   = 2
	TypeText    = 3
	TypeBlob    = 4
	TypeNull    = 5
)

// Flags accepted by sqlite3_open_v2.
const (
	OpenReadOnly  = 0x00000001
	OpenReadWrite = 0x00000002
	OpenCreate    = 0x00000004
	OpenURI       = 0x00000040
	OpenMemory    = 0x00000080
)

// transientDestructor is the SQLITE_TRANSIENT special destructor value.
// Passing it to a bind call forces the engine to make a private copy of the
// buffer before the call returns, so Go-owned memory never outlives the call.
const transientDestructor = ^uintptr(0)
