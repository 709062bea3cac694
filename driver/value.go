package driver

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// toParam narrows a driver value to one of the scalar kinds the gsqlite
// codec binds: int64, float64, string, []byte, or nil. Bools become 0/1 and
// times are formatted as RFC 3339 text, matching common SQLite driver
// conventions. Anything else is rejected rather than coerced silently.
func toParam(v driver.Value) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case int64:
		return val, nil
	case float64:
		return val, nil
	case string:
		return val, nil
	case []byte:
		return val, nil
	case bool:
		if val {
			return int64(1), nil
		}
		return int64(0), nil
	case time.Time:
		return val.Format(time.RFC3339Nano), nil
	default:
		return nil, fmt.Errorf("gsqlite: unsupported parameter type %T", v)
	}
}

// fromValues converts positional driver values to codec parameters.
func fromValues(args []driver.Value) ([]any, error) {
	params := make([]any, len(args))
	for i, a := range args {
		p, err := toParam(a)
		if err != nil {
			return nil, err
		}
		params[i] = p
	}
	return params, nil
}

// fromNamedValues converts named values to positional codec parameters.
// Only ?-style positional placeholders are supported; a non-empty name is
// an error. Ordinal is 1-based.
func fromNamedValues(args []driver.NamedValue) ([]any, error) {
	params := make([]any, len(args))
	for _, a := range args {
		if a.Name != "" {
			return nil, fmt.Errorf("gsqlite: named parameters are not supported")
		}
		p, err := toParam(a.Value)
		if err != nil {
			return nil, err
		}
		idx := a.Ordinal - 1
		if idx < 0 || idx >= len(params) {
			return nil, fmt.Errorf("gsqlite: parameter ordinal %d out of range", a.Ordinal)
		}
		params[idx] = p
	}
	return params, nil
}
