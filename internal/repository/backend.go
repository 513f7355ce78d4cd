package repository

import (
	"fmt"
	"strings"
)

// Backend is a storage technology code.
type Backend int

// Known backends. Only JSON is implemented.
const (
	JSON       Backend = 1
	XML        Backend = 2
	PostgreSQL Backend = 3
)

func (b Backend) String() string {
	switch b {
	case JSON:
		return "json"
	case XML:
		return "xml"
	case PostgreSQL:
		return "postgresql"
	default:
		return fmt.Sprintf("backend(%d)", int(b))
	}
}

// ParseBackend maps a configured backend name to its code.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json", "":
		return JSON, nil
	case "xml":
		return XML, nil
	case "postgresql", "postgres":
		return PostgreSQL, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}
