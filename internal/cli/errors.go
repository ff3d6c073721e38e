package cli

import "errors"

var (
	// ErrUnsupportedHost is returned when no known package manager could
	// be detected on the system.
	ErrUnsupportedHost = errors.New("no supported package manager detected on this system")
)
