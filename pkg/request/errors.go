package request

import "errors"

var (
	// ErrConflictingPrimary is returned when two different primary
	// operation flags appear in one invocation.
	ErrConflictingPrimary = errors.New("conflicting primary operations")

	// ErrMissingDependency is returned when a flag needs a companion tool
	// that is not installed on the host.
	ErrMissingDependency = errors.New("missing dependency")

	// ErrNoOperation is returned when no primary operation was requested.
	ErrNoOperation = errors.New("no operation specified")

	// ErrMissingArgument is returned for operations that need at least one
	// package argument.
	ErrMissingArgument = errors.New("missing required package argument")

	// ErrMixedScope is returned when package names are combined with a
	// whole-system refresh or upgrade.
	ErrMixedScope = errors.New("package arguments cannot be combined with a full system sync/upgrade")
)
