package list

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by List operations.
//
// ErrInvalidArgument is the base kind for precondition violations; the
// specialized variants below wrap it, so callers can match either the exact
// sentinel or the kind with errors.Is.
var (
	// ErrInvalidArgument is returned when an argument violates a method's
	// precondition. It is checked before any computation happens.
	ErrInvalidArgument = errors.New("list: invalid argument")

	// ErrInvalidStep is returned by Range when step <= 0.
	ErrInvalidStep = fmt.Errorf("%w: step must be greater than 0", ErrInvalidArgument)

	// ErrInvalidCount is returned by Take and Drop when count <= 0.
	ErrInvalidCount = fmt.Errorf("%w: count must be greater than 0", ErrInvalidArgument)

	// ErrInvalidChunkSize is returned by Chunk when size <= 0.
	ErrInvalidChunkSize = fmt.Errorf("%w: chunk size must be greater than 0", ErrInvalidArgument)

	// ErrUnsupportedOperation is returned by CloneDeep when an element holds
	// a value that has no structural copy (functions, channels, structs with
	// unexported fields).
	ErrUnsupportedOperation = errors.New("list: unsupported operation")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("list: macro not found")
)
