package collect

import (
	"errors"
	"fmt"
)

// Rejection kinds. A *PathError wraps exactly one of these.
var (
	ErrNotFound       = errors.New("not found")
	ErrIsDirectory    = errors.New("is a directory")
	ErrNotRegularFile = errors.New("not a regular file")
	ErrTooLarge       = errors.New("too large")
	ErrUnreadable     = errors.New("unreadable")
	ErrFilesystem     = errors.New("filesystem exception")
)

// PathError describes why a path was rejected.
type PathError struct {
	Path  string
	Kind  error
	Limit int64 // ceiling in bytes, set for ErrTooLarge
	Err   error // underlying cause, if any
}

// Error returns the one-line diagnostic printed for the path.
func (e *PathError) Error() string {
	switch e.Kind {
	case ErrNotFound:
		return fmt.Sprintf("[Error: file '%s' does not exist]", e.Path)
	case ErrIsDirectory:
		return fmt.Sprintf("[Error: '%s' is a directory]", e.Path)
	case ErrNotRegularFile:
		return fmt.Sprintf("[Error: '%s' is not a regular file]", e.Path)
	case ErrTooLarge:
		return fmt.Sprintf("[Error: '%s' exceeds %dKB]", e.Path, e.Limit/1024)
	case ErrUnreadable:
		return fmt.Sprintf("[Error: cannot open '%s' for reading]", e.Path)
	default:
		return fmt.Sprintf("[Error: filesystem exception on '%s': %v]", e.Path, e.Err)
	}
}

// Is matches the rejection kind, so errors.Is(err, ErrTooLarge) works.
func (e *PathError) Is(target error) bool {
	return e.Kind == target
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// KindName returns a stable identifier for a rejection kind.
func KindName(kind error) string {
	switch kind {
	case ErrNotFound:
		return "NotFound"
	case ErrIsDirectory:
		return "IsDirectory"
	case ErrNotRegularFile:
		return "NotRegularFile"
	case ErrTooLarge:
		return "TooLarge"
	case ErrUnreadable:
		return "Unreadable"
	default:
		return "FilesystemException"
	}
}
