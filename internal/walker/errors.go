package walker

import (
	"errors"
	"syscall"
)

var (
	// ErrPathTooLong is returned when the root path alone does not fit in the
	// path buffer. No directory is opened in that case.
	ErrPathTooLong = errors.New("root path exceeds path buffer capacity")

	// ErrPathBufferOverflow is returned when appending a directory name would
	// exceed the path buffer capacity.
	ErrPathBufferOverflow = errors.New("path buffer capacity exceeded")
)

// WalkError represents an error during directory traversal.
//
// Op is one of "walk" (root validation), "open" (directory could not be
// opened), "read" (listing failed), "stat", "close" or "descend" (path buffer
// overflow).
type WalkError struct {
	Op   string
	Path string
	Err  error
}

func (e *WalkError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *WalkError) Unwrap() error {
	return e.Err
}

// Code returns the underlying system error number, or 0 if the failure was
// not caused by a system call.
func (e *WalkError) Code() syscall.Errno {
	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		return errno
	}
	return 0
}
