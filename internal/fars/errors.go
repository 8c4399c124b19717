package fars

import "fmt"

// FileNotFoundError reports an accident data file that does not exist.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file '%s' does not exist", e.Path)
}

// ParseError reports malformed tabular content in an accident data file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvalidStateError reports a STATE number absent from a loaded year.
type InvalidStateError struct {
	State int
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid STATE number: %d", e.State)
}
