package geotrack

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat is wrapped by a ParseError for files whose extension no loader handles.
var ErrUnknownFormat = errors.New("unknown track extension")

// ParseError reports a track file that could not be opened or parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("load track file '%s': %s", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
