package sprig

import (
	"errors"
	"fmt"
)

// ErrResourceNotFound is wrapped by a LoadError when the requested image,
// atlas region or sheet entry does not exist.
var ErrResourceNotFound = errors.New("sprig: resource not found")

// LoadError reports a texture source that could not be loaded or decoded.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("sprig: load %q: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
