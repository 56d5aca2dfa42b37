package bom

import (
	"errors"
	"fmt"
)

var ErrBomIDRequired = errors.New("bom: bom id required")

// NotFoundError indicates a BOM or item lookup missed.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("bom: %s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
