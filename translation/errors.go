package translation

import (
	"errors"
	"fmt"
)

var (
	ErrLanguageCodeRequired = errors.New("translation: language code is required")
	ErrLanguageIDRequired   = errors.New("translation: language id required")
	ErrSectionIDRequired    = errors.New("translation: section id required")
	ErrModuleIDRequired     = errors.New("translation: module id required")
	ErrStatusInvalid        = errors.New("translation: status invalid")
)

// NotFoundError indicates a translation or language lookup missed.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("translation: %s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
