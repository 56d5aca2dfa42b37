package document

import (
	"errors"
	"fmt"
)

var (
	ErrDocumentTitleRequired = errors.New("document: title is required")
	ErrSlugRequired          = errors.New("document: slug is required")
	ErrSlugInvalid           = errors.New("document: slug contains invalid characters")
	ErrSectionTitleRequired  = errors.New("document: section title is required")
	ErrModuleTypeRequired    = errors.New("document: module type is required")
	ErrModuleContentInvalid  = errors.New("document: module content failed validation")
	ErrDocumentIDRequired    = errors.New("document: document id required")
	ErrSectionIDRequired     = errors.New("document: section id required")
	ErrModuleIDRequired      = errors.New("document: module id required")
)

// NotFoundError indicates a document, section, or module lookup missed.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("document: %s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
