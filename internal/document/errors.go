package document

import "errors"

var (
	// ErrStaleGeneration is returned when a result targets a document that
	// has since been rebuilt.
	ErrStaleGeneration = errors.New("stale document generation")
	ErrSectionNotFound = errors.New("section not found")
	ErrInvalidStyle    = errors.New("invalid style")
	ErrNoDocument      = errors.New("no document")
)
