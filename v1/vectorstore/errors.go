package vectorstore

import "errors"

var (
	// ErrValidation is returned for malformed caller input, before any
	// remote call is made.
	ErrValidation = errors.New("vectorstore: validation error")

	// ErrConstruction is returned by New when the client cannot be opened or
	// the index cannot be created or bound.
	ErrConstruction = errors.New("vectorstore: construction error")

	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("vectorstore: store closed")

	// ErrEmbedding is returned when the embedder answers with the wrong
	// number of vectors or with vectors of the wrong length.
	ErrEmbedding = errors.New("vectorstore: invalid embedding output")
)

// IsValidationError reports whether err is a validation failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsConstructionError reports whether err came from a failed New.
func IsConstructionError(err error) bool {
	return errors.Is(err, ErrConstruction)
}
