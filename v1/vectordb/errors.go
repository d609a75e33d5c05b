package vectordb

import "errors"

var (
	// ErrIndexNotFound is returned by BindIndex for unknown index names.
	ErrIndexNotFound = errors.New("vectordb: index not found")

	// ErrIndexExists is returned by CreateIndex when the name is taken.
	ErrIndexExists = errors.New("vectordb: index already exists")

	// ErrInvalidIndexSpec is returned for specs that fail Validate.
	ErrInvalidIndexSpec = errors.New("vectordb: invalid index spec")

	// ErrDimensionMismatch is returned when a vector does not match the index dimensionality.
	ErrDimensionMismatch = errors.New("vectordb: vector dimension mismatch")

	// ErrRecordNotFound is returned by Update for unknown IDs.
	ErrRecordNotFound = errors.New("vectordb: record not found")

	// ErrClientClosed is returned by operations on a closed client.
	ErrClientClosed = errors.New("vectordb: client closed")
)

// IsNotFound reports whether err means a missing index or record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrIndexNotFound) || errors.Is(err, ErrRecordNotFound)
}
