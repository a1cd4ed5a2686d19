package responder

import "errors"

var (
	// ErrBadVerb is returned for verb names outside the fixed set.
	ErrBadVerb = errors.New("bad verb")

	// ErrBadArgument is returned when the supplied argument set does
	// not match the resolved verb's signature.
	ErrBadArgument = errors.New("bad argument")

	// ErrNotImplemented is returned when the backend does not support
	// the requested operation.
	ErrNotImplemented = errors.New("capability not implemented")

	// ErrInvalidDocument is returned when a built document fails
	// envelope validation. It signals a logic defect, not a transient
	// condition; the document is never returned to the caller.
	ErrInvalidDocument = errors.New("invalid response document")
)
