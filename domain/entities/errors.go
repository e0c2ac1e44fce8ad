package entities

import "errors"

// Sentinel errors for the generation pipeline. Handlers map these onto
// the success:false response envelope.
var (
	// ErrInvalidParameter marks out-of-domain input rejected before any
	// generation work happens.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrGenerationFailure marks an internal inability to build a valid
	// mesh. Nothing partial is ever returned alongside it.
	ErrGenerationFailure = errors.New("generation failure")

	// ErrModelNotFound is returned by model repositories when no stored
	// model matches the requested identifier.
	ErrModelNotFound = errors.New("model not found")
)
