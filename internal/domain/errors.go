package domain

import "errors"

var (
	// ErrParkNotFound signals that no park matches the requested code.
	// A legitimate empty-result outcome, not a failure.
	ErrParkNotFound = errors.New("park not found")
	// ErrVectorDimMismatch signals comparing vectors of different dimensionality.
	ErrVectorDimMismatch = errors.New("vector dimension mismatch")
	// ErrStoreUnavailable signals the document store cannot be reached.
	ErrStoreUnavailable = errors.New("document store unavailable")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrGenerationFailed signals a generation provider failure. Recovered into a
	// fallback response by the chat service, never surfaced to HTTP callers.
	ErrGenerationFailed = errors.New("response generation failed")
)
