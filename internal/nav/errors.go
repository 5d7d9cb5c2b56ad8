package nav

import "errors"

var (
	// ErrUnknownTarget reports a navigation request for an identifier the
	// tree index does not contain. The request is a no-op for the caller.
	ErrUnknownTarget = errors.New("unknown navigation target")

	// ErrCyclicHierarchy reports a parent walk that exceeded the node count.
	// It indicates corrupt content data and is fatal to the request.
	ErrCyclicHierarchy = errors.New("cyclic menu hierarchy")
)
