package radix

import "errors"

var (
	// ErrInvalidFamily is returned when an address is neither 4 bytes
	// (IPv4) nor 16 bytes (IPv6).
	ErrInvalidFamily = errors.New("radix: address must be 4 or 16 bytes")

	// ErrInvalidLength is returned when a prefix length is negative or
	// exceeds the maximum for the address family.
	ErrInvalidLength = errors.New("radix: prefix length out of range")

	// ErrNotFound is returned by Remove when no stored prefix matches
	// the key exactly.
	ErrNotFound = errors.New("radix: no such prefix")

	// ErrModified is returned by an iterator whose tree has seen a
	// structural change since the iterator was created.
	ErrModified = errors.New("radix: tree modified during iteration")
)
