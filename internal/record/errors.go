package record

import "errors"

// Sentinel errors returned by [Record] operations. None of them indicates a
// change to the record: a failed operation leaves it untouched.
var (
	// ErrIndexOutOfRange is returned when a note index does not address an
	// entry of the collection.
	ErrIndexOutOfRange = errors.New("note index out of range")

	// ErrEmptyCollection is returned when deleting from an empty collection.
	ErrEmptyCollection = errors.New("note collection is empty")

	// ErrCapacityExceeded is returned when a collection already holds more
	// than MaxNotes entries.
	ErrCapacityExceeded = errors.New("note storage is full")

	// ErrDecryptUnavailable is returned when the secret note is empty or its
	// key length does not match the ciphertext length.
	ErrDecryptUnavailable = errors.New("secret note is empty")
)
