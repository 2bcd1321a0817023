package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidIdentifier is returned when a username or password does not
	// match [a-zA-Z0-9]{5,31}.
	ErrInvalidIdentifier = errors.New("value doesn't match [a-zA-Z0-9]{5,31}")
	ErrInvalidLogin      = errors.New("invalid login")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrEmptyKey          = errors.New("key is required")
	ErrInvalidKey        = errors.New("key is not valid hex")
	ErrEmptyRecipient    = errors.New("recipient is required")
)
