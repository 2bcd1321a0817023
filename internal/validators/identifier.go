package validators

import "fmt"

const (
	MinIdentifierLen = 5
	MaxIdentifierLen = 31
)

// IsValidIdentifier reports whether s matches [a-zA-Z0-9]{5,31}: ASCII
// letters and digits only, 5 to 31 bytes.
func IsValidIdentifier(s string) bool {
	if len(s) < MinIdentifierLen || len(s) > MaxIdentifierLen {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			return false
		}
	}

	return true
}

// ValidateCredentials checks both halves of a credential pair.
func ValidateCredentials(username, password string) error {
	if !IsValidIdentifier(username) {
		return fmt.Errorf("%w: %w", ErrInvalidLogin, ErrInvalidIdentifier)
	}
	if !IsValidIdentifier(password) {
		return fmt.Errorf("%w: %w", ErrInvalidPassword, ErrInvalidIdentifier)
	}

	return nil
}
