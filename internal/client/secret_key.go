package client

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/crypto"
)

// RawKeyPrefix marks key input that is hex-encoded key bytes rather than a
// passphrase.
const RawKeyPrefix = "hex:"

var (
	// ErrEmptySecretKey is returned when no key material is entered.
	ErrEmptySecretKey = errors.New("empty secret key")

	// ErrInvalidRawKey is returned when input after RawKeyPrefix is not hex.
	ErrInvalidRawKey = errors.New("raw key is not valid hex")
)

// PrepareKey turns what the user typed into XOR key bytes for note.
//
// Input starting with RawKeyPrefix is decoded as hex and used as is. Any
// other input is a passphrase, even one made only of hex digits. It is
// stretched to the note length with salt username, so the same passphrase
// gives the same key for the same user.
func PrepareKey(keychain crypto.KeyChainService, input, note, username string) ([]byte, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptySecretKey
	}

	if raw, ok := strings.CutPrefix(input, RawKeyPrefix); ok {
		return decodeRawKey(strings.TrimSpace(raw))
	}

	n := max(len(note), 1)
	key, err := keychain.DeriveKey(input, []byte(username), n)
	if err != nil {
		return nil, fmt.Errorf("deriving secret key: %w", err)
	}

	return key, nil
}

func decodeRawKey(raw string) ([]byte, error) {
	if raw == "" {
		return nil, ErrEmptySecretKey
	}

	key, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRawKey, err)
	}

	return key, nil
}
