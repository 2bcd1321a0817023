// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

var (
	// ErrEmptyPassphrase is returned when no passphrase is given.
	ErrEmptyPassphrase = errors.New("empty passphrase")

	// ErrInvalidKeyLength is returned for a non-positive or too large key
	// length.
	ErrInvalidKeyLength = errors.New("invalid key length")
)

// MaxKeyLen caps the derived key length. Argon2 output length is a uint32
// but a secret note key never needs to exceed a record field.
const MaxKeyLen = 1 << 20

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}
}

// DeriveKey implements [KeyChainService].
func (k *keyChainService) DeriveKey(passphrase string, salt []byte, n int) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	if n <= 0 || n > MaxKeyLen {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeyLength, n)
	}

	return argon2.IDKey(
		[]byte(passphrase),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		uint32(n),
	), nil
}
