package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService turns a passphrase typed by the user into XOR key
// material for the secret note. It knows nothing about the network or the
// record storage.
type KeyChainService interface {
	// DeriveKey stretches passphrase with salt into n bytes using Argon2id.
	// The same inputs always produce the same key.
	DeriveKey(passphrase string, salt []byte, n int) ([]byte, error)
}
