package crypto

import "errors"

var (
	// ErrInvalidKey is returned when key material is nil, on the wrong curve,
	// out of range, or internally inconsistent.
	ErrInvalidKey = errors.New("invalid key")

	// ErrValueOutOfRange is returned when an integer does not fit the
	// requested fixed width or is negative.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrInvalidCiphertextSize is returned when a ciphertext is too short to
	// contain its framing.
	ErrInvalidCiphertextSize = errors.New("invalid ciphertext size")

	// ErrDecryptionFailed is returned when decryption fails.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidSignatureSize is returned when a raw signature is not
	// exactly SignatureSize bytes.
	ErrInvalidSignatureSize = errors.New("invalid signature size")
)
