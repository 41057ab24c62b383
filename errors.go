package authenc

import (
	"errors"
	"fmt"

	"github.com/vaultsandbox/authenc-go/internal/crypto"
)

// Sentinel errors for errors.Is() checks.
//
// A signature that does not verify is not an error: Verify and the Decrypt
// family report it as ok == false with a nil error.
var (
	// ErrInvalidKey is returned when caller-supplied key material is nil,
	// not on P-256, out of range, or inconsistent.
	ErrInvalidKey = errors.New("invalid key")

	// ErrMalformedSignature is returned when a signature is not exactly
	// 128 hex characters.
	ErrMalformedSignature = errors.New("malformed signature")

	// ErrMalformedInput is returned when a ciphertext string is not valid
	// URL-safe base64.
	ErrMalformedInput = errors.New("malformed input")

	// ErrMalformedPayload is returned when a decrypted payload is too short
	// to carry a plaintext and a signature.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrDecryptionFailed is returned when the public-key cipher rejects the
	// ciphertext: wrong recipient, corruption, or tampering.
	ErrDecryptionFailed = errors.New("decryption failed")
)

// AuthEncError is implemented by all typed errors of this package.
type AuthEncError interface {
	error
	AuthEncError() // marker method
}

// KeyError reports unusable key material and which key it was.
type KeyError struct {
	Role string // "local private key", "remote public key", ...
	Err  error
}

func (e *KeyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s: %v", e.Role, e.Err)
	}
	return fmt.Sprintf("invalid %s", e.Role)
}

// Unwrap returns the underlying error.
func (e *KeyError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyError) Is(target error) bool {
	return target == ErrInvalidKey
}

// AuthEncError implements the AuthEncError interface.
func (e *KeyError) AuthEncError() {}

// SignatureFormatError reports a signature string that is not exactly
// 128 hex characters.
type SignatureFormatError struct {
	Length int
	Err    error
}

func (e *SignatureFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed signature: %v", e.Err)
	}
	return fmt.Sprintf("malformed signature: got %d characters, want %d", e.Length, crypto.SignatureHexSize)
}

// Unwrap returns the underlying error.
func (e *SignatureFormatError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *SignatureFormatError) Is(target error) bool {
	return target == ErrMalformedSignature
}

// AuthEncError implements the AuthEncError interface.
func (e *SignatureFormatError) AuthEncError() {}

// PayloadError reports a decrypted payload that cannot hold a plaintext and
// its 64-byte signature.
type PayloadError struct {
	Length int
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("malformed payload: %d bytes, need more than %d", e.Length, crypto.SignatureSize)
}

// Is implements errors.Is for sentinel error matching.
func (e *PayloadError) Is(target error) bool {
	return target == ErrMalformedPayload
}

// AuthEncError implements the AuthEncError interface.
func (e *PayloadError) AuthEncError() {}

// DecryptionError represents a ciphertext the public-key cipher refused.
type DecryptionError struct {
	Stage string // cipher name
	Err   error
}

func (e *DecryptionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decryption failed at %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("decryption failed at %s", e.Stage)
}

// Unwrap returns the underlying error.
func (e *DecryptionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DecryptionError) Is(target error) bool {
	return target == ErrDecryptionFailed
}

// AuthEncError implements the AuthEncError interface.
func (e *DecryptionError) AuthEncError() {}

// wrapKeyError converts internal key validation errors to public errors so
// that errors.Is() checks work with public sentinel errors.
func wrapKeyError(role string, err error) error {
	if err == nil {
		return nil
	}
	return &KeyError{Role: role, Err: err}
}

// wrapOpenError maps a cipher Open failure. Unusable recipient keys keep
// their key error; anything else means the ciphertext was rejected.
func wrapOpenError(stage string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, crypto.ErrInvalidKey) {
		return &KeyError{Role: roleLocalPrivate, Err: err}
	}
	return &DecryptionError{Stage: stage, Err: err}
}

const (
	roleLocalPrivate = "local private key"
	roleRemotePublic = "remote public key"
	rolePrivate      = "private key"
	rolePublic       = "public key"
)
