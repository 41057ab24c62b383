package authenc

import (
	"context"
	"crypto/ecdsa"
	"io"

	"github.com/rs/zerolog"
)

// Scheme performs Authorize and AuthEnc operations with a fixed cipher,
// randomness source and logger. A Scheme holds no key material, is immutable
// after New, and is safe for concurrent use.
type Scheme struct {
	cipher Cipher
	rand   io.Reader
	logger zerolog.Logger
}

// New creates a Scheme. Without options it uses ECIES, crypto/rand and a
// no-op logger.
func New(opts ...Option) *Scheme {
	cfg := defaultSchemeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Scheme{
		cipher: cfg.cipher,
		rand:   cfg.rand,
		logger: cfg.logger.With().Str("cipher", cfg.cipher.Name()).Logger(),
	}
}

// Cipher returns the cipher the scheme seals payloads with.
func (s *Scheme) Cipher() Cipher {
	return s.cipher
}

var defaultScheme = New()

// Sign signs data with the default scheme. See [Scheme.Sign].
func Sign(localPriv *ecdsa.PrivateKey, data Plaintext) (string, error) {
	return defaultScheme.Sign(localPriv, data)
}

// Verify verifies a signature with the default scheme. See [Scheme.Verify].
func Verify(remotePub *ecdsa.PublicKey, data Plaintext, sigHex string) (bool, error) {
	return defaultScheme.Verify(remotePub, data, sigHex)
}

// Encrypt signs and encrypts with the default scheme. See [Scheme.Encrypt].
func Encrypt(ctx context.Context, localPriv *ecdsa.PrivateKey, remotePub *ecdsa.PublicKey, plain Plaintext) (string, error) {
	return defaultScheme.Encrypt(ctx, localPriv, remotePub, plain)
}

// Decrypt decrypts and verifies with the default scheme. See [Scheme.Decrypt].
func Decrypt(localPriv *ecdsa.PrivateKey, remotePub *ecdsa.PublicKey, cypher string) ([]byte, bool, error) {
	return defaultScheme.Decrypt(localPriv, remotePub, cypher)
}

// EncryptString is Encrypt for a string plaintext.
func EncryptString(ctx context.Context, localPriv *ecdsa.PrivateKey, remotePub *ecdsa.PublicKey, plain string) (string, error) {
	return defaultScheme.EncryptString(ctx, localPriv, remotePub, plain)
}

// DecryptString is Decrypt returning the plaintext as a string.
func DecryptString(localPriv *ecdsa.PrivateKey, remotePub *ecdsa.PublicKey, cypher string) (string, bool, error) {
	return defaultScheme.DecryptString(localPriv, remotePub, cypher)
}

// EncryptBytes is Encrypt for a byte slice plaintext.
func EncryptBytes(ctx context.Context, localPriv *ecdsa.PrivateKey, remotePub *ecdsa.PublicKey, plain []byte) (string, error) {
	return defaultScheme.EncryptBytes(ctx, localPriv, remotePub, plain)
}

// DecryptBytes is Decrypt returning the plaintext as a byte slice.
func DecryptBytes(localPriv *ecdsa.PrivateKey, remotePub *ecdsa.PublicKey, cypher string) ([]byte, bool, error) {
	return defaultScheme.DecryptBytes(localPriv, remotePub, cypher)
}

// EncryptMessage is Encrypt for a Message plaintext.
func EncryptMessage(ctx context.Context, localPriv *ecdsa.PrivateKey, remotePub *ecdsa.PublicKey, plain Message) (string, error) {
	return defaultScheme.EncryptMessage(ctx, localPriv, remotePub, plain)
}

// DecryptMessage is Decrypt returning the plaintext as a Message.
func DecryptMessage(localPriv *ecdsa.PrivateKey, remotePub *ecdsa.PublicKey, cypher string) (Message, bool, error) {
	return defaultScheme.DecryptMessage(localPriv, remotePub, cypher)
}
