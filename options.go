package authenc

import (
	"io"

	"github.com/rs/zerolog"
)

// schemeConfig holds configuration for a Scheme.
type schemeConfig struct {
	cipher Cipher
	rand   io.Reader
	logger zerolog.Logger
}

func defaultSchemeConfig() schemeConfig {
	return schemeConfig{
		cipher: ECIES,
		logger: zerolog.Nop(),
	}
}

// Option configures a Scheme.
type Option func(*schemeConfig)

// WithCipher sets the public-key cipher used to seal payloads.
// Default: ECIES. A nil cipher keeps the default.
func WithCipher(c Cipher) Option {
	return func(cfg *schemeConfig) {
		if c != nil {
			cfg.cipher = c
		}
	}
}

// WithRandom sets the randomness source for ECDSA nonces and ephemeral
// encryption keys. Default: crypto/rand. A nil reader keeps the default.
//
// The reader must be cryptographically secure; it exists for platforms with
// a dedicated entropy source, not for making output reproducible.
func WithRandom(r io.Reader) Option {
	return func(cfg *schemeConfig) {
		cfg.rand = r
	}
}

// WithLogger sets the logger. The scheme logs at debug level only and never
// logs keys, plaintexts or signatures.
// Default: zerolog.Nop()
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *schemeConfig) {
		cfg.logger = logger
	}
}
