package cli

import "errors"

// Sentinel errors for CLI input problems.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format")
	ErrMissingKey          = errors.New("missing private key: set --key or AUTHENC_KEY")
	ErrMissingPeer         = errors.New("missing peer public key: set --peer or AUTHENC_PEER")
	ErrMissingSignature    = errors.New("missing signature: set --signature")
	ErrUnknownCipher       = errors.New("unknown cipher")
	ErrInvalidHex          = errors.New("invalid hex input")

	// ErrVerificationFailed reports a well-formed signature that does not
	// verify. The command has already written its result.
	ErrVerificationFailed = errors.New("signature verification failed")
)
