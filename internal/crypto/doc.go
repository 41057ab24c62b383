// Package crypto provides the cryptographic primitives behind the authenc
// sign-then-encrypt protocol. Everything here works on raw bytes and standard
// library key types; the public package layers input normalization, error
// mapping and the wire encoding on top.
//
// # Algorithm Suite
//
//   - ECDSA over NIST P-256 with SHA-256: the payload digest is read as a
//     big-endian integer and signed as is. Nonces are randomized, so two
//     signatures over the same payload differ.
//
//   - ECIES over P-256: ephemeral ECDH, HKDF-SHA-256 key derivation and
//     AES-256-GCM. This is the default public-key cipher.
//
//   - HPKE (RFC 9180) base mode with DHKEM(P-256, HKDF-SHA256), HKDF-SHA256
//     and AES-256-GCM, provided as an alternative cipher.
//
// # Signature Layout
//
// A signature is always 64 bytes: r and s, each left-padded to exactly
// 32 big-endian bytes. [FixedBytes] is the only place integers are turned into
// fixed-width byte strings, and it refuses values that do not fit instead of
// truncating them.
//
// # Key Material
//
// Keys are never generated or stored here. [ValidatePrivateKey] and
// [ValidatePublicKey] reject keys on other curves, scalars outside [1, n-1],
// points off the curve, and private keys whose public half does not match.
//
// # Base64 Encoding
//
//   - [ToBase64URL]: URL-safe base64 without padding (RFC 4648 §5).
//   - [FromBase64URL]: accepts padded or unpadded URL-safe input and rejects
//     non-canonical trailing bits, so every accepted string maps to exactly
//     one byte sequence.
package crypto
