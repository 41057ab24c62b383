// Package authenc provides sender-authenticated public-key encryption and
// detached signatures over NIST P-256.
//
// There are two operation families:
//
//   - Authorize: [Sign] produces a 128-character hex signature
//     (r ‖ s, each zero-padded to 64 hex digits) over SHA-256 of the input,
//     and [Verify] checks one.
//
//   - AuthEnc: [Encrypt] signs the plaintext with the sender's private key,
//     appends the 64 raw signature bytes, encrypts the result to the
//     recipient's public key and returns it as unpadded URL-safe base64.
//     [Decrypt] reverses this and reports whether the embedded signature
//     verifies against the expected sender.
//
// Basic usage:
//
//	alice, err := authenc.ParsePrivateKey(aliceHex)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	bob, err := authenc.ParsePrivateKey(bobHex)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Alice encrypts to Bob
//	cypher, err := authenc.EncryptString(ctx, alice, &bob.PublicKey, "hello")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Bob decrypts and checks it came from Alice
//	plain, ok, err := authenc.DecryptString(bob, &alice.PublicKey, cypher)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !ok {
//	    log.Fatal("not signed by alice")
//	}
//	fmt.Println(plain)
//
// A signature that does not verify is a normal negative result: ok is false
// and err is nil. Errors are returned for unusable keys, malformed signature
// strings, undecodable ciphertext strings, ciphertexts the cipher rejects,
// and decrypted payloads too short to hold a signature. Each maps to a
// sentinel for errors.Is.
//
// # Ciphers
//
// Payloads are sealed with [ECIES] by default. [HPKE] is available through
// [WithCipher]. The wire format does not name the cipher, so both sides must
// agree on it.
//
// # Security Notes
//
// Signing uses randomized ECDSA nonces. Two signatures or ciphertexts over the
// same input differ, and all of them verify.
//
// There is no replay protection: a ciphertext decrypts and verifies as often
// as it is presented. Add a nonce or timestamp to the plaintext if that
// matters.
//
// Authorize and AuthEnc sign exactly the same digest, SHA-256 of the
// plaintext. A detached signature from [Sign] is therefore valid as the
// embedded signature of an AuthEnc payload and the other way round. Do not
// use one key pair for both families when the plaintexts can overlap.
package authenc
