package authenc

import (
	"bytes"
	"encoding/hex"
)

// Plaintext is implemented by every input shape accepted for signing and
// encryption. Bytes returns the canonical byte representation that is hashed
// and encrypted.
//
// Equal content yields equal bytes whatever the shape: Text("hi"),
// Raw("hi") and NewMessage([]byte("hi")) all sign the same digest.
type Plaintext interface {
	Bytes() []byte
}

// Text is a UTF-8 string plaintext.
type Text string

// Bytes returns the UTF-8 encoding of t.
func (t Text) Bytes() []byte { return []byte(t) }

// Raw is a plaintext given as raw bytes.
type Raw []byte

// Bytes returns r itself.
func (r Raw) Bytes() []byte { return []byte(r) }

// Message is an immutable byte container. It is what DecryptMessage returns
// and can be fed back into any signing or encryption call unchanged.
type Message struct {
	b []byte
}

// NewMessage copies b into a new Message.
func NewMessage(b []byte) Message {
	return Message{b: bytes.Clone(b)}
}

// Bytes returns a copy of the message bytes.
func (m Message) Bytes() []byte {
	if m.b == nil {
		return []byte{}
	}
	return bytes.Clone(m.b)
}

// Len returns the message length in bytes.
func (m Message) Len() int { return len(m.b) }

// String returns the message bytes as a string.
func (m Message) String() string { return string(m.b) }

// Hex returns the lowercase hex encoding of the message.
func (m Message) Hex() string { return hex.EncodeToString(m.b) }

// Equal reports whether m and other hold the same bytes.
func (m Message) Equal(other Message) bool { return bytes.Equal(m.b, other.b) }

// Canonical returns the bytes of p that are hashed and encrypted.
// A nil Plaintext is the empty message.
func Canonical(p Plaintext) []byte {
	if p == nil {
		return []byte{}
	}
	b := p.Bytes()
	if b == nil {
		return []byte{}
	}
	return b
}
