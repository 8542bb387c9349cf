// Package varhex serializes byte buffers of runtime-determined length as
// lower-case hex strings under human-readable wire formats, and as raw
// byte payloads under binary ones.
//
// The target buffer type is often defined in another module (a key type
// from a crypto library, say), so the conversion logic lives in a separate
// stateless stub implementing the Codec interface rather than on the type
// itself. Types that already expose their bytes can use the ready-made
// Form stub; everything else gets a single-purpose stub, either a named
// empty struct or a pair of functions combined with Fuse.
package varhex

import (
	"encoding/hex"

	"github.com/hexbuf/go-hexbuf/serde"
)

// Expecting is the phrase used after "expected" in adapter error messages.
const Expecting = "hex-encoded byte array"

// Codec converts values of a target type to raw bytes and back. It is the
// only part a caller defines; Serialize and Deserialize supply the format
// branching on top of it.
//
// Implementations must be stateless: the Value wrapper instantiates them
// from their zero value.
type Codec[T any] interface {
	// CreateBytes returns the canonical byte representation of value. The
	// returned slice may borrow the value's memory; callers must not
	// retain it past the current call.
	CreateBytes(value T) []byte

	// FromBytes validates bytes and converts them into a value. Error
	// messages should follow the framework convention: lower-case first
	// word, no trailing punctuation.
	FromBytes(bytes []byte) (T, error)
}

// Serialize emits value through the given serializer: a lower-case hex
// string when the format is human-readable, the raw bytes otherwise.
func Serialize[T any](codec Codec[T], value T, s serde.Serializer) error {
	raw := codec.CreateBytes(value)

	if s.HumanReadable() {
		return s.SerializeString(hex.EncodeToString(raw))
	}

	return s.SerializeBytes(raw)
}

// Deserialize reads a value through the given deserializer. Human-readable
// formats are expected to carry a hex string (upper-case digits are
// accepted); binary formats carry the bytes verbatim. The decoded bytes
// are handed to the codec's FromBytes, whose error is propagated verbatim.
func Deserialize[T any](codec Codec[T], d serde.Deserializer) (T, error) {
	var zeroValue T

	var (
		raw []byte
		err error
	)

	if d.HumanReadable() {
		visitor := new(hexVisitor)
		err = d.DeserializeString(visitor)
		raw = visitor.decoded
	} else {
		visitor := new(bytesVisitor)
		err = d.DeserializeBytes(visitor)
		raw = visitor.decoded
	}

	if err != nil {
		return zeroValue, err
	}

	value, err := codec.FromBytes(raw)
	if err != nil {
		return zeroValue, err
	}

	return value, nil
}

type hexVisitor struct {
	decoded []byte
}

func (*hexVisitor) Expecting() string { return Expecting }

func (v *hexVisitor) VisitString(s string) error {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return serde.InvalidType(serde.Str(s), Expecting)
	}

	v.decoded = raw

	return nil
}

// VisitBytes accepts raw bytes unchanged, without attempting a hex decode.
// See Source.DeserializeString for why the string path can carry bytes.
func (v *hexVisitor) VisitBytes(b []byte) error {
	v.decoded = append([]byte(nil), b...)

	return nil
}

type bytesVisitor struct {
	decoded []byte
}

func (*bytesVisitor) Expecting() string { return "byte array" }

func (v *bytesVisitor) VisitBytes(b []byte) error {
	v.decoded = append([]byte(nil), b...)

	return nil
}
