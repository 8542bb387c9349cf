// Package consthex serializes byte buffers with a statically known length
// as lower-case hex strings under human-readable wire formats, and as raw
// byte payloads under binary ones.
//
// It is the fixed-length counterpart of package varhex: the codec declares
// its byte length up front, and both decode paths reject input of any
// other length before the codec sees it. Intermediate buffers are sized
// exactly, so the cost per call is bounded by the declared length.
package consthex

import (
	"encoding/hex"
	"fmt"

	"github.com/hexbuf/go-hexbuf/serde"
)

// Codec converts values of a fixed-length target type to raw bytes and
// back. Implementations must be stateless: the Value wrapper instantiates
// them from their zero value.
type Codec[T any] interface {
	// Size returns the byte length of the target representation. It must
	// be constant for the lifetime of the program.
	Size() int

	// CreateBytes returns the canonical byte representation of value,
	// exactly Size() bytes long.
	CreateBytes(value T) []byte

	// FromBytes converts bytes into a value. It is only ever called with
	// a slice of exactly Size() bytes; length needs no re-checking, but
	// the bytes may still be rejected on domain grounds. Error messages
	// should follow the framework convention: lower-case first word, no
	// trailing punctuation.
	FromBytes(bytes []byte) (T, error)
}

func hexExpecting(size int) string {
	return fmt.Sprintf("hex-encoded byte array of length %d", size)
}

func bytesExpecting(size int) string {
	return fmt.Sprintf("byte array of length %d", size)
}

// Serialize emits value through the given serializer: a hex string of
// exactly twice the codec size when the format is human-readable, the raw
// bytes otherwise.
//
// Serialize panics if the codec returns a byte representation of the
// wrong length; that is a bug in the codec, not an input error.
func Serialize[T any](codec Codec[T], value T, s serde.Serializer) error {
	raw := codec.CreateBytes(value)
	if len(raw) != codec.Size() {
		panic(fmt.Sprintf(
			"consthex: codec returned %d bytes, want %d", len(raw), codec.Size(),
		))
	}

	if s.HumanReadable() {
		encoded := make([]byte, hex.EncodedLen(len(raw)))
		hex.Encode(encoded, raw)

		return s.SerializeString(string(encoded))
	}

	return s.SerializeBytes(raw)
}

// Deserialize reads a value through the given deserializer. Human-readable
// formats are expected to carry a hex string of exactly twice the codec
// size (upper-case digits are accepted); binary formats carry exactly
// Size() bytes. Input of any other length is rejected before the codec's
// FromBytes runs; FromBytes errors are propagated verbatim.
func Deserialize[T any](codec Codec[T], d serde.Deserializer) (T, error) {
	var zeroValue T

	size := codec.Size()

	var (
		raw []byte
		err error
	)

	if d.HumanReadable() {
		visitor := &hexVisitor{size: size}
		err = d.DeserializeString(visitor)
		raw = visitor.decoded
	} else {
		visitor := &bytesVisitor{size: size}
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
	size    int
	decoded []byte
}

func (v *hexVisitor) Expecting() string { return hexExpecting(v.size) }

func (v *hexVisitor) VisitString(s string) error {
	if len(s) != hex.EncodedLen(v.size) {
		return serde.InvalidType(serde.Str(s), v.Expecting())
	}

	decoded := make([]byte, v.size)
	if _, err := hex.Decode(decoded, []byte(s)); err != nil {
		return serde.InvalidType(serde.Str(s), v.Expecting())
	}

	v.decoded = decoded

	return nil
}

// VisitBytes accepts a raw byte token of exactly the declared size, for
// formats that route flattened fields through the string path. Any other
// length is a length error, never padded or truncated.
func (v *hexVisitor) VisitBytes(b []byte) error {
	if len(b) != v.size {
		return serde.InvalidLength(len(b), v.Expecting())
	}

	v.decoded = append([]byte(nil), b...)

	return nil
}

type bytesVisitor struct {
	size    int
	decoded []byte
}

func (v *bytesVisitor) Expecting() string { return bytesExpecting(v.size) }

func (v *bytesVisitor) VisitBytes(b []byte) error {
	if len(b) != v.size {
		return serde.InvalidLength(len(b), v.Expecting())
	}

	v.decoded = append([]byte(nil), b...)

	return nil
}
