package consthex

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
	"gopkg.in/yaml.v3"

	"github.com/hexbuf/go-hexbuf/serde"
)

// Value attaches a Codec stub to a struct field, mirroring varhex.Value
// for fixed-length buffers. The wrapped value is serialized as a hex
// string by human-readable formats and as raw bytes by binary ones; input
// of the wrong length is rejected on every path.
//
// C must be instantiable from its zero value: use an empty struct type,
// not a pointer or interface type.
type Value[T any, C Codec[T]] struct {
	V T
}

// New wraps a value for serialization through the stub C.
func New[T any, C Codec[T]](value T) Value[T, C] {
	return Value[T, C]{V: value}
}

func (Value[T, C]) codec() Codec[T] {
	var codec C

	return codec
}

func (v Value[T, C]) emit(humanReadable bool) (serde.Token, error) {
	emitter := serde.NewEmitter(humanReadable)
	if err := Serialize[T](v.codec(), v.V, emitter); err != nil {
		return serde.Token{}, err
	}

	return emitter.Token()
}

func (v *Value[T, C]) absorb(humanReadable bool, token serde.Token) error {
	value, err := Deserialize[T](v.codec(), serde.NewSource(humanReadable, token))
	if err != nil {
		return err
	}

	v.V = value

	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (v Value[T, C]) MarshalJSON() ([]byte, error) {
	token, err := v.emit(true)
	if err != nil {
		return nil, err
	}

	return json.Marshal(token.StringValue())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (v *Value[T, C]) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	return v.absorb(true, serde.StringToken(s))
}

// MarshalText implements the encoding.TextMarshaler interface, used by
// text-based formats such as TOML.
func (v Value[T, C]) MarshalText() ([]byte, error) {
	token, err := v.emit(true)
	if err != nil {
		return nil, err
	}

	return []byte(token.StringValue()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (v *Value[T, C]) UnmarshalText(text []byte) error {
	return v.absorb(true, serde.StringToken(string(text)))
}

// MarshalYAML implements the yaml.Marshaler interface.
func (v Value[T, C]) MarshalYAML() (interface{}, error) {
	token, err := v.emit(true)
	if err != nil {
		return nil, err
	}

	return token.StringValue(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (v *Value[T, C]) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	return v.absorb(true, serde.StringToken(s))
}

// EncodeMsgpack implements the msgpack.CustomEncoder interface. The bytes
// are written as a bin token, with no framing added by the adapter.
func (v Value[T, C]) EncodeMsgpack(enc *msgpack.Encoder) error {
	token, err := v.emit(false)
	if err != nil {
		return err
	}

	return enc.EncodeBytes(token.BytesValue())
}

// DecodeMsgpack implements the msgpack.CustomDecoder interface. Str
// tokens are routed through the human-readable path, bin tokens through
// the binary path; exact-length enforcement applies to both.
func (v *Value[T, C]) DecodeMsgpack(dec *msgpack.Decoder) error {
	code, err := dec.PeekCode()
	if err != nil {
		return err
	}

	if msgpcode.IsString(code) {
		s, err := dec.DecodeString()
		if err != nil {
			return err
		}

		return v.absorb(true, serde.StringToken(s))
	}

	b, err := dec.DecodeBytes()
	if err != nil {
		return err
	}

	return v.absorb(false, serde.BytesToken(b))
}

// MarshalCBOR implements the cbor.Marshaler interface. The bytes are
// written as a CBOR byte string.
func (v Value[T, C]) MarshalCBOR() ([]byte, error) {
	token, err := v.emit(false)
	if err != nil {
		return nil, err
	}

	return cbor.Marshal(token.BytesValue())
}

// UnmarshalCBOR implements the cbor.Unmarshaler interface. Byte strings
// are taken verbatim; text strings are routed through the human-readable
// path, mirroring DecodeMsgpack.
func (v *Value[T, C]) UnmarshalCBOR(data []byte) error {
	var raw interface{}
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch token := raw.(type) {
	case []byte:
		return v.absorb(false, serde.BytesToken(token))
	case string:
		return v.absorb(true, serde.StringToken(token))
	default:
		return serde.InvalidType(serde.Other("non-string token"), hexExpecting(v.codec().Size()))
	}
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (v Value[T, C]) MarshalBinary() ([]byte, error) {
	token, err := v.emit(false)
	if err != nil {
		return nil, err
	}

	return token.BytesValue(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (v *Value[T, C]) UnmarshalBinary(data []byte) error {
	return v.absorb(false, serde.BytesToken(data))
}
