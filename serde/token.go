package serde

import "errors"

// Token is a single wire token: either a string or a byte sequence.
// Format bindings use it to move values between their encoder and the
// in-memory Serializer/Deserializer handles below.
type Token struct {
	str      string
	bytes    []byte
	isString bool
}

// StringToken returns a Token holding a string.
func StringToken(s string) Token {
	return Token{str: s, isString: true}
}

// BytesToken returns a Token holding a byte sequence.
func BytesToken(b []byte) Token {
	return Token{bytes: b}
}

// IsString reports whether the token holds a string.
func (t Token) IsString() bool { return t.isString }

// StringValue returns the held string; it is empty for byte tokens.
func (t Token) StringValue() string { return t.str }

// BytesValue returns the held byte sequence; it is nil for string tokens.
func (t Token) BytesValue() []byte { return t.bytes }

// ErrNothingEmitted is returned by Emitter.Token when the adapter did not
// emit any token, which indicates a broken Serialize implementation.
var ErrNothingEmitted = errors.New("serializer emitted no token")

// Emitter is a Serializer that captures the emitted token in memory.
// Wire-format bindings hand an Emitter to an adapter's Serialize and then
// feed the captured token to their own encoder.
type Emitter struct {
	humanReadable bool
	token         Token
	emitted       bool
}

// NewEmitter returns an Emitter for a format with the given
// human-readability.
func NewEmitter(humanReadable bool) *Emitter {
	return &Emitter{humanReadable: humanReadable}
}

// HumanReadable implements the serde.Serializer interface.
func (e *Emitter) HumanReadable() bool { return e.humanReadable }

// SerializeString implements the serde.Serializer interface.
func (e *Emitter) SerializeString(s string) error {
	e.token = StringToken(s)
	e.emitted = true

	return nil
}

// SerializeBytes implements the serde.Serializer interface.
func (e *Emitter) SerializeBytes(b []byte) error {
	e.token = BytesToken(b)
	e.emitted = true

	return nil
}

// Token returns the captured token.
func (e *Emitter) Token() (Token, error) {
	if !e.emitted {
		return Token{}, ErrNothingEmitted
	}

	return e.token, nil
}

// Source is a Deserializer that reads from a single in-memory token.
// Wire-format bindings decode the next token with their own decoder, wrap
// it in a Source and hand it to an adapter's Deserialize.
type Source struct {
	humanReadable bool
	token         Token
}

// NewSource returns a Source over the given token for a format with the
// given human-readability.
func NewSource(humanReadable bool, token Token) Source {
	return Source{humanReadable: humanReadable, token: token}
}

// HumanReadable implements the serde.Deserializer interface.
func (s Source) HumanReadable() bool { return s.humanReadable }

// DeserializeString implements the serde.Deserializer interface.
//
// A byte token is handed to the visitor's VisitBytes unchanged. Some
// formats flatten nested records by re-routing their fields through a
// human-readable-looking deserializer even when the outer format is
// binary; without this fallback such fields would fail to round-trip.
func (s Source) DeserializeString(v StringVisitor) error {
	if s.token.isString {
		return v.VisitString(s.token.str)
	}

	return v.VisitBytes(s.token.bytes)
}

// DeserializeBytes implements the serde.Deserializer interface.
func (s Source) DeserializeBytes(v BytesVisitor) error {
	if s.token.isString {
		return InvalidType(Str(s.token.str), v.Expecting())
	}

	return v.VisitBytes(s.token.bytes)
}
