// Package serde defines the contracts between wire formats and the hex
// adapters in this module.
//
// A wire format is represented by a pair of handles. A Serializer receives
// the token an adapter decided to emit (a string for human-readable formats,
// raw bytes for binary ones); a Deserializer produces the next wire token
// and dispatches it to a visitor supplied by the adapter. Both handles
// report whether the format is meant for human inspection, which is the
// only thing adapters branch on.
package serde

// Serializer is the emitting half of a wire format.
type Serializer interface {
	// HumanReadable reports whether the format is intended for human
	// inspection, such as JSON or TOML.
	HumanReadable() bool

	// SerializeString emits a string token.
	SerializeString(s string) error

	// SerializeBytes emits a raw byte-sequence token.
	SerializeBytes(b []byte) error
}

// Deserializer is the consuming half of a wire format.
type Deserializer interface {
	// HumanReadable reports whether the format is intended for human
	// inspection, such as JSON or TOML.
	HumanReadable() bool

	// DeserializeString decodes the next token as a string and hands it to
	// the visitor. Implementations must fall back to VisitBytes when the
	// underlying token turns out to be a byte sequence: formats that
	// flatten nested records can route raw bytes through the string path.
	DeserializeString(v StringVisitor) error

	// DeserializeBytes decodes the next token as a byte sequence and hands
	// it to the visitor.
	DeserializeBytes(v BytesVisitor) error
}

// StringVisitor receives a string token from a Deserializer.
type StringVisitor interface {
	// Expecting describes the accepted input, phrased to fit after
	// "expected" in an error message.
	Expecting() string

	// VisitString receives the decoded string token.
	VisitString(s string) error

	// VisitBytes receives a raw byte token routed through the string path.
	// The slice is only valid for the duration of the call.
	VisitBytes(b []byte) error
}

// BytesVisitor receives a byte-sequence token from a Deserializer.
type BytesVisitor interface {
	// Expecting describes the accepted input, phrased to fit after
	// "expected" in an error message.
	Expecting() string

	// VisitBytes receives the decoded byte token. The slice is only valid
	// for the duration of the call.
	VisitBytes(b []byte) error
}
