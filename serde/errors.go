package serde

import "fmt"

// Unexpected describes an input token that did not match what a visitor
// was expecting. It renders the way the offending value should appear in
// an "invalid type" error message.
type Unexpected struct {
	description string
}

// Str returns the Unexpected value for a string token.
func Str(s string) Unexpected {
	return Unexpected{description: fmt.Sprintf("string %q", s)}
}

// Bytes returns the Unexpected value for a byte-sequence token.
func Bytes(b []byte) Unexpected {
	return Unexpected{description: fmt.Sprintf("byte array of length %d", len(b))}
}

// Other returns the Unexpected value for any other kind of token,
// described free-form (e.g. "map", "integer").
func Other(description string) Unexpected {
	return Unexpected{description: description}
}

func (u Unexpected) String() string { return u.description }

// InvalidType builds the error reported when a token has the wrong shape
// for the visitor, e.g. a malformed hex string. The message follows the
// framework convention: lower-case first word, no trailing punctuation.
func InvalidType(unexpected Unexpected, expecting string) error {
	return fmt.Errorf("invalid type: %s, expected %s", unexpected, expecting)
}

// InvalidLength builds the error reported when a byte token has the wrong
// length for a fixed-size target.
func InvalidLength(got int, expecting string) error {
	return fmt.Errorf("invalid length %d, expected %s", got, expecting)
}
