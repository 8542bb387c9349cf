package varhex_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexbuf/go-hexbuf/serde"
	"github.com/hexbuf/go-hexbuf/varhex"
)

// buffer plays the role of a byte-buffer type defined in another module.
type buffer [8]byte

type bufferCodec struct{}

func (bufferCodec) CreateBytes(b buffer) []byte { return b[:] }

func (bufferCodec) FromBytes(bytes []byte) (buffer, error) {
	if len(bytes) != len(buffer{}) {
		return buffer{}, errors.New("invalid buffer length")
	}

	var b buffer
	copy(b[:], bytes)

	return b, nil
}

func TestSerialize(t *testing.T) {
	value := buffer{0, 1, 2, 3, 4, 5, 6, 7}

	t.Run("it emits a lower-case hex string for human-readable formats", func(t *testing.T) {
		emitter := serde.NewEmitter(true)
		require.NoError(t, varhex.Serialize[buffer](bufferCodec{}, value, emitter))

		token, err := emitter.Token()
		require.NoError(t, err)
		assert.True(t, token.IsString())
		assert.Equal(t, "0001020304050607", token.StringValue())
	})

	t.Run("it emits raw bytes for binary formats", func(t *testing.T) {
		emitter := serde.NewEmitter(false)
		require.NoError(t, varhex.Serialize[buffer](bufferCodec{}, value, emitter))

		token, err := emitter.Token()
		require.NoError(t, err)
		assert.False(t, token.IsString())
		assert.Equal(t, value[:], token.BytesValue())
	})
}

func TestDeserialize(t *testing.T) {
	t.Run("it decodes a hex string", func(t *testing.T) {
		source := serde.NewSource(true, serde.StringToken("0001020304050607"))

		value, err := varhex.Deserialize[buffer](bufferCodec{}, source)
		require.NoError(t, err)
		assert.Equal(t, buffer{0, 1, 2, 3, 4, 5, 6, 7}, value)
	})

	t.Run("it accepts upper-case hex on input", func(t *testing.T) {
		lower, err := varhex.Deserialize[buffer](bufferCodec{}, serde.NewSource(true, serde.StringToken("aabbccddeeff0011")))
		require.NoError(t, err)

		upper, err := varhex.Deserialize[buffer](bufferCodec{}, serde.NewSource(true, serde.StringToken("AABBCCDDEEFF0011")))
		require.NoError(t, err)

		assert.Equal(t, lower, upper)
	})

	t.Run("it decodes raw bytes from binary formats", func(t *testing.T) {
		source := serde.NewSource(false, serde.BytesToken([]byte{7, 6, 5, 4, 3, 2, 1, 0}))

		value, err := varhex.Deserialize[buffer](bufferCodec{}, source)
		require.NoError(t, err)
		assert.Equal(t, buffer{7, 6, 5, 4, 3, 2, 1, 0}, value)
	})

	t.Run("it accepts raw bytes routed through the string path", func(t *testing.T) {
		// Flattened containers can expose a human-readable-looking
		// deserializer even when the outer format is binary.
		source := serde.NewSource(true, serde.BytesToken([]byte{1, 1, 1, 1, 1, 1, 1, 1}))

		value, err := varhex.Deserialize[buffer](bufferCodec{}, source)
		require.NoError(t, err)
		assert.Equal(t, buffer{1, 1, 1, 1, 1, 1, 1, 1}, value)
	})

	t.Run("it decodes an empty hex string to zero bytes", func(t *testing.T) {
		source := serde.NewSource(true, serde.StringToken(""))

		value, err := varhex.Deserialize[[]byte](varhex.Form[[]byte]{}, source)
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("it rejects malformed hex strings", func(t *testing.T) {
		for _, input := range []string{"bogus", "c0ffe"} {
			source := serde.NewSource(true, serde.StringToken(input))

			_, err := varhex.Deserialize[buffer](bufferCodec{}, source)
			require.Error(t, err)
			assert.ErrorContains(t, err, "invalid type")
			assert.ErrorContains(t, err, "expected hex-encoded byte array")
		}
	})

	t.Run("it propagates codec errors verbatim", func(t *testing.T) {
		source := serde.NewSource(true, serde.StringToken("c0ffee"))

		_, err := varhex.Deserialize[buffer](bufferCodec{}, source)
		assert.EqualError(t, err, "invalid buffer length")
	})
}

func TestForm(t *testing.T) {
	type payload []byte

	t.Run("it borrows the slice on serialization", func(t *testing.T) {
		value := payload{0xc0, 0xff, 0xee}
		assert.Equal(t, []byte{0xc0, 0xff, 0xee}, varhex.Form[payload]{}.CreateBytes(value))
	})

	t.Run("it copies the input on deserialization", func(t *testing.T) {
		input := []byte{1, 2, 3}

		value, err := varhex.Form[payload]{}.FromBytes(input)
		require.NoError(t, err)

		input[0] = 42
		assert.Equal(t, payload{1, 2, 3}, value)
	})
}

func TestFuse(t *testing.T) {
	codec := varhex.Fuse(
		func(b buffer) []byte { return b[:] },
		func(bytes []byte) (buffer, error) {
			if len(bytes) != len(buffer{}) {
				return buffer{}, errors.New("invalid buffer length")
			}

			var b buffer
			copy(b[:], bytes)

			return b, nil
		},
	)

	t.Run("it round-trips through both halves", func(t *testing.T) {
		emitter := serde.NewEmitter(true)
		require.NoError(t, varhex.Serialize[buffer](codec, buffer{8, 7, 6, 5, 4, 3, 2, 1}, emitter))

		token, err := emitter.Token()
		require.NoError(t, err)

		value, err := varhex.Deserialize[buffer](codec, serde.NewSource(true, token))
		require.NoError(t, err)
		assert.Equal(t, buffer{8, 7, 6, 5, 4, 3, 2, 1}, value)
	})

	t.Run("it reports the fused error", func(t *testing.T) {
		_, err := varhex.Deserialize[buffer](codec, serde.NewSource(false, serde.BytesToken([]byte{1})))
		assert.EqualError(t, err, "invalid buffer length")
	})
}
