package varhex

// Form is the ready-made Codec for types whose underlying type is a byte
// slice, such as named []byte types. Serialization borrows the slice;
// deserialization copies the input.
//
// A separate stub type (rather than making such types serialize themselves)
// keeps the choice of hex representation explicit at the field declaration
// site and avoids clashing with any marshaling behavior the type already
// has.
type Form[T ~[]byte] struct{}

// CreateBytes implements the varhex.Codec interface.
func (Form[T]) CreateBytes(value T) []byte { return value }

// FromBytes implements the varhex.Codec interface. It never fails: any
// byte sequence, including an empty one, is a valid value.
func (Form[T]) FromBytes(bytes []byte) (T, error) {
	return T(append([]byte(nil), bytes...)), nil
}

// CreateBytesFunc is a functional form of the Codec byte-producing half.
type CreateBytesFunc[T any] func(value T) []byte

// FromBytesFunc is a functional form of the Codec byte-consuming half.
type FromBytesFunc[T any] func(bytes []byte) (T, error)

// Fused combines two conversion functions into a Codec implementation.
type Fused[T any] struct {
	create CreateBytesFunc[T]
	from   FromBytesFunc[T]
}

// CreateBytes implements the varhex.Codec interface.
func (f Fused[T]) CreateBytes(value T) []byte { return f.create(value) }

// FromBytes implements the varhex.Codec interface.
func (f Fused[T]) FromBytes(bytes []byte) (T, error) { return f.from(bytes) }

// Fuse combines the two given conversion functions into a Codec. The
// result carries the functions as state, so it suits direct Serialize and
// Deserialize calls; fields declared through Value need a named stub type
// instead, since Value relies on the stub's zero value.
func Fuse[T any](create CreateBytesFunc[T], from FromBytesFunc[T]) Fused[T] {
	return Fused[T]{
		create: create,
		from:   from,
	}
}
