package consthex

import (
	"fmt"
	"reflect"
)

// ArrayForm is the ready-made Codec for byte-array types such as [16]byte
// or named types thereof. The array length is read through reflection,
// since Go generics cannot abstract over array lengths; using ArrayForm
// with any other kind of type panics on first use.
type ArrayForm[T any] struct{}

// Size implements the consthex.Codec interface.
func (ArrayForm[T]) Size() int {
	return arrayLen[T]()
}

// CreateBytes implements the consthex.Codec interface. It returns a copy
// of the array contents.
func (ArrayForm[T]) CreateBytes(value T) []byte {
	rv := reflect.ValueOf(&value).Elem()
	out := make([]byte, arrayLen[T]())
	reflect.Copy(reflect.ValueOf(out), rv)

	return out
}

// FromBytes implements the consthex.Codec interface. It never fails: any
// byte sequence of the right length is a valid array value.
func (ArrayForm[T]) FromBytes(bytes []byte) (T, error) {
	var value T

	reflect.Copy(reflect.ValueOf(&value).Elem(), reflect.ValueOf(bytes))

	return value, nil
}

func arrayLen[T any]() int {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Array || t.Elem().Kind() != reflect.Uint8 {
		panic(fmt.Sprintf("consthex: %s is not a byte array type", t))
	}

	return t.Len()
}

// CreateBytesFunc is a functional form of the Codec byte-producing half.
type CreateBytesFunc[T any] func(value T) []byte

// FromBytesFunc is a functional form of the Codec byte-consuming half.
type FromBytesFunc[T any] func(bytes []byte) (T, error)

// Fused combines a size and two conversion functions into a Codec
// implementation.
type Fused[T any] struct {
	size   int
	create CreateBytesFunc[T]
	from   FromBytesFunc[T]
}

// Size implements the consthex.Codec interface.
func (f Fused[T]) Size() int { return f.size }

// CreateBytes implements the consthex.Codec interface.
func (f Fused[T]) CreateBytes(value T) []byte { return f.create(value) }

// FromBytes implements the consthex.Codec interface.
func (f Fused[T]) FromBytes(bytes []byte) (T, error) { return f.from(bytes) }

// Fuse combines a byte size and two conversion functions into a Codec.
// The result carries state, so it suits direct Serialize and Deserialize
// calls; fields declared through Value need a named stub type instead,
// since Value relies on the stub's zero value.
func Fuse[T any](size int, create CreateBytesFunc[T], from FromBytesFunc[T]) Fused[T] {
	return Fused[T]{
		size:   size,
		create: create,
		from:   from,
	}
}
