// Package hexbuf provides serialization adapters for byte buffers that
// should appear as lower-case hex strings in human-readable wire formats
// (JSON, TOML, YAML) and as raw byte payloads in binary ones (MessagePack,
// CBOR).
//
// The library contains multiple packages. `varhex` covers buffers whose
// length is only known at runtime, `consthex` covers buffers with a
// statically known byte length, and `serde` holds the serializer and
// deserializer contracts both adapters are written against.
//
// The adapters exist to solve an attachment problem: a byte-buffer type
// defined in another module cannot be given custom marshaling behavior
// directly. Instead, a stateless codec stub is bound to the field
// declaration through `varhex.Value` or `consthex.Value`, leaving the
// buffer type itself untouched.
package hexbuf
