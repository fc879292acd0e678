// Package codec defines the serializer used for worker argument payloads.
//
// The registry treats payloads as opaque bytes; a Codec turns the caller's
// structured argument bag into those bytes and back. JSON is the default
// and matches what existing Resque tooling writes; Msgpack is a drop-in
// alternative for deployments that prefer a binary encoding.
//
// Decoding into an untyped bag follows the codec's native conventions:
// JSON yields float64 for every number, msgpack preserves integer types.
// All processes sharing a store must agree on one codec.
package codec

// Codec encodes and decodes worker argument payloads.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}
