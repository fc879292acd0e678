package codec

import "github.com/vmihailenco/msgpack/v5"

// Msgpack encodes payloads as MessagePack. More compact than JSON but not
// directly readable by redis-cli; use it only when every process sharing
// the store agrees on it.
type Msgpack struct{}

func (Msgpack) Encode(v any) ([]byte, error) { return msgpack.Marshal(v) }

func (Msgpack) Decode(data []byte, v any) error { return msgpack.Unmarshal(data, v) }
