package codec

import "encoding/json"

// JSON is the default codec. Payloads are standard JSON objects, readable
// by any external tool inspecting the store.
type JSON struct{}

func (JSON) Encode(v any) ([]byte, error) { return json.Marshal(v) }

func (JSON) Decode(data []byte, v any) error { return json.Unmarshal(data, v) }
