package codec

import (
	"reflect"
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	in := map[string]any{
		"queues":   []any{"high", "default"},
		"interval": float64(5),
		"verbose":  true,
		"nested":   map[string]any{"blocking": false},
	}

	data, err := JSON{}.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var out map[string]any
	if err := (JSON{}).Decode(data, &out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("got %#v, want %#v", out, in)
	}
}

func TestMsgpackRoundTrip(t *testing.T) {
	t.Parallel()

	in := map[string]any{
		"queue":   "default",
		"verbose": true,
	}

	data, err := Msgpack{}.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var out map[string]any
	if err := (Msgpack{}).Decode(data, &out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out["queue"] != "default" || out["verbose"] != true {
		t.Fatalf("got %#v, want queue=default verbose=true", out)
	}
}
