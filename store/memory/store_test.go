package memory

import (
	"bytes"
	"context"
	"sort"
	"testing"
)

func TestStringKeys(t *testing.T) {
	t.Parallel()
	s := New()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want absent", ok, err)
	}

	if err := s.Set(ctx, "slot", "100"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, ok, err := s.Get(ctx, "slot")
	if err != nil || !ok || value != "100" {
		t.Fatalf("Get(slot) = %q, %v, %v; want 100, true, nil", value, ok, err)
	}

	// Empty string is a present value, distinct from an absent key.
	if err := s.Set(ctx, "slot", ""); err != nil {
		t.Fatalf("Set empty: %v", err)
	}
	if value, ok, _ := s.Get(ctx, "slot"); !ok || value != "" {
		t.Fatalf("Get(slot) = %q, %v; want empty string present", value, ok)
	}
}

func TestHashOperations(t *testing.T) {
	t.Parallel()
	s := New()
	ctx := context.Background()

	fields, err := s.HashGetAll(ctx, "h")
	if err != nil || len(fields) != 0 {
		t.Fatalf("HashGetAll(missing) = %#v, %v; want empty", fields, err)
	}

	if err := s.HashSet(ctx, "h", "100", []byte(`{}`)); err != nil {
		t.Fatalf("HashSet: %v", err)
	}
	if err := s.HashSet(ctx, "h", "100", []byte(`{"v":2}`)); err != nil {
		t.Fatalf("HashSet overwrite: %v", err)
	}
	fields, err = s.HashGetAll(ctx, "h")
	if err != nil {
		t.Fatalf("HashGetAll: %v", err)
	}
	if len(fields) != 1 || !bytes.Equal(fields["100"], []byte(`{"v":2}`)) {
		t.Fatalf("got %#v, want single overwritten field", fields)
	}

	// Deleting an absent field is a no-op.
	if err := s.HashDelete(ctx, "h", "200"); err != nil {
		t.Fatalf("HashDelete absent: %v", err)
	}
	if err := s.HashDelete(ctx, "h", "100"); err != nil {
		t.Fatalf("HashDelete: %v", err)
	}

	// An emptied hash ceases to exist, like Redis.
	removed, err := s.Delete(ctx, "h")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if removed != 0 {
		t.Fatalf("Delete(emptied hash) removed %d, want 0", removed)
	}
}

func TestSetOperations(t *testing.T) {
	t.Parallel()
	s := New()
	ctx := context.Background()

	members, err := s.SetMembers(ctx, "paused")
	if err != nil || len(members) != 0 {
		t.Fatalf("SetMembers(missing) = %#v, %v; want empty", members, err)
	}

	for i := 0; i < 2; i++ {
		if err := s.SetAdd(ctx, "paused", "w1"); err != nil {
			t.Fatalf("SetAdd call %d: %v", i+1, err)
		}
	}
	if err := s.SetAdd(ctx, "paused", "w2"); err != nil {
		t.Fatalf("SetAdd: %v", err)
	}

	members, err = s.SetMembers(ctx, "paused")
	if err != nil {
		t.Fatalf("SetMembers: %v", err)
	}
	sort.Strings(members)
	if len(members) != 2 || members[0] != "w1" || members[1] != "w2" {
		t.Fatalf("got %#v, want [w1 w2]", members)
	}

	if err := s.SetRemove(ctx, "paused", "absent"); err != nil {
		t.Fatalf("SetRemove absent: %v", err)
	}
	if err := s.SetRemove(ctx, "paused", "w1"); err != nil {
		t.Fatalf("SetRemove: %v", err)
	}
	members, _ = s.SetMembers(ctx, "paused")
	if len(members) != 1 || members[0] != "w2" {
		t.Fatalf("got %#v, want [w2]", members)
	}
}

func TestDeleteCountsAcrossTypes(t *testing.T) {
	t.Parallel()
	s := New()
	ctx := context.Background()

	if err := s.HashSet(ctx, "workers", "1", []byte(`{}`)); err != nil {
		t.Fatalf("HashSet: %v", err)
	}
	if err := s.Set(ctx, "slot", "1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.SetAdd(ctx, "paused", "w1"); err != nil {
		t.Fatalf("SetAdd: %v", err)
	}

	removed, err := s.Delete(ctx, "workers", "slot", "paused", "missing")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if removed != 3 {
		t.Fatalf("Delete removed %d, want 3", removed)
	}

	if fields, _ := s.HashGetAll(ctx, "workers"); len(fields) != 0 {
		t.Fatalf("hash survived delete: %#v", fields)
	}
	if _, ok, _ := s.Get(ctx, "slot"); ok {
		t.Fatal("string survived delete")
	}
	if members, _ := s.SetMembers(ctx, "paused"); len(members) != 0 {
		t.Fatalf("set survived delete: %#v", members)
	}
}

func TestHashPayloadIsolation(t *testing.T) {
	t.Parallel()
	s := New()
	ctx := context.Background()

	payload := []byte(`{"v":1}`)
	if err := s.HashSet(ctx, "h", "1", payload); err != nil {
		t.Fatalf("HashSet: %v", err)
	}
	payload[0] = 'X' // caller mutation must not reach the store

	fields, err := s.HashGetAll(ctx, "h")
	if err != nil {
		t.Fatalf("HashGetAll: %v", err)
	}
	if !bytes.Equal(fields["1"], []byte(`{"v":1}`)) {
		t.Fatalf("stored payload mutated: %q", fields["1"])
	}
}
