package kvstore

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreGetSet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, err := s.Get(ctx, "user:1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := s.Set(ctx, "user:1", []byte(`{"points":10}`)); err != nil {
		t.Fatal(err)
	}
	value, err := s.Get(ctx, "user:1")
	if err != nil {
		t.Fatal(err)
	}
	if string(value) != `{"points":10}` {
		t.Errorf("got %s", value)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	s.Set(ctx, "user:1", []byte(`1`))
	if err := s.Delete(ctx, "user:1"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(ctx, "user:1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	// Deleting an absent key is a no-op.
	if err := s.Delete(ctx, "user:2"); err != nil {
		t.Errorf("delete of absent key failed: %v", err)
	}
}

func TestMemoryStorePrefixScanInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	s.Set(ctx, "activity:u1:300", []byte(`"c"`))
	s.Set(ctx, "activity:u1:100", []byte(`"a"`))
	s.Set(ctx, "activity:u2:200", []byte(`"other"`))
	s.Set(ctx, "activity:u1:200", []byte(`"b"`))

	values, err := s.GetByPrefix(ctx, "activity:u1:")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{`"c"`, `"a"`, `"b"`}
	if len(values) != len(want) {
		t.Fatalf("got %d values, want %d", len(values), len(want))
	}
	for i, w := range want {
		if string(values[i]) != w {
			t.Errorf("position %d: got %s, want %s", i, values[i], w)
		}
	}
}

func TestMemoryStorePrefixDoesNotMatchSiblingFamilies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	s.Set(ctx, "user:1", []byte(`{}`))
	s.Set(ctx, "user_nickname:바다지기", []byte(`"1"`))

	values, err := s.GetByPrefix(ctx, "user:")
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 1 {
		t.Errorf("user: prefix matched %d values, want 1", len(values))
	}
}

func TestMemoryStoreSetOverwriteKeepsOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	s.Set(ctx, "user:1", []byte(`"old1"`))
	s.Set(ctx, "user:2", []byte(`"old2"`))
	s.Set(ctx, "user:1", []byte(`"new1"`))

	values, _ := s.GetByPrefix(ctx, "user:")
	if string(values[0]) != `"new1"` || string(values[1]) != `"old2"` {
		t.Errorf("overwrite changed scan order: %q %q", values[0], values[1])
	}
}
