package cache

import (
	"context"
	"strings"
	"testing"
)

func TestKeyIsStableAndScoped(t *testing.T) {
	a := Key("quiz", "sec-1", "The cell grows.")
	b := Key("quiz", "sec-1", "The cell grows.")
	if a != b {
		t.Errorf("same inputs produced different keys: %q vs %q", a, b)
	}

	if a == Key("sandbox", "sec-1", "The cell grows.") {
		t.Error("different kinds share a key")
	}
	if a == Key("quiz", "sec-2", "The cell grows.") {
		t.Error("different scopes share a key")
	}
	if a == Key("quiz", "sec-1", "Different transcript.") {
		t.Error("different transcripts share a key")
	}

	if !strings.HasPrefix(a, "quiz:sec-1:") {
		t.Errorf("key = %q, want quiz:sec-1: prefix", a)
	}
}

func TestKeyFingerprintsPrefixOnly(t *testing.T) {
	long := strings.Repeat("a", 200)
	// Edits past the fingerprint window do not change the key.
	if Key("lesson", "", long) != Key("lesson", "", long+"tail") {
		t.Error("key changed for an edit beyond the fingerprinted prefix")
	}
	if Key("lesson", "", long) == Key("lesson", "", "b"+long[1:]) {
		t.Error("key unchanged for an edit inside the fingerprinted prefix")
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if _, ok, err := m.Get(ctx, "missing"); ok || err != nil {
		t.Fatalf("Get on empty store = (%v, %v)", ok, err)
	}

	if err := m.Set(ctx, "k", []byte("payload")); err != nil {
		t.Fatal(err)
	}
	got, ok, err := m.Get(ctx, "k")
	if err != nil || !ok || string(got) != "payload" {
		t.Fatalf("Get = (%q, %v, %v)", got, ok, err)
	}

	// Mutating the returned slice does not corrupt the stored copy.
	got[0] = 'X'
	again, _, _ := m.Get(ctx, "k")
	if string(again) != "payload" {
		t.Errorf("stored payload corrupted: %q", again)
	}
}

func TestLayeredBackfill(t *testing.T) {
	ctx := context.Background()
	front := NewMemory()
	back := NewMemory()
	l := NewLayered(front, back)

	if err := back.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatal(err)
	}

	got, ok, err := l.Get(ctx, "k")
	if err != nil || !ok || string(got) != "v" {
		t.Fatalf("layered Get = (%q, %v, %v)", got, ok, err)
	}

	// The hit was copied into the front layer.
	if _, ok, _ := front.Get(ctx, "k"); !ok {
		t.Error("front layer was not backfilled")
	}
}

func TestLayeredSetWritesThrough(t *testing.T) {
	ctx := context.Background()
	front := NewMemory()
	back := NewMemory()
	l := NewLayered(front, back)

	if err := l.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := front.Get(ctx, "k"); !ok {
		t.Error("front layer missed the write")
	}
	if _, ok, _ := back.Get(ctx, "k"); !ok {
		t.Error("back layer missed the write")
	}
}

func TestLayeredMiss(t *testing.T) {
	l := NewLayered(NewMemory(), NewMemory())
	if _, ok, err := l.Get(context.Background(), "missing"); ok || err != nil {
		t.Errorf("layered Get on miss = (%v, %v)", ok, err)
	}
}
