package mem

import (
	"testing"
	"time"

	"wayfare/internal/planner"
)

func sampleSession(id string) Session {
	return Session{
		ID:          id,
		Destination: planner.Anchor{Name: "Bangalore"},
		Pool: planner.BuildPool([]planner.RawPlace{
			{Name: "Palace", Category: "attraction", Latitude: 0.001},
		}, planner.Coordinate{}),
		CreatedAt: time.Now(),
	}
}

func TestPutGet(t *testing.T) {
	store := NewPoolSessions()
	store.Put(sampleSession("a"), time.Hour)

	got, ok := store.Get("a")
	if !ok || got.Destination.Name != "Bangalore" {
		t.Fatalf("got %+v ok=%v", got, ok)
	}
	if got.Pool.Len() != 1 {
		t.Errorf("pool len = %d, want 1", got.Pool.Len())
	}

	if _, ok := store.Get("missing"); ok {
		t.Error("unexpected hit for missing id")
	}
}

func TestExpiry(t *testing.T) {
	store := NewPoolSessions()
	store.Put(sampleSession("a"), -time.Second)

	if _, ok := store.Get("a"); ok {
		t.Error("expired session returned")
	}
	// Expired entries are removed on access.
	store.mu.RLock()
	_, present := store.data["a"]
	store.mu.RUnlock()
	if present {
		t.Error("expired entry not cleaned up")
	}
}

func TestDelete(t *testing.T) {
	store := NewPoolSessions()
	store.Put(sampleSession("a"), time.Hour)
	store.Delete("a")

	if _, ok := store.Get("a"); ok {
		t.Error("deleted session returned")
	}
}

func TestOverwrite(t *testing.T) {
	store := NewPoolSessions()
	store.Put(sampleSession("a"), time.Hour)

	replacement := sampleSession("a")
	replacement.Destination.Name = "Mysore"
	store.Put(replacement, time.Hour)

	got, _ := store.Get("a")
	if got.Destination.Name != "Mysore" {
		t.Errorf("destination = %q, want overwritten value", got.Destination.Name)
	}
}
