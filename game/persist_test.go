package game

import (
	"errors"
	"strings"
	"testing"
)

func TestSaves_RoundTrip(t *testing.T) {
	want := SessionState{Score: 250, Health: 2, BulletCooldown: 0.6, BulletSpeed: 0.25}

	for name, codec := range map[string]Codec{"json": JSONCodec{}, "msgpack": MsgpackCodec{}} {
		store := NewMemoryStore()
		if err := NewSaves(store, codec).Save(want); err != nil {
			t.Fatalf("%s: save: %v", name, err)
		}

		got, err := NewSaves(store, codec).Load()
		if err != nil {
			t.Fatalf("%s: load: %v", name, err)
		}
		if got != want {
			t.Errorf("%s: expected %+v, got %+v", name, want, got)
		}
	}
}

func TestJSONCodec_BrowserLayout(t *testing.T) {
	data, err := JSONCodec{}.Marshal(SessionState{Score: 250, Health: 2, BulletCooldown: 0.6, BulletSpeed: 0.25})
	if err != nil {
		t.Fatal(err)
	}

	want := `{"score":250,"health":2,"bulletCooldown":0.6,"bulletSpeed":0.25}`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, data)
	}
}

func TestSaves_LoadMissing(t *testing.T) {
	saves := NewSaves(NewMemoryStore(), JSONCodec{})

	if _, err := saves.Load(); !errors.Is(err, ErrNoSavedGame) {
		t.Errorf("Expected ErrNoSavedGame, got %v", err)
	}
	if saves.Exists() {
		t.Error("Expected Exists to be false")
	}
}

func TestSaves_LoadNullIsMissing(t *testing.T) {
	store := NewMemoryStore()
	store.Set(SaveKey, "null")

	if _, err := NewSaves(store, JSONCodec{}).Load(); !errors.Is(err, ErrNoSavedGame) {
		t.Errorf("Expected ErrNoSavedGame, got %v", err)
	}
}

func TestSaves_CorruptData(t *testing.T) {
	store := NewMemoryStore()
	store.Set(SaveKey, "{score:")

	_, err := NewSaves(store, JSONCodec{}).Load()
	if err == nil || !strings.Contains(err.Error(), "decode session") {
		t.Errorf("Expected decode error, got %v", err)
	}
}

func TestSaves_Clear(t *testing.T) {
	store := NewMemoryStore()
	store.Set("other", "kept")
	saves := NewSaves(store, JSONCodec{})
	saves.Save(NewSessionState(DefaultConfig()))

	if err := saves.Clear(); err != nil {
		t.Fatal(err)
	}
	if saves.Exists() {
		t.Error("Expected save to be gone")
	}
	if v, ok, _ := store.Get("other"); !ok || v != "kept" {
		t.Error("Expected unrelated keys to survive Clear")
	}
}

func TestSaves_StoreErrorsAreWrapped(t *testing.T) {
	saves := NewSaves(brokenStore{}, JSONCodec{})

	if err := saves.Save(SessionState{}); !errors.Is(err, errStoreDown) {
		t.Errorf("Expected wrapped store error from Save, got %v", err)
	}
	if _, err := saves.Load(); !errors.Is(err, errStoreDown) {
		t.Errorf("Expected wrapped store error from Load, got %v", err)
	}
	if saves.Exists() {
		t.Error("Expected unreadable store to report no save")
	}
}
