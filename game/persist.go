package game

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec turns a SessionState into bytes and back.
type Codec interface {
	Marshal(s SessionState) ([]byte, error)
	Unmarshal(data []byte, s *SessionState) error
}

// JSONCodec writes the flat object the browser build keeps in localStorage,
// e.g. {"score":250,"health":2,"bulletCooldown":0.6,"bulletSpeed":0.25}.
type JSONCodec struct{}

func (JSONCodec) Marshal(s SessionState) ([]byte, error) {
	return json.Marshal(s)
}

func (JSONCodec) Unmarshal(data []byte, s *SessionState) error {
	return json.Unmarshal(data, s)
}

// MsgpackCodec is the compact binary encoding used by the desktop save file.
type MsgpackCodec struct{}

func (MsgpackCodec) Marshal(s SessionState) ([]byte, error) {
	return msgpack.Marshal(&s)
}

func (MsgpackCodec) Unmarshal(data []byte, s *SessionState) error {
	return msgpack.Unmarshal(data, s)
}

// Saves snapshots and restores a SessionState under a single store key.
type Saves struct {
	store Store
	codec Codec
	key   string
}

// NewSaves creates a Saves writing to SaveKey in store.
func NewSaves(store Store, codec Codec) *Saves {
	return &Saves{store: store, codec: codec, key: SaveKey}
}

// Save writes the session.
func (s *Saves) Save(state SessionState) error {
	data, err := s.codec.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.store.Set(s.key, string(data)); err != nil {
		return fmt.Errorf("write %q: %w", s.key, err)
	}
	return nil
}

// Load reads the stored session. It returns ErrNoSavedGame when nothing is
// stored under the key.
func (s *Saves) Load() (SessionState, error) {
	var state SessionState
	raw, ok, err := s.store.Get(s.key)
	if err != nil {
		return state, fmt.Errorf("read %q: %w", s.key, err)
	}
	if !ok || raw == "" || raw == "null" {
		return state, ErrNoSavedGame
	}
	if err := s.codec.Unmarshal([]byte(raw), &state); err != nil {
		return state, fmt.Errorf("decode session: %w", err)
	}
	return state, nil
}

// Exists reports whether a session is stored. Read errors count as absent.
func (s *Saves) Exists() bool {
	raw, ok, err := s.store.Get(s.key)
	return err == nil && ok && raw != "" && raw != "null"
}

// Clear removes the stored session.
func (s *Saves) Clear() error {
	if err := s.store.Remove(s.key); err != nil {
		return fmt.Errorf("remove %q: %w", s.key, err)
	}
	return nil
}
