package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

var ErrNotFound = errors.New("replay: not found")

// ItemStore is the subset of gdata.Manager a Store uses.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store saves frame logs as JSON items. A Store without an item store
// saves nothing and finds nothing.
type Store struct {
	items ItemStore
}

// OpenStore opens the gdata storage of app.
func OpenStore(app string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		return &Store{}, fmt.Errorf("open replay storage: %w", err)
	}
	return &Store{items: m}, nil
}

func NewStore(items ItemStore) *Store {
	return &Store{items: items}
}

func itemKey(name string) string {
	return "replay_" + name
}

// Save writes l under name, replacing any previous replay with that name.
func (s *Store) Save(name string, l *FrameLog) error {
	if s == nil || s.items == nil {
		return nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("encode replay %q: %w", name, err)
	}
	if err := s.items.SaveItem(itemKey(name), data); err != nil {
		return fmt.Errorf("save replay %q: %w", name, err)
	}
	log.Printf("[replay] Saved %q: %d frames", name, l.Len())
	return nil
}

// Load reads the replay saved under name.
func (s *Store) Load(name string) (*FrameLog, error) {
	if s == nil || s.items == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	data, err := s.items.LoadItem(itemKey(name))
	if err != nil {
		return nil, fmt.Errorf("load replay %q: %w", name, err)
	}
	if data == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	var l FrameLog
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("decode replay %q: %w", name, err)
	}
	return &l, nil
}
