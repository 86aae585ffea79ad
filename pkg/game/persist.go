package game

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"rogueblind-server/pkg/deck"
	"rogueblind-server/pkg/joker"
	"rogueblind-server/pkg/shop"
)

// ErrNoSnapshot is returned by a SnapshotStore when no snapshot exists under
// the key
var ErrNoSnapshot = errors.New("no snapshot stored")

// SnapshotStore is the external key-value collaborator the engine persists
// through. The engine never touches storage on its own; callers decide when
// to Save and Load.
type SnapshotStore interface {
	Put(key string, data []byte) error
	// Get returns ErrNoSnapshot if nothing is stored under the key
	Get(key string) ([]byte, error)
	Delete(key string) error
}

// Save serializes the current state under the key. Joker behavior is plain
// data (tagged variants), so the whole state serializes directly.
func (g *Game) Save(store SnapshotStore, key string) error {
	data, err := json.Marshal(g.Snapshot())
	if err != nil {
		return err
	}

	return store.Put(key, data)
}

// Load restores a game from the snapshot stored under the key. Jokers are
// rehydrated against the pool registry so that stale or hand-edited saves
// cannot smuggle in behavior the pool doesn't define.
func Load(logger logrus.FieldLogger, store SnapshotStore, key string, opts Options) (*Game, error) {
	data, err := store.Get(key)
	if err != nil {
		return nil, err
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("could not decode snapshot: %w", err)
	}

	for _, j := range state.Inventory.Jokers {
		if err := joker.Rehydrate(j); err != nil {
			return nil, err
		}
	}

	for _, item := range state.Shop.Items {
		if err := joker.Rehydrate(item.Joker); err != nil {
			return nil, err
		}
	}

	normalize(&state)

	g := New(logger, opts)
	g.state = &state

	return g, nil
}

// Reset clears the stored snapshot. This is the only supported "wipe the
// save" primitive.
func Reset(store SnapshotStore, key string) error {
	return store.Delete(key)
}

// normalize replaces nil slices left by older snapshots with empty ones
func normalize(s *State) {
	if s.Deck == nil {
		s.Deck = []*deck.Card{}
	}

	if s.Hand == nil {
		s.Hand = []*deck.Card{}
	}

	if s.DiscardPile == nil {
		s.DiscardPile = []*deck.Card{}
	}

	if s.Inventory.Jokers == nil {
		s.Inventory.Jokers = []*joker.Joker{}
	}

	if s.Inventory.Consumables == nil {
		s.Inventory.Consumables = []*Consumable{}
	}

	if s.Shop.Items == nil {
		s.Shop.Items = []*shop.Item{}
	}
}
