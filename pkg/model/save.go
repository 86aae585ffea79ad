package model

import (
	"context"
	"database/sql"

	"rogueblind-server/pkg/db"
	"rogueblind-server/pkg/game"
)

// GameSaveStore persists run snapshots in the `game_saves` table, keyed by
// the owning player. It satisfies game.SnapshotStore.
type GameSaveStore struct{}

var _ game.SnapshotStore = GameSaveStore{}

// Put stores the snapshot, replacing any previous one under the key
func (GameSaveStore) Put(key string, data []byte) error {
	const query = `
INSERT INTO game_saves (player_key, snapshot)
VALUES ($1, $2::jsonb)
ON CONFLICT (player_key)
DO UPDATE SET snapshot = EXCLUDED.snapshot, updated = (NOW() AT TIME ZONE 'utc')`

	// jsonb wants text, not bytea
	_, err := db.Instance().ExecContext(context.Background(), query, key, string(data))
	return err
}

// Get returns the stored snapshot, or game.ErrNoSnapshot if the player has
// no saved run
func (GameSaveStore) Get(key string) ([]byte, error) {
	const query = `
SELECT snapshot
FROM game_saves
WHERE player_key = $1`

	var data []byte
	if err := db.Instance().QueryRowContext(context.Background(), query, key).Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, game.ErrNoSnapshot
		}

		return nil, err
	}

	return data, nil
}

// Delete removes the stored snapshot. Deleting a missing snapshot is not an
// error.
func (GameSaveStore) Delete(key string) error {
	const query = `
DELETE FROM game_saves
WHERE player_key = $1`

	_, err := db.Instance().ExecContext(context.Background(), query, key)
	return err
}
