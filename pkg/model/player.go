package model

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/synacor/argon2id"

	"rogueblind-server/internal/util"
	"rogueblind-server/pkg/db"
)

const playerColumns = `
players.id,
players.email,
players.display_name,
players.is_site_admin,
players.password_hash,
players.created,
players.updated`

const pqDuplicateKeyErrorCode pq.ErrorCode = "23505"

// ErrInvalidEmailOrPassword is an error for an invalid email or password
var ErrInvalidEmailOrPassword = UserError("invalid email address and/or password")

// ErrDuplicateKey happens if a user tries to create a player with a taken email
var ErrDuplicateKey = errors.New("duplicate key constraint violation")

// Player is a record in the `players` table
type Player struct {
	ID           int64  `json:"id"`
	Email        string `json:"-"`
	DisplayName  string `json:"displayName"`
	IsSiteAdmin  bool   `json:"isSiteAdmin"`
	passwordHash string
	Created      time.Time `json:"created"`
	Updated      time.Time `json:"updated"`
}

func getPlayerByRow(row db.Scanner) (*Player, error) {
	var player Player
	if err := row.Scan(&player.ID, &player.Email, &player.DisplayName, &player.IsSiteAdmin, &player.passwordHash, &player.Created, &player.Updated); err != nil {
		return nil, err
	}

	return &player, nil
}

// GetPlayerByID returns player based on the ID
func GetPlayerByID(ctx context.Context, id int64) (*Player, error) {
	const query = `
SELECT ` + playerColumns + `
FROM players
WHERE id = $1`

	row := db.Instance().QueryRowContext(ctx, query, id)
	return getPlayerByRow(row)
}

// Save will persist any changes made to the player to the database
func (p *Player) Save(ctx context.Context) error {
	const query = `
UPDATE players
SET email = $1,
    password_hash = $2,
    display_name = $3,
    is_site_admin = $4,
    updated = (NOW() AT TIME ZONE 'utc')
WHERE id = $5`

	_, err := db.Instance().ExecContext(ctx, query, p.Email, p.passwordHash, p.DisplayName, p.IsSiteAdmin, p.ID)
	return err
}

// GetPlayerByEmail will return a player by the email address
func GetPlayerByEmail(ctx context.Context, email string) (*Player, error) {
	const query = `
SELECT ` + playerColumns + `
FROM players
WHERE lower(email) = Lower($1)`

	row := db.Instance().QueryRowContext(ctx, query, email)
	return getPlayerByRow(row)
}

// GetPlayerByEmailAndPassword will return a player if the email and password are valid
func GetPlayerByEmailAndPassword(ctx context.Context, email, password string) (*Player, error) {
	player, err := GetPlayerByEmail(ctx, email)
	if err != nil {
		if err == sql.ErrNoRows {
			// prevent timing attacks
			_ = argon2id.Compare("", "")
			return nil, ErrInvalidEmailOrPassword
		}

		return nil, err
	}

	if err := player.ValidatePassword(password); err != nil {
		return nil, err
	}

	return player, nil
}

// ValidatePassword will validate a player's password
// Returns nil if the password is valid
func (p *Player) ValidatePassword(password string) error {
	if err := argon2id.Compare(p.passwordHash, password); err != nil {
		return ErrInvalidEmailOrPassword
	}

	return nil
}

// LastPlayerCreatedAt returns the last time a player was created by the remote address
// If a player hasn't been created yet, this will return a nil error and a time.Time{} object (i.e., zero)
func LastPlayerCreatedAt(ctx context.Context, remoteAddr string) (time.Time, error) {
	const query = `
SELECT MAX(created)
FROM players
WHERE remote_addr = $1`

	var created sql.NullTime
	if err := db.Instance().QueryRowContext(ctx, query, remoteAddr).Scan(&created); err != nil {
		return time.Time{}, err
	}

	return created.Time, nil
}

// CreatePlayer creates a new player
func CreatePlayer(ctx context.Context, email, displayName, password, remoteAddr string) (*Player, error) {
	hashPassword, err := argon2id.DefaultHashPassword(password)
	if err != nil {
		return nil, err
	}

	const query = `
INSERT INTO players (email, display_name, password_hash, remote_addr)
VALUES ($1, $2, $3, $4)
RETURNING ` + playerColumns

	row := db.Instance().QueryRowContext(ctx, query, email, displayName, hashPassword, remoteAddr)
	player, err := getPlayerByRow(row)
	if err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == pqDuplicateKeyErrorCode {
			return nil, ErrDuplicateKey
		}

		return nil, err
	}

	return player, nil
}

// SetPassword will set a new password on the player instance
// Important: you must call Save() to persist this change
func (p *Player) SetPassword(password string) error {
	newHash, err := argon2id.DefaultHashPassword(password)
	if err != nil {
		return err
	}

	p.passwordHash = newHash
	return nil
}

// SetIsSiteAdmin sets whether the player is a site admin
func (p *Player) SetIsSiteAdmin(ctx context.Context, isSiteAdmin bool) error {
	if p.IsSiteAdmin == isSiteAdmin {
		return nil
	}

	const query = `
UPDATE players
SET is_site_admin = $1, updated = (NOW() AT TIME ZONE 'UTC')
WHERE id = $2
RETURNING updated`

	var updated sql.NullTime
	if err := db.Instance().QueryRowContext(ctx, query, isSiteAdmin, p.ID).Scan(&updated); err != nil {
		return err
	}

	p.IsSiteAdmin = isSiteAdmin
	p.Updated = updated.Time
	return nil
}

func getPlayers(rows *sql.Rows, err error) ([]*Player, error) {
	if err != nil {
		return nil, err
	}

	players := make([]*Player, 0)
	for rows.Next() {
		player, err := getPlayerByRow(rows)
		if err != nil {
			return nil, err
		}

		players = append(players, player)
	}

	return players, nil
}

// GetPlayersWithSearch will return a list of players matching the specified search string
func GetPlayersWithSearch(ctx context.Context, search string, offset int64, limit int) ([]*Player, error) {
	if search == "" {
		return GetPlayers(ctx, offset, limit)
	}

	if searchInt, _ := strconv.ParseInt(search, 10, 64); searchInt > 0 {
		const query = `
SELECT ` + playerColumns + `
FROM players
WHERE id = $1`

		return getPlayers(db.Instance().QueryContext(ctx, query, searchInt))
	}

	const query = `
SELECT ` + playerColumns + `
FROM players
WHERE display_name LIKE $1 || '%' OR email LIKE $1 || '%'
ORDER BY id ASC
OFFSET $2
LIMIT $3`

	return getPlayers(db.Instance().QueryContext(ctx, query, search, offset, limit))
}

// GetPlayers returns a list of players
func GetPlayers(ctx context.Context, offset int64, limit int) ([]*Player, error) {
	const query = `
SELECT ` + playerColumns + `
FROM players
ORDER BY id ASC
OFFSET $1
LIMIT $2`

	return getPlayers(db.Instance().QueryContext(ctx, query, offset, limit))
}

// Delete will mark a player as deleted
// The row is kept, but the email is destroyed and the password is changed
func (p *Player) Delete(ctx context.Context) error {
	p.DisplayName = util.GetRandomName()
	p.Email = uuid.New().String() + "@deleted.rogueblind.gg"
	if err := p.Save(ctx); err != nil {
		return err
	}

	return p.SetPassword(uuid.New().String())
}
