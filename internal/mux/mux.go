package mux

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"rogueblind-server/internal/jwt"
	"rogueblind-server/pkg/game"
	"rogueblind-server/pkg/model"
	"rogueblind-server/pkg/push"
)

type ctxKey int

const ctxPlayerKey ctxKey = iota

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config    config
	version   string
	recaptcha recaptcha
	hub       *push.Hub
	saves     game.SnapshotStore

	gamesMu sync.Mutex
	games   map[int64]*game.Game

	// store for testing purposes
	authRouter  *gmux.Router
	adminRouter *gmux.Router
}

type config struct {
	// playerCreateDelay is the minimum duration between two player create events from a single remote address
	playerCreateDelay time.Duration
}

// NewMux returns a new HTTP mux
func NewMux(version string, saves game.SnapshotStore) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		hub:     push.NewHub(),
		saves:   saves,
		games:   make(map[int64]*game.Game),
		config: config{
			playerCreateDelay: time.Minute,
		},
		recaptcha: newRecaptcha(),
	}

	this.authRouter = this.Router.NewRoute().Subrouter()
	this.authRouter.Use(this.authMiddleware)

	this.adminRouter = this.authRouter.NewRoute().Subrouter()
	this.adminRouter.Use(this.adminMiddleware)

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/player").Handler(this.postPlayer())
		r.Methods(http.MethodPost).Path("/player/auth").Handler(this.postPlayerAuth())
		r.Methods(http.MethodGet).Path("/player/auth/{jwt:.*}").Handler(this.getPlayerAuthJWT())
	}

	// requires bearer authorization
	{
		r := this.authRouter

		r.Methods(http.MethodPost).Path("/player/{id:[0-9]+}").Handler(this.postPlayerID())

		r.Methods(http.MethodGet).Path("/game").Handler(this.getGame())
		r.Methods(http.MethodPost).Path("/game/action").Handler(this.postGameAction())
		r.Methods(http.MethodDelete).Path("/game").Handler(this.deleteGame())
		r.Methods(http.MethodGet).Path("/game/ws").Handler(this.getGameWS())
	}

	// requires admin access
	// depends on authMiddleware
	{
		r := this.adminRouter
		r.Methods(http.MethodGet).Path("/admin/player").Handler(this.getPlayer())
		r.Methods(http.MethodPost).Path("/admin/player/{id:[0-9]+}").Handler(this.postAdminPlayerID())
	}

	return this
}

func (m *Mux) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.FormValue("access_token")
		if token == "" {
			authHeader := strings.Split(r.Header.Get("Authorization"), " ")
			if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != "bearer" {
				writeJSONError(w, http.StatusUnauthorized, nil)
				return
			}

			token = authHeader[1]
		}

		id, err := jwt.ValidUserID(token)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		player, err := model.GetPlayerByID(r.Context(), id)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxPlayerKey, player)
		w.Header().Set("Rogueblind-UserID", strconv.FormatInt(player.ID, 10))
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

// adminMiddleware requires authMiddleware to execute first
func (m *Mux) adminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		player := r.Context().Value(ctxPlayerKey).(*model.Player)
		if !player.IsSiteAdmin {
			writeJSONError(w, http.StatusForbidden, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// gameForPlayer returns the player's active game, loading a saved run from
// the snapshot store or starting a fresh game at the menu if there is none.
func (m *Mux) gameForPlayer(playerID int64) (*game.Game, error) {
	m.gamesMu.Lock()
	defer m.gamesMu.Unlock()

	if g, ok := m.games[playerID]; ok {
		return g, nil
	}

	logger := logrus.WithField("player", playerID)

	g, err := game.Load(logger, m.saves, saveKey(playerID), game.Options{})
	if err != nil {
		if err != game.ErrNoSnapshot {
			return nil, err
		}

		g = game.New(logger, game.Options{})
	}

	m.games[playerID] = g
	return g, nil
}

// dropGame removes the player's active game from memory
func (m *Mux) dropGame(playerID int64) {
	m.gamesMu.Lock()
	defer m.gamesMu.Unlock()

	delete(m.games, playerID)
}

func saveKey(playerID int64) string {
	return strconv.FormatInt(playerID, 10)
}
