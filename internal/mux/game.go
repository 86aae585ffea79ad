package mux

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"rogueblind-server/pkg/game"
	"rogueblind-server/pkg/model"
	"rogueblind-server/pkg/scoring"
)

type gameActionPayload struct {
	Action  string `json:"action"`
	CardID  string `json:"cardId"`
	Index   *int   `json:"index"`
	JokerID string `json:"jokerId"`
}

// gameResponse is returned from every game endpoint. Applied is false when
// the action was rejected; the state is returned either way so clients can
// resync.
type gameResponse struct {
	Applied  bool            `json:"applied"`
	HandType string          `json:"handType,omitempty"`
	Result   *scoring.Result `json:"result,omitempty"`
	State    *game.State     `json:"state"`
}

func (m *Mux) getGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player := r.Context().Value(ctxPlayerKey).(*model.Player)

		g, err := m.gameForPlayer(player.ID)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, gameResponse{
			Applied: true,
			State:   g.Snapshot(),
		})
	}
}

func (m *Mux) postGameAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player := r.Context().Value(ctxPlayerKey).(*model.Player)

		g, err := m.gameForPlayer(player.ID)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		var payload gameActionPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		resp := gameResponse{}
		mutated := true

		switch payload.Action {
		case "startRun":
			resp.Applied = g.StartRun()
		case "newRun":
			resp.Applied = g.NewRun()
		case "toggleSelect":
			resp.Applied = g.ToggleSelect(payload.CardID)
		case "playHand":
			resp.Result, resp.Applied = g.PlayHand()
		case "discard":
			resp.Applied = g.Discard()
		case "buy":
			if payload.Index == nil {
				writeJSONError(w, http.StatusBadRequest, errors.New("buy requires an index"))
				return
			}

			resp.Applied = g.Buy(*payload.Index)
		case "sell":
			resp.Applied = g.Sell(payload.JokerID)
		case "reroll":
			resp.Applied = g.Reroll()
		case "nextRound":
			resp.Applied = g.NextRound()
		case "preview":
			mutated = false
			evaluated, result, ok := g.Preview()
			resp.Applied = ok
			if ok {
				resp.HandType = evaluated.HandType.String()
				resp.Result = result
			}
		default:
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("unknown action: %s", payload.Action))
			return
		}

		resp.State = g.Snapshot()

		if resp.Applied && mutated {
			if err := g.Save(m.saves, saveKey(player.ID)); err != nil {
				logrus.WithError(err).WithField("player", player.ID).Error("could not save game")
			}

			m.hub.Broadcast(player.ID, resp.State)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// deleteGame abandons the player's run and clears the stored snapshot
func (m *Mux) deleteGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player := r.Context().Value(ctxPlayerKey).(*model.Player)

		if err := game.Reset(m.saves, saveKey(player.ID)); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		m.dropGame(player.ID)
		writeJSON(w, http.StatusOK, statusOK)
	}
}
