package game

import (
	"rogueblind-server/pkg/blind"
	"rogueblind-server/pkg/deck"
	"rogueblind-server/pkg/joker"
	"rogueblind-server/pkg/shop"
)

// Phase is the top-level game phase
type Phase string

// phase constants
const (
	PhaseMenu        Phase = "MENU"
	PhasePlayingHand Phase = "PLAYING_HAND"
	PhaseShop        Phase = "SHOP"
	PhaseGameOver    Phase = "GAME_OVER"
)

// game constants
const (
	// HandSize is the hand-size cap the hand is replenished up to
	HandSize = 8
	// MaxSelected is the most cards that can be selected at once
	MaxSelected = 5
	// StartingMoney is the money a fresh run begins with
	StartingMoney = 4
)

// RunState tracks progression through a run
type RunState struct {
	Money        int        `json:"money"`
	Ante         int        `json:"ante"`
	CurrentBlind blind.Tier `json:"currentBlind"`
	CurrentRound int        `json:"currentRound"`
}

// CombatState tracks the active blind encounter. It is reset whole at the
// start of every encounter.
type CombatState struct {
	HandsPlayed       int `json:"handsPlayed"`
	HandsRemaining    int `json:"handsRemaining"`
	DiscardsRemaining int `json:"discardsRemaining"`
	CurrentScore      int `json:"currentScore"`
	TargetScore       int `json:"targetScore"`
}

// Consumable is an inventory item (tarot, planet, spectral). Consumables are
// carried through state and snapshots; no engine algorithm consumes them yet.
type Consumable struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Uses        int    `json:"uses"`
}

// InventoryState is the player's owned modifiers.
// Joker order is acquisition order, and it is semantically significant:
// jokers trigger in this order during scoring.
type InventoryState struct {
	Jokers      []*joker.Joker `json:"jokers"`
	Consumables []*Consumable  `json:"consumables"`
}

// ShopState is the current shop visit
type ShopState struct {
	Items      []*shop.Item `json:"items"`
	RerollCost int          `json:"rerollCost"`
}

// State is the aggregate game state. During an active run the deck, current
// hand, and discard pile always partition one 52-card set: cards move
// between the three, they are never duplicated or lost.
type State struct {
	Phase       Phase          `json:"phase"`
	Run         RunState       `json:"run"`
	Combat      CombatState    `json:"combat"`
	Inventory   InventoryState `json:"inventory"`
	Shop        ShopState      `json:"shop"`
	Deck        []*deck.Card   `json:"deck"`
	Hand        []*deck.Card   `json:"currentHand"`
	DiscardPile []*deck.Card   `json:"discardPile"`
}

func initialState() *State {
	cfg := blind.GetConfig(blind.Small, 1)

	return &State{
		Phase: PhaseMenu,
		Run: RunState{
			Money:        StartingMoney,
			Ante:         1,
			CurrentBlind: blind.Small,
			CurrentRound: 1,
		},
		Combat: CombatState{
			HandsRemaining:    cfg.Hands,
			DiscardsRemaining: cfg.Discards,
			TargetScore:       cfg.TargetScore,
		},
		Inventory: InventoryState{
			Jokers:      []*joker.Joker{},
			Consumables: []*Consumable{},
		},
		Shop: ShopState{
			Items:      []*shop.Item{},
			RerollCost: shop.RerollCost,
		},
		Deck:        []*deck.Card{},
		Hand:        []*deck.Card{},
		DiscardPile: []*deck.Card{},
	}
}

// Clone returns a deep copy of the state
func (s *State) Clone() *State {
	cp := *s

	cp.Deck = cloneCards(s.Deck)
	cp.Hand = cloneCards(s.Hand)
	cp.DiscardPile = cloneCards(s.DiscardPile)

	cp.Inventory.Jokers = make([]*joker.Joker, len(s.Inventory.Jokers))
	for i, j := range s.Inventory.Jokers {
		cp.Inventory.Jokers[i] = j.Clone()
	}

	cp.Inventory.Consumables = make([]*Consumable, len(s.Inventory.Consumables))
	for i, c := range s.Inventory.Consumables {
		consumable := *c
		cp.Inventory.Consumables[i] = &consumable
	}

	cp.Shop.Items = make([]*shop.Item, len(s.Shop.Items))
	for i, item := range s.Shop.Items {
		cp.Shop.Items[i] = &shop.Item{
			Joker: item.Joker.Clone(),
			Price: item.Price,
		}
	}

	return &cp
}

func cloneCards(cards []*deck.Card) []*deck.Card {
	cp := make([]*deck.Card, len(cards))
	for i, c := range cards {
		cp[i] = c.Clone()
	}

	return cp
}
