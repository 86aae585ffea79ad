// Package game owns the run/blind/shop state machine. Transitions are
// applied serially by an explicit state-owning Game instance; player actions
// whose preconditions fail are silently rejected (unchanged state, false
// return) rather than erroring, matching the predicates the UI gates on.
package game

import (
	"math"
	"math/rand"
	"sync"

	"github.com/sirupsen/logrus"

	"rogueblind-server/internal/rng"
	"rogueblind-server/pkg/blind"
	"rogueblind-server/pkg/deck"
	"rogueblind-server/pkg/joker"
	"rogueblind-server/pkg/poker"
	"rogueblind-server/pkg/scoring"
	"rogueblind-server/pkg/shop"
)

// Game owns a single run's state and applies transitions to it serially.
// Multiple independent games can coexist; nothing here is process-global.
type Game struct {
	mu     sync.Mutex
	logger logrus.FieldLogger
	random rng.Generator
	seeded bool
	state  *State
}

// Options configures a new game
type Options struct {
	// Seed makes deck shuffles and shop rolls deterministic.
	// This should only be used by tests. Zero means crypto-seeded.
	Seed int64
}

// New returns a game at the menu, ready to start a run
func New(logger logrus.FieldLogger, opts Options) *Game {
	g := &Game{
		logger: logger,
		random: rng.Crypto{},
		state:  initialState(),
	}

	if opts.Seed > 0 {
		g.random = rand.New(rand.NewSource(opts.Seed)) // nolint:gosec
		g.seeded = true
	}

	return g
}

// Snapshot returns a deep copy of the current state, safe for readers to
// hold across later transitions
func (g *Game) Snapshot() *State {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state.Clone()
}

// Phase returns the current phase
func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state.Phase
}

// StartRun leaves the menu and enters the first blind of a fresh run
func (g *Game) StartRun() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Phase != PhaseMenu {
		return false
	}

	g.state = initialState()
	g.enterBlind()

	g.logger.WithFields(logrus.Fields{
		"ante":  g.state.Run.Ante,
		"blind": g.state.Run.CurrentBlind,
	}).Info("run started")

	return true
}

// enterBlind resets the combat counters for the current tier/ante, builds a
// freshly shuffled deck, and deals the opening hand.
// The caller must hold the mutex.
func (g *Game) enterBlind() {
	cfg := blind.GetConfig(g.state.Run.CurrentBlind, g.state.Run.Ante)

	d := deck.New()
	if g.seeded {
		d.SetSeed(int64(g.random.Intn(math.MaxInt32)) + 1)
	}
	d.Shuffle()

	g.state.Combat = CombatState{
		HandsRemaining:    cfg.Hands,
		DiscardsRemaining: cfg.Discards,
		TargetScore:       cfg.TargetScore,
	}
	g.state.Hand = d.DrawUpTo(HandSize)
	g.state.Deck = d.Cards
	g.state.DiscardPile = []*deck.Card{}
	g.state.Phase = PhasePlayingHand
}

// ToggleSelect toggles a hand card's selected flag. Selecting a sixth card
// is rejected; deselecting is always allowed.
func (g *Game) ToggleSelect(cardID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Phase != PhasePlayingHand {
		return false
	}

	card := deck.Hand(g.state.Hand).CardByID(cardID)
	if card == nil {
		return false
	}

	if !card.Selected && deck.Hand(g.state.Hand).SelectedCount() >= MaxSelected {
		return false
	}

	card.Selected = !card.Selected
	return true
}

// CanPlayHand returns true if PlayHand would apply
func (g *Game) CanPlayHand() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.canPlayHand()
}

func (g *Game) canPlayHand() bool {
	if g.state.Phase != PhasePlayingHand || g.state.Combat.HandsRemaining <= 0 {
		return false
	}

	selected := deck.Hand(g.state.Hand).SelectedCount()
	return selected >= 1 && selected <= poker.MaxHandSize
}

// PlayHand plays the selected cards: evaluates and scores them, moves them
// to the discard pile, replenishes the hand, and resolves the round outcome.
// Meeting the target is checked before running out of hands, so a final hand
// that does both is a win.
func (g *Game) PlayHand() (*scoring.Result, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.canPlayHand() {
		return nil, false
	}

	hand := deck.Hand(g.state.Hand)
	selected := hand.Selected()

	evaluated, err := poker.Evaluate(selected)
	if err != nil {
		// unreachable behind canPlayHand
		g.logger.WithError(err).Error("could not evaluate hand")
		return nil, false
	}

	score := scoring.Calculate(evaluated.HandType, evaluated.ScoringCards, g.state.Inventory.Jokers)

	g.moveSelectedToDiscard()
	g.replenishHand()

	g.state.Combat = CombatState{
		HandsPlayed:       g.state.Combat.HandsPlayed + 1,
		HandsRemaining:    g.state.Combat.HandsRemaining - 1,
		DiscardsRemaining: g.state.Combat.DiscardsRemaining,
		CurrentScore:      g.state.Combat.CurrentScore + score.FinalScore,
		TargetScore:       g.state.Combat.TargetScore,
	}

	g.logger.WithFields(logrus.Fields{
		"handType":   evaluated.HandType.String(),
		"finalScore": score.FinalScore,
		"score":      g.state.Combat.CurrentScore,
		"target":     g.state.Combat.TargetScore,
	}).Info("hand played")

	// win before loss
	if g.state.Combat.CurrentScore >= g.state.Combat.TargetScore {
		g.clearBlind()
	} else if g.state.Combat.HandsRemaining == 0 {
		g.state.Phase = PhaseGameOver
		g.logger.WithField("ante", g.state.Run.Ante).Info("run lost")
	}

	return score, true
}

// clearBlind grants the reward, advances the blind (and ante after a boss),
// and opens the shop. The caller must hold the mutex.
func (g *Game) clearBlind() {
	cfg := blind.GetConfig(g.state.Run.CurrentBlind, g.state.Run.Ante)
	nextTier, nextAnte := g.state.Run.CurrentBlind.Next()

	run := g.state.Run
	run.Money += cfg.RewardMoney
	run.CurrentBlind = nextTier
	if nextAnte {
		run.Ante++
	}
	run.CurrentRound++
	g.state.Run = run

	g.state.Shop = ShopState{
		Items:      shop.GenerateItems(g.random, shop.ItemCount),
		RerollCost: shop.RerollCost,
	}
	g.state.Phase = PhaseShop

	g.logger.WithFields(logrus.Fields{
		"reward": cfg.RewardMoney,
		"ante":   run.Ante,
		"blind":  run.CurrentBlind,
	}).Info("blind cleared")
}

// CanDiscard returns true if Discard would apply
func (g *Game) CanDiscard() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.canDiscard()
}

func (g *Game) canDiscard() bool {
	return g.state.Phase == PhasePlayingHand &&
		g.state.Combat.DiscardsRemaining > 0 &&
		deck.Hand(g.state.Hand).SelectedCount() >= 1
}

// Discard moves the selected cards to the discard pile and replenishes the
// hand. Score and hand counters are untouched.
func (g *Game) Discard() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.canDiscard() {
		return false
	}

	g.moveSelectedToDiscard()
	g.replenishHand()

	combat := g.state.Combat
	combat.DiscardsRemaining--
	g.state.Combat = combat

	return true
}

// Preview evaluates and scores the current selection without committing
// anything. Safe to call on every selection change.
func (g *Game) Preview() (*poker.Result, *scoring.Result, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Phase != PhasePlayingHand {
		return nil, nil, false
	}

	selected := deck.Hand(g.state.Hand).Selected()
	evaluated, err := poker.Evaluate(selected)
	if err != nil {
		return nil, nil, false
	}

	score := scoring.Calculate(evaluated.HandType, evaluated.ScoringCards, g.state.Inventory.Jokers)
	return evaluated, score, true
}

// CanBuy returns true if buying the shop item at index would apply
func (g *Game) CanBuy(index int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.canBuy(index)
}

func (g *Game) canBuy(index int) bool {
	if g.state.Phase != PhaseShop || index < 0 || index >= len(g.state.Shop.Items) {
		return false
	}

	return shop.CanAfford(g.state.Run.Money, g.state.Shop.Items[index].Price) &&
		shop.HasOpenSlot(len(g.state.Inventory.Jokers))
}

// Buy purchases the shop item at index: deducts the price, adds a uniquely
// identified joker copy to the inventory, and removes the offer.
func (g *Game) Buy(index int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.canBuy(index) {
		return false
	}

	item := g.state.Shop.Items[index]

	run := g.state.Run
	run.Money -= item.Price
	g.state.Run = run

	instance := joker.NewInstance(item.Joker)
	g.state.Inventory.Jokers = append(g.state.Inventory.Jokers, instance)

	items := make([]*shop.Item, 0, len(g.state.Shop.Items)-1)
	items = append(items, g.state.Shop.Items[0:index]...)
	items = append(items, g.state.Shop.Items[index+1:]...)
	g.state.Shop.Items = items

	g.logger.WithFields(logrus.Fields{
		"joker": instance.ID,
		"price": item.Price,
		"money": run.Money,
	}).Info("joker purchased")

	return true
}

// Sell removes a joker from the inventory and credits its sell value
func (g *Game) Sell(jokerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Phase != PhaseShop {
		return false
	}

	for i, j := range g.state.Inventory.Jokers {
		if j.ID != jokerID {
			continue
		}

		run := g.state.Run
		run.Money += j.SellValue
		g.state.Run = run

		jokers := make([]*joker.Joker, 0, len(g.state.Inventory.Jokers)-1)
		jokers = append(jokers, g.state.Inventory.Jokers[0:i]...)
		jokers = append(jokers, g.state.Inventory.Jokers[i+1:]...)
		g.state.Inventory.Jokers = jokers

		return true
	}

	return false
}

// CanReroll returns true if Reroll would apply
func (g *Game) CanReroll() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.canReroll()
}

func (g *Game) canReroll() bool {
	return g.state.Phase == PhaseShop &&
		shop.CanAfford(g.state.Run.Money, g.state.Shop.RerollCost)
}

// Reroll pays the reroll cost and regenerates the offers
func (g *Game) Reroll() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.canReroll() {
		return false
	}

	run := g.state.Run
	run.Money -= g.state.Shop.RerollCost
	g.state.Run = run

	g.state.Shop.Items = shop.GenerateItems(g.random, shop.ItemCount)

	return true
}

// NextRound leaves the shop and enters the next blind encounter
func (g *Game) NextRound() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Phase != PhaseShop {
		return false
	}

	g.state.Shop.Items = []*shop.Item{}
	g.enterBlind()

	return true
}

// NewRun resets a finished game back to the menu. The reset is complete and
// independent of any stored snapshot.
func (g *Game) NewRun() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Phase != PhaseGameOver {
		return false
	}

	g.state = initialState()
	return true
}

// moveSelectedToDiscard moves the selected cards, deselected, from the hand
// to the discard pile. The caller must hold the mutex.
func (g *Game) moveSelectedToDiscard() {
	hand := deck.Hand(g.state.Hand)
	selected := hand.Selected()

	ids := make([]string, len(selected))
	for i, c := range selected {
		ids[i] = c.ID
	}

	moved := hand.Remove(ids...)
	for _, c := range moved {
		c.Selected = false
	}

	g.state.Hand = hand
	g.state.DiscardPile = append(g.state.DiscardPile, moved...)
}

// replenishHand draws back up to the hand-size cap. A short deck is not an
// error; the hand simply ends up smaller. The caller must hold the mutex.
func (g *Game) replenishHand() {
	need := HandSize - len(g.state.Hand)
	if need <= 0 {
		return
	}

	if need > len(g.state.Deck) {
		need = len(g.state.Deck)
	}

	g.state.Hand = append(g.state.Hand, g.state.Deck[0:need]...)
	g.state.Deck = append([]*deck.Card{}, g.state.Deck[need:]...)
}
