package joker

import (
	"errors"
	"fmt"

	"rogueblind-server/pkg/poker"
	"rogueblind-server/pkg/token"
)

// ErrUnknownJoker is returned when rehydrating a joker whose base definition
// no longer exists in the pool
var ErrUnknownJoker = errors.New("unknown joker")

// instanceSuffixLen is the length of the random token appended to purchased
// joker IDs
const instanceSuffixLen = 8

func handRef(h poker.HandType) *poker.HandType {
	return &h
}

// pool is the canonical set of joker definitions. Inventory and shop items
// are always copies; these records are never handed out directly.
var pool = []*Joker{
	{
		ID:          "plus-4-mult",
		Name:        "+4 Mult",
		Description: "Adds +4 to multiplier",
		Rarity:      Common,
		SellValue:   2,
		Phase:       OnScore,
		Effect:      FlatMult,
		Mult:        4,
	},
	{
		ID:          "plus-15-chips",
		Name:        "+15 Chips",
		Description: "Adds +15 to chips",
		Rarity:      Common,
		SellValue:   2,
		Phase:       OnScore,
		Effect:      FlatChips,
		Chips:       15,
	},
	{
		ID:           "pair-x2-mult",
		Name:         "Pair x2",
		Description:  "x2 Mult if hand is a Pair",
		Rarity:       Common,
		SellValue:    2,
		Phase:        OnScore,
		Effect:       MultIfHand,
		Times:        2,
		RequiredHand: handRef(poker.Pair),
	},
	{
		ID:          "plus-30-chips",
		Name:        "+30 Chips",
		Description: "Adds +30 to chips",
		Rarity:      Uncommon,
		SellValue:   3,
		Phase:       OnScore,
		Effect:      FlatChips,
		Chips:       30,
	},
	{
		ID:           "flush-x3-mult",
		Name:         "Flush x3",
		Description:  "x3 Mult if hand is a Flush",
		Rarity:       Uncommon,
		SellValue:    4,
		Phase:        OnScore,
		Effect:       MultIfHand,
		Times:        3,
		RequiredHand: handRef(poker.Flush),
	},
	{
		ID:          "combo-10-2",
		Name:        "+10 Chips, +2 Mult",
		Description: "Adds +10 to chips and +2 to multiplier",
		Rarity:      Uncommon,
		SellValue:   3,
		Phase:       OnScore,
		Effect:      FlatCombo,
		Chips:       10,
		Mult:        2,
	},
	{
		ID:           "straight-x3-mult",
		Name:         "Straight x3",
		Description:  "x3 Mult if hand is a Straight",
		Rarity:       Rare,
		SellValue:    5,
		Phase:        OnScore,
		Effect:       MultIfHand,
		Times:        3,
		RequiredHand: handRef(poker.Straight),
	},
	{
		ID:           "full-house-x4-mult",
		Name:         "Full House x4",
		Description:  "x4 Mult if hand is a Full House",
		Rarity:       Rare,
		SellValue:    5,
		Phase:        OnScore,
		Effect:       MultIfHand,
		Times:        4,
		RequiredHand: handRef(poker.FullHouse),
	},
	{
		ID:          "double-mult",
		Name:        "Double Mult",
		Description: "Doubles the multiplier",
		Rarity:      Rare,
		SellValue:   5,
		Phase:       OnScore,
		Effect:      DoubleMult,
	},
	{
		ID:          "grand-finale",
		Name:        "Grand Finale",
		Description: "Doubles the final score",
		Rarity:      Legendary,
		SellValue:   8,
		Phase:       OnEndCalculation,
		Effect:      DoubleMult,
	},
}

var poolByID = func() map[string]*Joker {
	m := make(map[string]*Joker, len(pool))
	for _, j := range pool {
		if _, ok := m[j.ID]; ok {
			panic(fmt.Sprintf("duplicate joker id in pool: %s", j.ID))
		}

		m[j.ID] = j
	}

	return m
}()

// Pool returns a fresh copy of every joker definition
func Pool() []*Joker {
	jokers := make([]*Joker, len(pool))
	for i, j := range pool {
		jokers[i] = j.Clone()
	}

	return jokers
}

// ByID returns a copy of the definition with the given base ID
func ByID(baseID string) (*Joker, bool) {
	def, ok := poolByID[baseID]
	if !ok {
		return nil, false
	}

	return def.Clone(), true
}

// NewInstance mints an owned copy of a definition. The instance ID is the
// base ID plus a fresh random suffix so two copies of the same joker never
// share an identity.
func NewInstance(def *Joker) *Joker {
	suffix, err := token.Generate(instanceSuffixLen)
	if err != nil {
		panic(err)
	}

	instance := def.Clone()
	instance.BaseID = def.baseID()
	instance.ID = fmt.Sprintf("%s-%s", instance.BaseID, suffix)

	return instance
}

func (j *Joker) baseID() string {
	if j.BaseID != "" {
		return j.BaseID
	}

	return j.ID
}

// Rehydrate refreshes a loaded joker's behavior fields from its pool
// definition, keeping the instance identity and sell value. Saved runs that
// reference a definition that no longer exists fail with ErrUnknownJoker.
func Rehydrate(j *Joker) error {
	def, ok := poolByID[j.baseID()]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownJoker, j.baseID())
	}

	j.Name = def.Name
	j.Description = def.Description
	j.Rarity = def.Rarity
	j.Phase = def.Phase
	j.Effect = def.Effect
	j.Chips = def.Chips
	j.Mult = def.Mult
	j.Times = def.Times
	j.RequiredHand = nil
	if def.RequiredHand != nil {
		rh := *def.RequiredHand
		j.RequiredHand = &rh
	}

	return nil
}
