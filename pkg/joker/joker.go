package joker

import (
	"rogueblind-server/pkg/deck"
	"rogueblind-server/pkg/poker"
)

// Rarity determines a joker's shop price tier
type Rarity string

// rarity constants
const (
	Common    Rarity = "common"
	Uncommon  Rarity = "uncommon"
	Rare      Rarity = "rare"
	Legendary Rarity = "legendary"
)

// TriggerPhase determines when a joker fires during score calculation
type TriggerPhase string

// trigger phase constants
const (
	// OnScore fires during the chips/mult accumulation pass
	OnScore TriggerPhase = "onScore"
	// OnEndCalculation fires after chips × mult, multiplying the final score
	OnEndCalculation TriggerPhase = "onEndCalculation"
)

// Effect is the closed set of joker behaviors. Keeping behavior as a tagged
// variant instead of a function value means a joker serializes whole; nothing
// has to be reattached when a saved run is loaded.
type Effect string

// effect constants
const (
	// FlatChips adds Chips to the running chip total
	FlatChips Effect = "flatChips"
	// FlatMult adds Mult to the running multiplier
	FlatMult Effect = "flatMult"
	// FlatCombo adds both Chips and Mult
	FlatCombo Effect = "flatCombo"
	// MultIfHand multiplies the running multiplier by Times when the
	// played hand matches RequiredHand
	MultIfHand Effect = "multIfHandType"
	// DoubleMult doubles the running multiplier (onScore) or the final
	// score (onEndCalculation)
	DoubleMult Effect = "doubleMult"
)

// Joker is a scoring modifier owned by the player.
// ID is the instance identity; owned copies carry a random suffix so no two
// inventory entries ever collide. BaseID names the pool definition the
// instance was minted from.
type Joker struct {
	ID           string          `json:"id"`
	BaseID       string          `json:"baseId"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Rarity       Rarity          `json:"rarity"`
	SellValue    int             `json:"sellValue"`
	Phase        TriggerPhase    `json:"phase"`
	Effect       Effect          `json:"effect"`
	Chips        int             `json:"chips,omitempty"`
	Mult         int             `json:"mult,omitempty"`
	Times        int             `json:"times,omitempty"`
	RequiredHand *poker.HandType `json:"requiredHand,omitempty"`
}

// Context is what a joker sees when it fires: the played hand and the
// running totals accumulated by earlier jokers in the same pass.
type Context struct {
	HandType     poker.HandType
	ScoringCards []*deck.Card
	Chips        int
	Mult         int
}

// Outcome is the result of applying a joker.
// ChipsAdd and MultAdd are additive and only meaningful in the onScore
// phase; FinalMultiply only in the onEndCalculation phase.
type Outcome struct {
	Triggered     bool
	ChipsAdd      int
	MultAdd       int
	FinalMultiply float64
}

// Apply evaluates the joker against the context.
// An untriggered joker returns a zero Outcome and must leave scoring
// untouched.
func (j *Joker) Apply(ctx Context) Outcome {
	if j.RequiredHand != nil && ctx.HandType != *j.RequiredHand {
		return Outcome{}
	}

	switch j.Effect {
	case FlatChips:
		return Outcome{Triggered: true, ChipsAdd: j.Chips}

	case FlatMult:
		return Outcome{Triggered: true, MultAdd: j.Mult}

	case FlatCombo:
		return Outcome{Triggered: true, ChipsAdd: j.Chips, MultAdd: j.Mult}

	case MultIfHand:
		// the multiplier is expressed additively so later jokers in the
		// pass see the running total: mult × n == mult + mult × (n−1)
		return Outcome{Triggered: true, MultAdd: ctx.Mult * (j.Times - 1)}

	case DoubleMult:
		if j.Phase == OnEndCalculation {
			return Outcome{Triggered: true, FinalMultiply: 2}
		}

		return Outcome{Triggered: true, MultAdd: ctx.Mult}
	}

	return Outcome{}
}

// Clone returns a copy of the joker
func (j *Joker) Clone() *Joker {
	cp := *j
	if j.RequiredHand != nil {
		rh := *j.RequiredHand
		cp.RequiredHand = &rh
	}

	return &cp
}
