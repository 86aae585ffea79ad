// Package scoring turns an evaluated hand plus the player's jokers into a
// final score through a fixed, order-sensitive pipeline.
package scoring

import (
	"math"

	"rogueblind-server/pkg/deck"
	"rogueblind-server/pkg/joker"
	"rogueblind-server/pkg/poker"
)

// HandStats is the base chips and multiplier for a hand type
type HandStats struct {
	BaseChips int `json:"baseChips"`
	BaseMult  int `json:"baseMult"`
}

var baseStats = map[poker.HandType]HandStats{
	poker.HighCard:      {BaseChips: 5, BaseMult: 1},
	poker.Pair:          {BaseChips: 10, BaseMult: 2},
	poker.TwoPair:       {BaseChips: 20, BaseMult: 2},
	poker.ThreeOfAKind:  {BaseChips: 30, BaseMult: 3},
	poker.Straight:      {BaseChips: 30, BaseMult: 4},
	poker.Flush:         {BaseChips: 35, BaseMult: 4},
	poker.FullHouse:     {BaseChips: 40, BaseMult: 4},
	poker.FourOfAKind:   {BaseChips: 60, BaseMult: 7},
	poker.StraightFlush: {BaseChips: 100, BaseMult: 8},
}

// BaseStats returns the base chips and multiplier for a hand type
func BaseStats(handType poker.HandType) HandStats {
	return baseStats[handType]
}

// ChipValue returns the chip value of a card's rank.
// Number cards are face value, face cards are 10, and the ace is always 11,
// even when it anchors the low end of a wheel straight.
func ChipValue(rank int) int {
	switch {
	case rank == deck.Ace:
		return 11
	case rank >= deck.Jack:
		return 10
	default:
		return rank
	}
}

// Result is the full breakdown of a scored hand
type Result struct {
	BaseChips       int      `json:"baseChips"`
	CardChips       int      `json:"cardChips"`
	TotalChips      int      `json:"totalChips"`
	BaseMult        int      `json:"baseMult"`
	TotalMult       int      `json:"totalMult"`
	FinalScore      int      `json:"finalScore"`
	TriggeredJokers []string `json:"triggeredJokers"`
}

// Calculate scores a played hand. The pipeline order is load-bearing:
//
//  1. sum the scoring cards' chip values
//  2. totals start at base chips + card chips and base mult
//  3. onScore jokers fire in inventory order, each seeing the totals left
//     by the jokers before it
//  4. final score = chips × mult, computed once
//  5. onEndCalculation jokers multiply the final score in inventory order,
//     flooring after each multiplication
//
// Given the same inputs, Calculate is fully deterministic.
func Calculate(handType poker.HandType, scoringCards []*deck.Card, jokers []*joker.Joker) *Result {
	stats := baseStats[handType]

	cardChips := 0
	for _, c := range scoringCards {
		cardChips += ChipValue(c.Rank)
	}

	totalChips := stats.BaseChips + cardChips
	totalMult := stats.BaseMult
	triggered := make([]string, 0, len(jokers))

	for _, j := range jokers {
		if j.Phase != joker.OnScore {
			continue
		}

		out := j.Apply(joker.Context{
			HandType:     handType,
			ScoringCards: scoringCards,
			Chips:        totalChips,
			Mult:         totalMult,
		})

		if !out.Triggered {
			continue
		}

		triggered = append(triggered, j.ID)
		totalChips += out.ChipsAdd
		totalMult += out.MultAdd
	}

	finalScore := totalChips * totalMult

	for _, j := range jokers {
		if j.Phase != joker.OnEndCalculation {
			continue
		}

		out := j.Apply(joker.Context{
			HandType:     handType,
			ScoringCards: scoringCards,
			Chips:        totalChips,
			Mult:         totalMult,
		})

		if !out.Triggered {
			continue
		}

		triggered = append(triggered, j.ID)
		finalScore = int(math.Floor(float64(finalScore) * out.FinalMultiply))
	}

	return &Result{
		BaseChips:       stats.BaseChips,
		CardChips:       cardChips,
		TotalChips:      totalChips,
		BaseMult:        stats.BaseMult,
		TotalMult:       totalMult,
		FinalScore:      finalScore,
		TriggeredJokers: triggered,
	}
}
