package poker

import (
	"errors"
	"sort"

	"rogueblind-server/pkg/deck"
)

// MaxHandSize is the most cards that can be played as a single hand
const MaxHandSize = 5

// ErrNoCards is an error when evaluating an empty hand
var ErrNoCards = errors.New("cannot evaluate an empty hand")

// ErrTooManyCards is an error when evaluating more than five cards
var ErrTooManyCards = errors.New("cannot evaluate more than five cards")

// Result is the outcome of evaluating a played hand.
// ScoringCards is the subset of the input that counts for scoring.
type Result struct {
	HandType     HandType     `json:"handType"`
	ScoringCards []*deck.Card `json:"scoringCards"`
}

// Evaluate classifies 1–5 cards into a hand type and determines which cards
// score. Fewer than five cards is a legal play; flushes and straights are
// simply unreachable then. Zero cards or more than five is a caller bug.
func Evaluate(cards []*deck.Card) (*Result, error) {
	if len(cards) == 0 {
		return nil, ErrNoCards
	}

	if len(cards) > MaxHandSize {
		return nil, ErrTooManyCards
	}

	byRank := groupByRank(cards)

	// ranks present, strongest first, so group picks are deterministic
	ranks := make([]int, 0, len(byRank))
	for rank := range byRank {
		ranks = append(ranks, rank)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	flush := isFlush(cards)
	straight := straightCards(cards)

	// strongest first; the first match wins
	switch {
	case straight != nil && flush:
		return &Result{HandType: StraightFlush, ScoringCards: cards}, nil

	case largestGroup(byRank, ranks, 4) != nil:
		return &Result{HandType: FourOfAKind, ScoringCards: largestGroup(byRank, ranks, 4)}, nil

	case largestGroup(byRank, ranks, 3) != nil && largestGroup(byRank, ranks, 2) != nil:
		scoring := append(append([]*deck.Card{}, largestGroup(byRank, ranks, 3)...), largestGroup(byRank, ranks, 2)...)
		return &Result{HandType: FullHouse, ScoringCards: scoring}, nil

	case flush:
		return &Result{HandType: Flush, ScoringCards: cards}, nil

	case straight != nil:
		return &Result{HandType: Straight, ScoringCards: straight}, nil

	case largestGroup(byRank, ranks, 3) != nil:
		return &Result{HandType: ThreeOfAKind, ScoringCards: largestGroup(byRank, ranks, 3)}, nil
	}

	pairs := groupsOfSize(byRank, ranks, 2)
	switch len(pairs) {
	case 2:
		scoring := append(append([]*deck.Card{}, pairs[0]...), pairs[1]...)
		return &Result{HandType: TwoPair, ScoringCards: scoring}, nil
	case 1:
		return &Result{HandType: Pair, ScoringCards: pairs[0]}, nil
	}

	// high card: only the single highest-ranked card scores, ace high
	return &Result{HandType: HighCard, ScoringCards: byRank[ranks[0]][0:1]}, nil
}

// groupByRank groups cards by rank, preserving input order within a group
func groupByRank(cards []*deck.Card) map[int][]*deck.Card {
	groups := make(map[int][]*deck.Card)
	for _, c := range cards {
		groups[c.Rank] = append(groups[c.Rank], c)
	}

	return groups
}

// largestGroup returns the highest-ranked group of exactly {size} cards, or nil
func largestGroup(byRank map[int][]*deck.Card, ranks []int, size int) []*deck.Card {
	for _, rank := range ranks {
		if len(byRank[rank]) == size {
			return byRank[rank]
		}
	}

	return nil
}

// groupsOfSize returns every group of exactly {size} cards, highest rank first
func groupsOfSize(byRank map[int][]*deck.Card, ranks []int, size int) [][]*deck.Card {
	groups := make([][]*deck.Card, 0, 2)
	for _, rank := range ranks {
		if len(byRank[rank]) == size {
			groups = append(groups, byRank[rank])
		}
	}

	return groups
}

// isFlush returns true if all five cards share a suit.
// A flush structurally requires five cards.
func isFlush(cards []*deck.Card) bool {
	if len(cards) != MaxHandSize {
		return false
	}

	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}

	return true
}

// straightCards returns the five straight cards in run order, or nil.
// The wheel (A-2-3-4-5) counts as a straight with the ace positioned low;
// everywhere else the ace is high.
func straightCards(cards []*deck.Card) []*deck.Card {
	if len(cards) != MaxHandSize {
		return nil
	}

	byRank := make(map[int]*deck.Card, MaxHandSize)
	values := make([]int, 0, MaxHandSize)
	for _, c := range cards {
		if byRank[c.Rank] != nil {
			// a duplicated rank can never form a straight
			return nil
		}

		byRank[c.Rank] = c
		values = append(values, c.Rank)
	}

	sort.Ints(values)

	run := true
	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1]+1 {
			run = false
			break
		}
	}

	if run {
		ordered := make([]*deck.Card, len(values))
		for i, v := range values {
			ordered[i] = byRank[v]
		}

		return ordered
	}

	// wheel straight: the ace's table value is 14, but it plays low here
	wheel := []int{deck.Ace, 2, 3, 4, 5}
	ordered := make([]*deck.Card, 0, len(wheel))
	for _, v := range wheel {
		card, ok := byRank[v]
		if !ok {
			return nil
		}

		ordered = append(ordered, card)
	}

	return ordered
}
