package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rogueblind-server/pkg/deck"
)

func TestEvaluate_contract(t *testing.T) {
	a := assert.New(t)

	res, err := Evaluate(nil)
	a.Nil(res)
	a.Equal(ErrNoCards, err)

	res, err = Evaluate(deck.CardsFromString("2c,3c,4c,5c,6c,7c"))
	a.Nil(res)
	a.Equal(ErrTooManyCards, err)
}

func TestEvaluate_straightFlush(t *testing.T) {
	a := assert.New(t)

	res, err := Evaluate(deck.CardsFromString("5d,6d,7d,8d,9d"))
	a.NoError(err)
	a.Equal(StraightFlush, res.HandType)
	a.Equal(5, len(res.ScoringCards))

	// steel wheel
	res, err = Evaluate(deck.CardsFromString("14s,2s,3s,4s,5s"))
	a.NoError(err)
	a.Equal(StraightFlush, res.HandType)
}

func TestEvaluate_fourOfAKind(t *testing.T) {
	a := assert.New(t)

	res, err := Evaluate(deck.CardsFromString("9c,9d,9h,9s,2c"))
	a.NoError(err)
	a.Equal(FourOfAKind, res.HandType)
	a.Equal("9c,9d,9h,9s", deck.CardsToString(res.ScoringCards))

	// reachable with only four cards
	res, err = Evaluate(deck.CardsFromString("9c,9d,9h,9s"))
	a.NoError(err)
	a.Equal(FourOfAKind, res.HandType)
}

func TestEvaluate_fullHouse(t *testing.T) {
	a := assert.New(t)

	res, err := Evaluate(deck.CardsFromString("3c,3d,3h,13c,13d"))
	a.NoError(err)
	a.Equal(FullHouse, res.HandType)
	a.Equal("3c,3d,3h,13c,13d", deck.CardsToString(res.ScoringCards))
}

func TestEvaluate_flush(t *testing.T) {
	a := assert.New(t)

	res, err := Evaluate(deck.CardsFromString("14h,13h,7h,5h,3h"))
	a.NoError(err)
	a.Equal(Flush, res.HandType)
	a.Equal(5, len(res.ScoringCards))

	// four suited cards are never a flush
	res, err = Evaluate(deck.CardsFromString("14h,13h,7h,5h"))
	a.NoError(err)
	a.Equal(HighCard, res.HandType)
}

func TestEvaluate_straight(t *testing.T) {
	a := assert.New(t)

	res, err := Evaluate(deck.CardsFromString("9c,6d,8h,7s,10c"))
	a.NoError(err)
	a.Equal(Straight, res.HandType)
	a.Equal("6d,7s,8h,9c,10c", deck.CardsToString(res.ScoringCards), "straight cards come back in run order")

	// broadway: ace high
	res, err = Evaluate(deck.CardsFromString("14c,10d,11h,12s,13c"))
	a.NoError(err)
	a.Equal(Straight, res.HandType)
	a.Equal("10d,11h,12s,13c,14c", deck.CardsToString(res.ScoringCards))
}

func TestEvaluate_wheelStraight(t *testing.T) {
	a := assert.New(t)

	res, err := Evaluate(deck.CardsFromString("3c,14d,5h,2s,4c"))
	a.NoError(err)
	a.Equal(Straight, res.HandType)
	a.Equal("14d,2s,3c,4c,5h", deck.CardsToString(res.ScoringCards), "ace plays low in the wheel")

	// four cards can never make a straight
	res, err = Evaluate(deck.CardsFromString("2c,3d,4h,5s"))
	a.NoError(err)
	a.Equal(HighCard, res.HandType)
}

func TestEvaluate_threeOfAKind(t *testing.T) {
	a := assert.New(t)

	res, err := Evaluate(deck.CardsFromString("7c,7d,7h,2s,9c"))
	a.NoError(err)
	a.Equal(ThreeOfAKind, res.HandType)
	a.Equal("7c,7d,7h", deck.CardsToString(res.ScoringCards))
}

func TestEvaluate_twoPair(t *testing.T) {
	a := assert.New(t)

	res, err := Evaluate(deck.CardsFromString("4c,9d,4h,9s,2c"))
	a.NoError(err)
	a.Equal(TwoPair, res.HandType)
	a.Equal("9d,9s,4c,4h", deck.CardsToString(res.ScoringCards), "higher pair first")
}

func TestEvaluate_pair(t *testing.T) {
	a := assert.New(t)

	res, err := Evaluate(deck.CardsFromString("13h,13s,7d,8c,9h"))
	a.NoError(err)
	a.Equal(Pair, res.HandType)
	a.Equal("13h,13s", deck.CardsToString(res.ScoringCards))

	// a lone pair works too
	res, err = Evaluate(deck.CardsFromString("13h,13s"))
	a.NoError(err)
	a.Equal(Pair, res.HandType)
	a.Equal(2, len(res.ScoringCards))
}

func TestEvaluate_highCard(t *testing.T) {
	a := assert.New(t)

	res, err := Evaluate(deck.CardsFromString("2c,5d,9h,11s,14c"))
	a.NoError(err)
	a.Equal(HighCard, res.HandType)
	a.Equal("14c", deck.CardsToString(res.ScoringCards), "ace counts high")

	res, err = Evaluate(deck.CardsFromString("6d"))
	a.NoError(err)
	a.Equal(HighCard, res.HandType)
	a.Equal("6d", deck.CardsToString(res.ScoringCards))
}

func TestEvaluate_idempotent(t *testing.T) {
	a := assert.New(t)

	cards := deck.CardsFromString("13h,13s,7d,8c,9h")
	first, err := Evaluate(cards)
	a.NoError(err)
	second, err := Evaluate(cards)
	a.NoError(err)

	a.Equal(first.HandType, second.HandType)
	a.Equal(deck.CardsToString(first.ScoringCards), deck.CardsToString(second.ScoringCards))
}

func TestEvaluate_scoringCardsAreSubset(t *testing.T) {
	a := assert.New(t)

	hands := map[string]int{
		"13h,13s,7d,8c,9h": 2, // pair
		"4c,9d,4h,9s,2c":   4, // two pair
		"7c,7d,7h,2s,9c":   3, // trips
		"3c,3d,3h,13c,13d": 5, // full house
		"9c,9d,9h,9s,2c":   4, // quads
		"14h,13h,7h,5h,3h": 5, // flush
		"9c,6d,8h,7s,10c":  5, // straight
		"2c,5d,9h,11s,14c": 1, // high card
	}

	for s, want := range hands {
		cards := deck.CardsFromString(s)
		res, err := Evaluate(cards)
		a.NoError(err)
		a.Equal(want, len(res.ScoringCards), s)

		for _, sc := range res.ScoringCards {
			a.True(deck.Hand(cards).HasCard(sc.ID), "scoring card %s not from input %s", sc, s)
		}
	}
}
