package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := assert.New(t)
	d := New()

	a.Equal(52, d.CardsLeft())

	// fixed build order: suits outer, ranks inner
	a.Equal(2, d.Cards[0].Rank)
	a.Equal(Hearts, d.Cards[0].Suit)
	a.Equal(Ace, d.Cards[12].Rank)
	a.Equal(Hearts, d.Cards[12].Suit)
	a.Equal(2, d.Cards[13].Rank)
	a.Equal(Diamonds, d.Cards[13].Suit)
	a.Equal(Ace, d.Cards[51].Rank)
	a.Equal(Spades, d.Cards[51].Suit)

	a.Equal("b9f99c926f7be23d8598bcd3848452a9bea4032b", d.HashCode())

	// exactly one card per (suit, rank) pair, and every ID is unique
	faces := make(map[string]int)
	ids := make(map[string]int)
	for _, c := range d.Cards {
		faces[CardToString(c)]++
		ids[c.ID]++
	}
	a.Equal(52, len(faces))
	a.Equal(52, len(ids))
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d1 := New()
	d1.SetSeed(42)
	d1.Shuffle()

	d2 := New()
	d2.SetSeed(42)
	d2.Shuffle()

	a.Equal(CardsToString(d1.Cards), CardsToString(d2.Cards), "same seed, same order")
	a.NotEqual("b9f99c926f7be23d8598bcd3848452a9bea4032b", d1.HashCode())

	d2.Shuffle()
	a.NotEqual(CardsToString(d1.Cards), CardsToString(d2.Cards))

	a.Equal(int64(42), d1.GetSeed())
}

func TestNewShuffled(t *testing.T) {
	d := NewShuffled()
	assert.Equal(t, 52, d.CardsLeft())
}

func TestDeck_Draw(t *testing.T) {
	d := New()

	if !d.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if d.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	for i := 0; i < 52; i++ {
		card, err := d.Draw()
		if card == nil {
			t.Error("expected card, got nil")
		}

		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}
	}

	if d.CanDraw(1) {
		t.Errorf("expected CanDraw(1) to be false")
	}

	card, err := d.Draw()
	if card != nil {
		t.Errorf("expected card to be nil, got %#v", card)
	}

	if err != ErrEndOfDeck {
		t.Errorf("expected err to be ErrEndOfDeck, got %#v", err)
	}
}

func TestDeck_DrawUpTo(t *testing.T) {
	a := assert.New(t)
	d := New()

	cards := d.DrawUpTo(8)
	a.Equal(8, len(cards))
	a.Equal(44, d.CardsLeft())

	d.DrawUpTo(40)
	a.Equal(4, d.CardsLeft())

	// deck exhaustion degrades, no error
	cards = d.DrawUpTo(8)
	a.Equal(4, len(cards))
	a.Equal(0, d.CardsLeft())

	a.Equal(0, len(d.DrawUpTo(8)))
}
