package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2♣", CardFromString("2c").String())
	assert.Equal(t, "10♢", CardFromString("10d").String())
	assert.Equal(t, "J♡", CardFromString("11h").String())
	assert.Equal(t, "Q♠", CardFromString("12s").String())
	assert.Equal(t, "K♣", CardFromString("13c").String())
	assert.Equal(t, "A♠", CardFromString("14s").String())
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)

	c1 := NewCard(King, Hearts)
	c2 := NewCard(King, Hearts)

	a.False(c1.Equal(c2), "same face, distinct identity")
	a.True(c1.SameFace(c2))
	a.True(c1.Equal(c1))

	clone := c1.Clone()
	a.True(c1.Equal(clone), "clone keeps the identity")
	clone.Selected = true
	a.False(c1.Selected)
}

func TestCard_AceLowRank(t *testing.T) {
	assert.Equal(t, 1, NewCard(Ace, Clubs).AceLowRank())
	assert.Equal(t, King, NewCard(King, Clubs).AceLowRank())
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	card := CardFromString("14s")
	a.Equal(Ace, card.Rank)
	a.Equal(Spades, card.Suit)
	a.NotEmpty(card.ID)

	a.Nil(CardFromString(""))

	a.PanicsWithValue("could not parse card: 15s", func() {
		CardFromString("15s")
	})
}

func TestCardsFromString(t *testing.T) {
	a := assert.New(t)

	cards := CardsFromString("2c,3h,14s")
	a.Equal(3, len(cards))
	a.Equal("2c,3h,14s", CardsToString(cards))

	// every parsed card gets its own identity
	a.NotEqual(cards[0].ID, cards[1].ID)

	a.Equal([]*Card{}, CardsFromString(""))
	a.Equal("", CardToString(nil))
}
