package deck

// Hand represents a collection of cards
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the card with the given ID
func (h Hand) HasCard(id string) bool {
	return h.CardByID(id) != nil
}

// CardByID returns the card with the given ID, or nil
func (h Hand) CardByID(id string) *Card {
	for _, c := range h {
		if c.ID == id {
			return c
		}
	}

	return nil
}

// Selected returns the selected cards, in hand order
func (h Hand) Selected() []*Card {
	cards := make([]*Card, 0, len(h))
	for _, c := range h {
		if c.Selected {
			cards = append(cards, c)
		}
	}

	return cards
}

// SelectedCount returns the number of selected cards
func (h Hand) SelectedCount() int {
	return len(h.Selected())
}

// Remove removes the cards with the given IDs and returns them in hand order
func (h *Hand) Remove(ids ...string) []*Card {
	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}

	removed := make([]*Card, 0, len(ids))
	kept := make([]*Card, 0, len(*h))
	for _, c := range *h {
		if idSet[c.ID] {
			removed = append(removed, c)
		} else {
			kept = append(kept, c)
		}
	}

	*h = kept
	return removed
}

// FirstCard returns the first card in the hand or nil if the cards are empty
func (h Hand) FirstCard() *Card {
	if len(h) == 0 {
		return nil
	}

	return h[0]
}

// LastCard returns the last card in the hand or nil if the cards are empty
func (h Hand) LastCard() *Card {
	n := len(h)
	if n == 0 {
		return nil
	}

	return h[n-1]
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a deep clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	for i, c := range h {
		h2[i] = c.Clone()
	}

	return h2
}
