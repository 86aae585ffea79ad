// Package shop generates purchasable joker offers and owns the economy
// predicates the UI gates on.
package shop

import (
	"rogueblind-server/internal/rng"
	"rogueblind-server/pkg/joker"
)

// shop constants
const (
	// ItemCount is how many offers a shop visit presents
	ItemCount = 3
	// RerollCost is the flat price of regenerating the offers.
	// It intentionally does not escalate across rerolls.
	RerollCost = 5
	// MaxJokerSlots is the inventory capacity
	MaxJokerSlots = 5
)

var rarityPrices = map[joker.Rarity]int{
	joker.Common:    4,
	joker.Uncommon:  6,
	joker.Rare:      8,
	joker.Legendary: 12,
}

// Item is a purchasable offer: a fresh joker copy and its price
type Item struct {
	Joker *joker.Joker `json:"joker"`
	Price int          `json:"price"`
}

// Price returns the purchase price for a rarity
func Price(rarity joker.Rarity) int {
	return rarityPrices[rarity]
}

// GenerateItems shuffles a copy of the joker pool (Fisher-Yates) and offers
// the first n with rarity pricing. The offers are copies; browsing the shop
// never aliases the canonical pool definitions.
func GenerateItems(random rng.Generator, n int) []*Item {
	pool := joker.Pool()

	for j := len(pool) - 1; j > 0; j-- {
		i := random.Intn(j + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}

	if n > len(pool) {
		n = len(pool)
	}

	items := make([]*Item, n)
	for i, def := range pool[0:n] {
		items[i] = &Item{
			Joker: def,
			Price: Price(def.Rarity),
		}
	}

	return items
}

// CanAfford returns true if the player's money covers the price
func CanAfford(money, price int) bool {
	return money >= price
}

// HasOpenSlot returns true if the inventory can take another joker
func HasOpenSlot(jokerCount int) bool {
	return jokerCount < MaxJokerSlots
}
