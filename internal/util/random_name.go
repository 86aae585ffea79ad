package util

import (
	"fmt"
	"math/rand"
)

var adjectives = []string{
	"Lucky", "Wild", "Crooked", "Gilded", "Rusty", "Neon", "Midnight", "Smiling", "Grim", "Dapper",
	"Greedy", "Patient", "Reckless", "Clever", "Stacked", "Loaded", "Marked", "Shuffled", "Foiled",
	"Holographic", "Polychrome", "Burnt", "Frozen", "Electric", "Cosmic", "Spectral", "Arcane",
}

var nouns = []string{
	"Joker", "Ace", "Deuce", "Gambler", "Dealer", "Shark", "Whale", "Fish", "Maverick", "Hustler",
	"Wheel", "Wheeler", "Kicker", "Cutter", "Burner", "Roller", "Grinder", "Shuffler", "Mulligan",
	"Straight", "Flush", "Boat", "Broadway", "Cowboy", "Blind",
}

var random = rand.New(rand.NewSource(rand.Int63())) // nolint:gosec

// GetRandomName returns a random display name by combining an adjective with
// a card-table noun
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	nounsIndex := random.Intn(len(nouns))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], nouns[nounsIndex])
}
