package util

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRandomName(t *testing.T) {
	a := assert.New(t)
	random = rand.New(rand.NewSource(0)) // nolint:gosec

	seen := make(map[string]bool)
	for i := 0; i < 25; i++ {
		name := GetRandomName()
		parts := strings.SplitN(name, " ", 2)
		a.Len(parts, 2)
		a.Contains(adjectives, parts[0])
		a.Contains(nouns, parts[1])
		seen[name] = true
	}

	a.Greater(len(seen), 1, "names vary")
}
