package joker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rogueblind-server/pkg/poker"
)

func mustDef(t *testing.T, baseID string) *Joker {
	t.Helper()
	def, ok := ByID(baseID)
	require.True(t, ok, "missing pool joker %s", baseID)
	return def
}

func TestJoker_Apply_flatEffects(t *testing.T) {
	a := assert.New(t)

	ctx := Context{HandType: poker.Pair, Chips: 30, Mult: 2}

	out := mustDef(t, "plus-4-mult").Apply(ctx)
	a.True(out.Triggered)
	a.Equal(0, out.ChipsAdd)
	a.Equal(4, out.MultAdd)

	out = mustDef(t, "plus-15-chips").Apply(ctx)
	a.True(out.Triggered)
	a.Equal(15, out.ChipsAdd)
	a.Equal(0, out.MultAdd)

	out = mustDef(t, "combo-10-2").Apply(ctx)
	a.True(out.Triggered)
	a.Equal(10, out.ChipsAdd)
	a.Equal(2, out.MultAdd)
}

func TestJoker_Apply_conditional(t *testing.T) {
	a := assert.New(t)

	flush := mustDef(t, "flush-x3-mult")

	out := flush.Apply(Context{HandType: poker.Flush, Chips: 71, Mult: 4})
	a.True(out.Triggered)
	a.Equal(8, out.MultAdd, "x3 expressed additively: 4 × (3−1)")

	out = flush.Apply(Context{HandType: poker.Pair, Chips: 30, Mult: 2})
	a.False(out.Triggered)
	a.Equal(0, out.MultAdd)
}

func TestJoker_Apply_doubleMult(t *testing.T) {
	a := assert.New(t)

	out := mustDef(t, "double-mult").Apply(Context{HandType: poker.HighCard, Mult: 5})
	a.True(out.Triggered)
	a.Equal(5, out.MultAdd)
	a.Equal(float64(0), out.FinalMultiply)

	out = mustDef(t, "grand-finale").Apply(Context{HandType: poker.HighCard, Mult: 5})
	a.True(out.Triggered)
	a.Equal(0, out.MultAdd)
	a.Equal(float64(2), out.FinalMultiply)
}

func TestPool_copies(t *testing.T) {
	a := assert.New(t)

	p1 := Pool()
	p1[0].Name = "mangled"
	p1[4].RequiredHand = nil

	p2 := Pool()
	a.Equal("+4 Mult", p2[0].Name, "pool definitions never alias")
	a.NotNil(p2[4].RequiredHand)
}

func TestPool_rarities(t *testing.T) {
	counts := make(map[Rarity]int)
	for _, j := range Pool() {
		counts[j.Rarity]++
	}

	for _, r := range []Rarity{Common, Uncommon, Rare, Legendary} {
		assert.True(t, counts[r] > 0, "pool needs at least one %s joker", r)
	}
}

func TestNewInstance(t *testing.T) {
	a := assert.New(t)

	def := mustDef(t, "plus-4-mult")
	j1 := NewInstance(def)
	j2 := NewInstance(def)

	a.Equal("plus-4-mult", j1.BaseID)
	a.NotEqual(j1.ID, j2.ID)
	a.Regexp(`^plus-4-mult-`, j1.ID)

	// an instance of an instance keeps the original base
	j3 := NewInstance(j1)
	a.Equal("plus-4-mult", j3.BaseID)
}

func TestRehydrate(t *testing.T) {
	a := assert.New(t)

	instance := NewInstance(mustDef(t, "flush-x3-mult"))

	// simulate a stale save: behavior fields are stripped or wrong
	b, err := json.Marshal(instance)
	a.NoError(err)

	var loaded Joker
	a.NoError(json.Unmarshal(b, &loaded))
	loaded.Times = 99
	loaded.Effect = ""

	a.NoError(Rehydrate(&loaded))
	a.Equal(instance.ID, loaded.ID)
	a.Equal(MultIfHand, loaded.Effect)
	a.Equal(3, loaded.Times)
	a.Equal(poker.Flush, *loaded.RequiredHand)

	bogus := &Joker{ID: "no-such-joker-abc", BaseID: "no-such-joker"}
	a.ErrorIs(Rehydrate(bogus), ErrUnknownJoker)
}
