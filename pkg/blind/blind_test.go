package blind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetScore(t *testing.T) {
	a := assert.New(t)

	a.Equal(300, TargetScore(300, 1, DefaultScalingFactor), "ante 1 applies no scaling")
	a.Equal(450, TargetScore(300, 2, DefaultScalingFactor))
	a.Equal(675, TargetScore(300, 3, DefaultScalingFactor))
	a.Equal(10252, TargetScore(600, 8, DefaultScalingFactor))

	a.Equal(300, TargetScore(300, 5, 1.0), "factor 1 never scales")
}

func TestGetConfig(t *testing.T) {
	a := assert.New(t)

	small := GetConfig(Small, 1)
	a.Equal(Config{Tier: Small, TargetScore: 300, RewardMoney: 3, Hands: 4, Discards: 3}, small)

	big := GetConfig(Big, 1)
	a.Equal(450, big.TargetScore)
	a.Equal(4, big.RewardMoney)

	boss := GetConfig(Boss, 8)
	a.Equal(10252, boss.TargetScore)
	a.Equal(5, boss.RewardMoney, "reward money does not scale with ante")
	a.Equal(4, boss.Hands)
	a.Equal(3, boss.Discards)
}

func TestGetConfig_monotonicScaling(t *testing.T) {
	for _, tier := range []Tier{Small, Big, Boss} {
		prev := 0
		for ante := 1; ante <= 12; ante++ {
			target := GetConfig(tier, ante).TargetScore
			assert.Greater(t, target, prev, "%s ante %d", tier, ante)
			prev = target
		}
	}
}

func TestTier_DisplayName(t *testing.T) {
	a := assert.New(t)
	a.Equal("Small Blind", Small.DisplayName())
	a.Equal("Big Blind", Big.DisplayName())
	a.Equal("Boss Blind", Boss.DisplayName())
	a.Equal("Unknown Blind", Tier("huge").DisplayName())
}

func TestTier_Next(t *testing.T) {
	a := assert.New(t)

	next, newAnte := Small.Next()
	a.Equal(Big, next)
	a.False(newAnte)

	next, newAnte = Big.Next()
	a.Equal(Boss, next)
	a.False(newAnte)

	next, newAnte = Boss.Next()
	a.Equal(Small, next)
	a.True(newAnte)
}
