// Package blind maps a blind tier and ante to the encounter configuration:
// target score, reward, and hand/discard allowances.
package blind

import "math"

// Tier is a blind tier within an ante
type Tier string

// tier constants, in encounter order
const (
	Small Tier = "small"
	Big   Tier = "big"
	Boss  Tier = "boss"
)

// DefaultScalingFactor is the per-ante exponential difficulty multiplier
const DefaultScalingFactor = 1.5

// Config is the full configuration for a single blind encounter
type Config struct {
	Tier        Tier `json:"tier"`
	TargetScore int  `json:"targetScore"`
	RewardMoney int  `json:"rewardMoney"`
	Hands       int  `json:"hands"`
	Discards    int  `json:"discards"`
}

// base per-tier values at ante 1. Hands and discards happen to match across
// tiers today but stay configurable per tier.
var baseConfigs = map[Tier]Config{
	Small: {Tier: Small, TargetScore: 300, RewardMoney: 3, Hands: 4, Discards: 3},
	Big:   {Tier: Big, TargetScore: 450, RewardMoney: 4, Hands: 4, Discards: 3},
	Boss:  {Tier: Boss, TargetScore: 600, RewardMoney: 5, Hands: 4, Discards: 3},
}

// TargetScore scales a base target by the ante.
// Ante is 1-indexed; ante 1 plays the base target unscaled.
func TargetScore(base, ante int, scalingFactor float64) int {
	return int(math.Round(float64(base) * math.Pow(scalingFactor, float64(ante-1))))
}

// GetConfig returns the configuration for the tier at the given ante.
// Only the target score scales with ante; reward money and the hand/discard
// allowances do not.
func GetConfig(tier Tier, ante int) Config {
	cfg := baseConfigs[tier]
	cfg.TargetScore = TargetScore(cfg.TargetScore, ante, DefaultScalingFactor)

	return cfg
}

// DisplayName returns the presentation name for the tier
func (t Tier) DisplayName() string {
	switch t {
	case Small:
		return "Small Blind"
	case Big:
		return "Big Blind"
	case Boss:
		return "Boss Blind"
	default:
		return "Unknown Blind"
	}
}

// Next returns the tier that follows this one and whether the ante advances.
// Clearing the boss wraps back to the small blind of the next ante.
func (t Tier) Next() (Tier, bool) {
	switch t {
	case Small:
		return Big, false
	case Big:
		return Boss, false
	default:
		return Small, true
	}
}
