package config

// CurveTier applies to every level number up to and including UpToLevel.
// Level numbers are 1-based.
type CurveTier struct {
	UpToLevel       int     `toml:"up_to_level"`
	Enemies         int     `toml:"enemies"`
	SpeedMultiplier float64 `toml:"speed_multiplier"`
	ChaseChance     float64 `toml:"chase_chance"` // 0..1, rolled once per enemy at spawn
}

// Curve is the difficulty ramp: gentle early levels, steeper later.
type Curve struct {
	Tiers []CurveTier `toml:"tiers"`
}

func DefaultCurve() Curve {
	return Curve{Tiers: []CurveTier{
		{UpToLevel: 3, Enemies: 1, SpeedMultiplier: 0.6, ChaseChance: 0},
		{UpToLevel: 10, Enemies: 2, SpeedMultiplier: 0.8, ChaseChance: 0.2},
		{UpToLevel: 20, Enemies: 3, SpeedMultiplier: 1.0, ChaseChance: 0.35},
		{UpToLevel: 35, Enemies: 4, SpeedMultiplier: 1.1, ChaseChance: 0.5},
		{UpToLevel: 50, Enemies: 5, SpeedMultiplier: 1.2, ChaseChance: 0.6},
		{UpToLevel: 70, Enemies: 6, SpeedMultiplier: 1.4, ChaseChance: 0.7},
		{UpToLevel: 85, Enemies: 7, SpeedMultiplier: 1.5, ChaseChance: 0.8},
		{UpToLevel: 0, Enemies: 8, SpeedMultiplier: 1.6, ChaseChance: 0.9},
	}}
}

// Tier returns the tier for a 0-based level index. The last tier covers
// everything past the explicit ones; UpToLevel 0 means unbounded.
func (c Curve) Tier(levelIndex int) CurveTier {
	level := levelIndex + 1
	for _, t := range c.Tiers {
		if t.UpToLevel == 0 || level <= t.UpToLevel {
			return t
		}
	}
	if len(c.Tiers) == 0 {
		return CurveTier{Enemies: 1, SpeedMultiplier: 1}
	}
	return c.Tiers[len(c.Tiers)-1]
}
