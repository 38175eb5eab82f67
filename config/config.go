package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every simulation entity lives on.
const Default ecs.LayerID = 0

// Config holds every tunable of the simulation. It is built once and passed
// down explicitly; nothing in the repo reads it from a package variable.
type Config struct {
	World       WorldConfig       `toml:"world"`
	Player      PlayerConfig      `toml:"player"`
	Enemy       EnemyConfig       `toml:"enemy"`
	Bubble      BubbleConfig      `toml:"bubble"`
	Pathfinding PathfindingConfig `toml:"pathfinding"`
	Stuck       StuckConfig       `toml:"stuck"`
	Level       LevelConfig       `toml:"level"`
	Loop        LoopConfig        `toml:"loop"`
	Logging     LoggingConfig     `toml:"logging"`
	Curve       Curve             `toml:"curve"`
}

type WorldConfig struct {
	TileSize float64 `toml:"tile_size"`
	Seed     int64   `toml:"seed"`
}

type PlayerConfig struct {
	Width             float64 `toml:"width"`
	Height            float64 `toml:"height"`
	Speed             float64 `toml:"speed"`
	JumpForce         float64 `toml:"jump_force"`
	Gravity           float64 `toml:"gravity"`
	MaxFallSpeed      float64 `toml:"max_fall_speed"`
	ShootInterval     float64 `toml:"shoot_interval"` // ticks
	InvulnerableTicks float64 `toml:"invulnerable_ticks"`
	Lives             int     `toml:"lives"`
}

type EnemyConfig struct {
	Width           float64 `toml:"width"`
	Height          float64 `toml:"height"`
	Speed           float64 `toml:"speed"`
	Gravity         float64 `toml:"gravity"`
	MaxFallSpeed    float64 `toml:"max_fall_speed"`
	JumpForce       float64 `toml:"jump_force"`
	JumpCooldown    float64 `toml:"jump_cooldown"`    // ticks
	TrappedDuration float64 `toml:"trapped_duration"` // ticks
	AngryMultiplier float64 `toml:"angry_multiplier"` // release speed boost
	ReleasePop      float64 `toml:"release_pop"`      // upward nudge on release
}

type BubbleConfig struct {
	Width             float64 `toml:"width"`
	Height            float64 `toml:"height"`
	Speed             float64 `toml:"speed"`
	ShootDuration     float64 `toml:"shoot_duration"` // ticks
	LongRangeDuration float64 `toml:"long_range_duration"`
	Friction          float64 `toml:"friction"`
	FloatSpeed        float64 `toml:"float_speed"`
	MaxLife           float64 `toml:"max_life"` // ticks
	WiggleFrequency   float64 `toml:"wiggle_frequency"`
	WiggleAmplitude   float64 `toml:"wiggle_amplitude"`
	CeilingY          float64 `toml:"ceiling_y"`
}

type PathfindingConfig struct {
	IterationsPerTick int     `toml:"iterations_per_tick"`
	RepathInterval    float64 `toml:"repath_interval"` // ticks
	WaypointTolerance float64 `toml:"waypoint_tolerance"`
	JumpRise          float64 `toml:"jump_rise"` // waypoint height above feet that triggers a jump
	Deadzone          float64 `toml:"deadzone"`  // horizontal distance treated as "arrived"
	DirectJumpRise    float64 `toml:"direct_jump_rise"`
	DirectBlockedGap  float64 `toml:"direct_blocked_gap"` // wall-jump only when further than this
}

type StuckConfig struct {
	EmbedRadius     int     `toml:"embed_radius"`
	WindowTicks     float64 `toml:"window_ticks"`
	MinDisplacement float64 `toml:"min_displacement"`
	InactivityTicks float64 `toml:"inactivity_ticks"`
	SearchRangeX    int     `toml:"search_range_x"`
	SearchRangeUp   int     `toml:"search_range_up"`
	MinTargetGap    int     `toml:"min_target_gap"` // columns kept clear of the target
	FloorProbe      int     `toml:"floor_probe"`
}

type LevelConfig struct {
	TransitionTicks float64 `toml:"transition_ticks"`
	Campaign        string  `toml:"campaign"`
}

type LoopConfig struct {
	TickRate     int     `toml:"tick_rate"`
	MaxTimeScale float64 `toml:"max_time_scale"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads a TOML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.World.TileSize <= 0:
		return fmt.Errorf("world.tile_size must be positive, got %v", c.World.TileSize)
	case c.Pathfinding.IterationsPerTick <= 0:
		return fmt.Errorf("pathfinding.iterations_per_tick must be positive, got %d", c.Pathfinding.IterationsPerTick)
	case c.Loop.TickRate <= 0:
		return fmt.Errorf("loop.tick_rate must be positive, got %d", c.Loop.TickRate)
	case len(c.Curve.Tiers) == 0:
		return fmt.Errorf("curve needs at least one tier")
	}
	return nil
}

// Defaults returns the stock tuning.
func Defaults() *Config {
	return &Config{
		World: WorldConfig{
			TileSize: 40,
			Seed:     42,
		},
		Player: PlayerConfig{
			Width:             32,
			Height:            32,
			Speed:             3,
			JumpForce:         10,
			Gravity:           0.35,
			MaxFallSpeed:      12,
			ShootInterval:     20,
			InvulnerableTicks: 180,
			Lives:             3,
		},
		Enemy: EnemyConfig{
			Width:           32,
			Height:          32,
			Speed:           1.2,
			Gravity:         0.5,
			MaxFallSpeed:    12,
			JumpForce:       9,
			JumpCooldown:    30,
			TrappedDuration: 300,
			AngryMultiplier: 1.5,
			ReleasePop:      10,
		},
		Bubble: BubbleConfig{
			Width:             32,
			Height:            32,
			Speed:             6,
			ShootDuration:     20,
			LongRangeDuration: 50,
			Friction:          0.9,
			FloatSpeed:        -2,
			MaxLife:           300,
			WiggleFrequency:   0.1,
			WiggleAmplitude:   0.5,
			CeilingY:          40,
		},
		Pathfinding: PathfindingConfig{
			IterationsPerTick: 100,
			RepathInterval:    60,
			WaypointTolerance: 30,
			JumpRise:          20,
			Deadzone:          10,
			DirectJumpRise:    40,
			DirectBlockedGap:  80,
		},
		Stuck: StuckConfig{
			EmbedRadius:     4,
			WindowTicks:     60,
			MinDisplacement: 20,
			InactivityTicks: 300,
			SearchRangeX:    5,
			SearchRangeUp:   3,
			MinTargetGap:    2,
			FloorProbe:      3,
		},
		Level: LevelConfig{
			TransitionTicks: 900,
		},
		Loop: LoopConfig{
			TickRate:     60,
			MaxTimeScale: 3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Curve: DefaultCurve(),
	}
}
