// Package core drives the simulation: it owns the donburi world, rebuilds it
// on every level load and runs the systems in a fixed order once per tick.
package core

import (
	"fmt"
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	"go.uber.org/zap"

	"github.com/automoto/bubblebound/components"
	"github.com/automoto/bubblebound/config"
	"github.com/automoto/bubblebound/shared/leveldata"
	"github.com/automoto/bubblebound/systems"
	"github.com/automoto/bubblebound/systems/factory"
	"github.com/automoto/bubblebound/tags"
)

// Stats counts simulation events since the simulation was created.
type Stats struct {
	Ticks       uint64
	Traps       int
	Releases    int
	Pops        int
	PlayerHits  int
	Relocations int
	Jumps       int
	Wraps       int
	Levels      int
}

// Simulation is one play-through of a campaign.
type Simulation struct {
	cfg      *config.Config
	logger   *zap.Logger
	rng      *rand.Rand
	campaign *leveldata.Campaign

	ecs       *ecs.ECS
	index     int
	finished  bool
	observers []func(donburi.World)
	stats     Stats
}

// NewSimulation loads the first level of campaign. The random source is
// seeded from the config so two simulations with the same inputs agree.
func NewSimulation(c *config.Config, logger *zap.Logger, campaign *leveldata.Campaign) (*Simulation, error) {
	if c == nil {
		c = config.Defaults()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if campaign == nil || campaign.Len() == 0 {
		return nil, fmt.Errorf("new simulation: %w", leveldata.ErrNoSuchLevel)
	}

	s := &Simulation{
		cfg:      c,
		logger:   logger,
		rng:      rand.New(rand.NewSource(c.World.Seed)),
		campaign: campaign,
	}
	if err := s.LoadLevel(0); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadLevel replaces the world with a fresh one built from level index. The
// new world is fully built before it becomes visible; on error the current
// level keeps running.
func (s *Simulation) LoadLevel(index int) error {
	lvl, err := s.campaign.Level(index)
	if err != nil {
		return fmt.Errorf("load level %d: %w", index, err)
	}

	lives := s.cfg.Player.Lives
	if s.ecs != nil {
		if p, ok := tags.Player.First(s.ecs.World); ok {
			lives = components.Player.Get(p).Lives
		}
	}

	next := newECS()
	factory.CreateRuntime(next, s.cfg, s.logger, s.rng)
	levelEntry := factory.CreateLevel(next, s.cfg, index, lvl)
	m := lvl.Map
	ts := int(m.TileSize())
	factory.CreateSpace(next, int(m.WorldWidth()), int(m.WorldHeight()), ts, ts)

	player := factory.CreatePlayer(next, s.cfg.Player, lvl.PlayerSpawn.X, lvl.PlayerSpawn.Y)
	components.Player.Get(player).Lives = lives

	tier := components.Level.Get(levelEntry).Tier
	spawns := s.enemySpawns(lvl, tier.Enemies)
	for _, p := range spawns {
		factory.CreateEnemy(next, s.cfg, tier, s.rng, p.X, p.Y)
	}

	s.subscribe(next.World)
	for _, observe := range s.observers {
		observe(next.World)
	}

	s.ecs = next
	s.index = index
	s.stats.Levels++

	components.LevelEvents.Publish(next.World, components.LevelEvent{Index: index, Name: lvl.Name})
	events.ProcessAllEvents(next.World)

	s.logger.Info("level loaded",
		zap.Int("level", index),
		zap.String("name", lvl.Name),
		zap.Int("rows", m.Rows()),
		zap.Int("cols", m.Cols()),
		zap.Int("enemies", len(spawns)),
		zap.Float64("chase_chance", tier.ChaseChance),
		zap.Float64("speed_multiplier", tier.SpeedMultiplier),
	)
	return nil
}

// enemySpawns uses the level's own spawn points when it has any. Otherwise
// count cells are drawn from the spawn candidates.
func (s *Simulation) enemySpawns(lvl *leveldata.Level, count int) []leveldata.Point {
	if len(lvl.EnemySpawns) > 0 {
		return lvl.EnemySpawns
	}
	candidates := leveldata.SpawnCandidates(lvl.Map)
	out := make([]leveldata.Point, 0, count)
	for i := 0; i < count; i++ {
		if len(candidates) == 0 {
			out = append(out, leveldata.FallbackSpawn)
			continue
		}
		j := s.rng.Intn(len(candidates))
		out = append(out, candidates[j])
		candidates = append(candidates[:j], candidates[j+1:]...)
	}
	return out
}

func newECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.WithLevel(systems.UpdatePathfinding))
	e.AddSystem(systems.WithLevel(systems.UpdatePlayer))
	e.AddSystem(systems.WithLevel(systems.UpdateEnemies))
	e.AddSystem(systems.WithLevel(systems.UpdateBubbles))
	e.AddSystem(systems.WithLevel(systems.UpdateTraps))
	e.AddSystem(systems.WithLevel(systems.UpdatePhysics))
	e.AddSystem(systems.WithLevel(systems.UpdateCollisions))
	e.AddSystem(systems.WithLevel(systems.UpdateStuckRecovery))
	e.AddSystem(systems.WithLevel(systems.UpdateObjects))
	e.AddSystem(systems.WithLevel(systems.UpdateCaptures))
	e.AddSystem(systems.WithLevel(systems.UpdateLevelProgress))

	return e
}

func (s *Simulation) subscribe(w donburi.World) {
	components.TrapEvents.Subscribe(w, func(donburi.World, components.TrapEvent) { s.stats.Traps++ })
	components.ReleaseEvents.Subscribe(w, func(donburi.World, components.ReleaseEvent) { s.stats.Releases++ })
	components.PopEvents.Subscribe(w, func(donburi.World, components.PopEvent) { s.stats.Pops++ })
	components.PlayerHitEvents.Subscribe(w, func(donburi.World, components.PlayerHitEvent) { s.stats.PlayerHits++ })
	components.RelocateEvents.Subscribe(w, func(donburi.World, components.RelocateEvent) { s.stats.Relocations++ })
	components.JumpEvents.Subscribe(w, func(donburi.World, components.JumpEvent) { s.stats.Jumps++ })
	components.WrapEvents.Subscribe(w, func(donburi.World, components.WrapEvent) { s.stats.Wraps++ })
}

// Observe registers fn to be called with the current world and with every
// world built by later level loads, so fn can subscribe to events.
func (s *Simulation) Observe(fn func(donburi.World)) {
	s.observers = append(s.observers, fn)
	fn(s.ecs.World)
}

// Tick advances the simulation by one step. timeScale is 1.0 at the
// configured tick rate.
func (s *Simulation) Tick(timeScale float64) {
	if s.finished {
		return
	}
	if clockEntry, ok := components.Clock.First(s.ecs.World); ok {
		clock := components.Clock.Get(clockEntry)
		clock.TimeScale = timeScale
		clock.Tick++
	}

	s.ecs.Update()
	events.ProcessAllEvents(s.ecs.World)
	s.stats.Ticks++

	if !systems.ShouldAdvance(s.ecs) {
		return
	}
	if s.index+1 >= s.campaign.Len() {
		s.finished = true
		s.logger.Info("campaign complete", zap.Int("levels", s.campaign.Len()))
		return
	}
	if err := s.LoadLevel(s.index + 1); err != nil {
		s.logger.Error("advance level", zap.Error(err))
		s.finished = true
	}
}

// SetInput sets the player's controls for the next tick.
func (s *Simulation) SetInput(in components.PlayerInputData) {
	if p, ok := tags.Player.First(s.ecs.World); ok {
		*components.PlayerInput.Get(p) = in
	}
}

// Player returns the player entity of the current world.
func (s *Simulation) Player() (*donburi.Entry, bool) {
	return tags.Player.First(s.ecs.World)
}

// Lives left for the player.
func (s *Simulation) Lives() int {
	if p, ok := s.Player(); ok {
		return components.Player.Get(p).Lives
	}
	return 0
}

// GameOver reports whether the player has run out of lives.
func (s *Simulation) GameOver() bool { return s.Lives() <= 0 }

// Finished reports whether the last level of the campaign was cleared.
func (s *Simulation) Finished() bool { return s.finished }

func (s *Simulation) World() donburi.World { return s.ecs.World }
func (s *Simulation) ECS() *ecs.ECS        { return s.ecs }
func (s *Simulation) LevelIndex() int      { return s.index }
func (s *Simulation) Stats() Stats         { return s.stats }
func (s *Simulation) Config() *config.Config {
	return s.cfg
}
