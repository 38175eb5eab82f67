package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[world]
seed = 7

[enemy]
speed = 2

[pathfinding]
iterations_per_tick = 25
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.World.Seed)
	assert.Equal(t, 2.0, cfg.Enemy.Speed)
	assert.Equal(t, 25, cfg.Pathfinding.IterationsPerTick)

	def := Defaults()
	assert.Equal(t, def.World.TileSize, cfg.World.TileSize)
	assert.Equal(t, def.Enemy.TrappedDuration, cfg.Enemy.TrappedDuration)
	assert.Equal(t, def.Curve, cfg.Curve)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[world\n"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	zero := filepath.Join(dir, "zero.toml")
	require.NoError(t, os.WriteFile(zero, []byte("[world]\ntile_size = 0\n"), 0o644))
	_, err = Load(zero)
	assert.ErrorContains(t, err, "tile_size")
}

func TestCurveTier(t *testing.T) {
	c := DefaultCurve()

	tests := []struct {
		levelIndex int
		enemies    int
		speed      float64
	}{
		{0, 1, 0.6},
		{2, 1, 0.6},
		{3, 2, 0.8},
		{19, 3, 1.0},
		{20, 4, 1.1},
		{84, 7, 1.5},
		{85, 8, 1.6},
		{500, 8, 1.6},
	}

	for _, tt := range tests {
		tier := c.Tier(tt.levelIndex)
		assert.Equal(t, tt.enemies, tier.Enemies, "level index %d", tt.levelIndex)
		assert.Equal(t, tt.speed, tier.SpeedMultiplier, "level index %d", tt.levelIndex)
	}
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "chasing", StateChasing.String())
	assert.Equal(t, "stuck", StateStuck.String())
	assert.Equal(t, "unknown", StateID(99).String())
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	logger, err := NewLogger(LoggingConfig{Level: "nonsense", Format: "json"})
	require.NoError(t, err)

	assert.True(t, logger.Core().Enabled(0))
	assert.False(t, logger.Core().Enabled(-1))
}
