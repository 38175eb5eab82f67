package leveldata

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/bubblebound/shared/tilemap"
)

func TestLoadTMX(t *testing.T) {
	lvl, err := LoadTMX(os.DirFS("testdata"), "arena.tmx")
	require.NoError(t, err)

	assert.Equal(t, "arena", lvl.Name)
	assert.Equal(t, 8, lvl.Map.Cols())
	assert.Equal(t, 5, lvl.Map.Rows())
	assert.Equal(t, 40.0, lvl.Map.TileSize())
	assert.True(t, lvl.Map.IsSolid(3, 2))
	assert.False(t, lvl.Map.IsSolid(2, 2))
	assert.Equal(t, Point{X: 50, Y: 120}, lvl.PlayerSpawn)
	assert.Equal(t, []Point{{X: 130, Y: 40}, {X: 210, Y: 120}}, lvl.EnemySpawns)
}

func TestLoadTMXMissingFile(t *testing.T) {
	_, err := LoadTMX(os.DirFS("testdata"), "nope.tmx")
	assert.Error(t, err)
}

func TestLoadCampaignMixesInlineAndTMX(t *testing.T) {
	c, err := LoadCampaign(os.DirFS("testdata"), "campaign.yaml", 40)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	warmup, err := c.Level(0)
	require.NoError(t, err)
	assert.Equal(t, "warmup", warmup.Name)
	assert.Equal(t, 7, warmup.Map.Rows())
	assert.Equal(t, Point{X: 50, Y: 160}, warmup.PlayerSpawn)
	assert.Empty(t, warmup.EnemySpawns)

	arena, err := c.Level(1)
	require.NoError(t, err)
	assert.Equal(t, "arena", arena.Name)
	assert.Equal(t, []Point{{X: 250, Y: 120}}, arena.EnemySpawns, "campaign overrides TMX spawns")

	_, err = c.Level(2)
	assert.ErrorIs(t, err, ErrNoSuchLevel)
}

func TestParseCampaignErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "levels: []\n"},
		{"no map", "levels:\n  - name: blank\n"},
		{"ragged map", "levels:\n  - map: |\n      ###\n      #.\n"},
		{"tmx without fs", "levels:\n  - tmx: a.tmx\n"},
		{"bad yaml", "levels: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCampaign(nil, ".", []byte(tt.yaml), 40)
			assert.Error(t, err)
		})
	}
}

func TestParseCampaignNamesUnnamedLevels(t *testing.T) {
	fsys := fstest.MapFS{}
	c, err := ParseCampaign(fsys, ".", []byte("levels:\n  - map: |\n      ...\n      ###\n"), 40)
	require.NoError(t, err)
	assert.Equal(t, "level-1", c.Levels[0].Name)
}

func TestSpawnCandidates(t *testing.T) {
	m := tilemap.MustParse(`
##########
#........#
#........#
#........#
#......###
#........#
##########
`, 40)

	got := SpawnCandidates(m)
	require.NotEmpty(t, got)

	for _, p := range got {
		col, row := int(p.X/40), int(p.Y/40)
		assert.GreaterOrEqual(t, col, 4, "stays away from the player start")
		assert.False(t, m.IsSolid(col, row))
		assert.False(t, m.IsSolid(col, row-1))
		assert.True(t, m.IsSolid(col, row+1) || m.IsSolid(col, row+2) || m.IsSolid(col, row+3))
		assert.Equal(t, 10.0, p.X-float64(col)*40, "quarter-tile inset")
	}

	// Row 1 has no floor within three tiles in column 4 (rows 2-4 are open).
	assert.NotContains(t, got, Point{X: 4*40 + 10, Y: 40})
	// Row 3 in column 7 stands on the ledge at row 4.
	assert.Contains(t, got, Point{X: 7*40 + 10, Y: 3 * 40})
}

func TestSpawnCandidatesEmptyOnSolidMap(t *testing.T) {
	m := tilemap.MustParse("#####\n#####\n#####\n#####\n", 40)
	assert.Empty(t, SpawnCandidates(m))
}

func TestDefaultPlayerSpawnStandsOnFloor(t *testing.T) {
	m := tilemap.MustParse(`
######
#....#
#....#
######
`, 40)
	p := DefaultPlayerSpawn(m)
	assert.Equal(t, Point{X: 50, Y: 80}, p)
}
