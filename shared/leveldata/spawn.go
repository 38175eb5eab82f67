package leveldata

import (
	"github.com/automoto/bubblebound/shared/tilemap"
)

// FallbackSpawn is used when a map has no cell that qualifies as a spawn.
var FallbackSpawn = Point{X: 400, Y: 100}

// minSpawnColumn keeps enemies away from the player's start on the left.
const minSpawnColumn = 4

// SpawnCandidates lists cells where an enemy can appear: empty, with empty
// headroom above, a floor within three tiles below, and away from the
// outer rows and columns. Positions are ordered row-major.
func SpawnCandidates(m *tilemap.TileMap) []Point {
	ts := m.TileSize()
	var out []Point
	for y := 1; y < m.Rows()-2; y++ {
		for x := minSpawnColumn; x < m.Cols()-1; x++ {
			if m.IsSolid(x, y) || m.IsSolid(x, y-1) {
				continue
			}
			if !tilemap.HasFloorWithin(m, x, y, 3) {
				continue
			}
			out = append(out, Point{X: float64(x)*ts + ts/4, Y: float64(y) * ts})
		}
	}
	return out
}

// DefaultPlayerSpawn finds the lowest standable cell in the leftmost open
// columns. It falls back to the top-left interior cell.
func DefaultPlayerSpawn(m *tilemap.TileMap) Point {
	ts := m.TileSize()
	for x := 1; x < min(m.Cols()-1, minSpawnColumn); x++ {
		for y := m.Rows() - 2; y >= 1; y-- {
			if !m.IsSolid(x, y) && m.IsSolid(x, y+1) {
				return Point{X: float64(x)*ts + ts/4, Y: float64(y) * ts}
			}
		}
	}
	return Point{X: ts + ts/4, Y: ts}
}
