// Package leveldata loads level tile grids and spawn points from TMX maps
// and YAML campaign files. It has no dependencies on ebitengine, donburi, or
// resolv; pure data only.
package leveldata

import (
	"errors"

	"github.com/automoto/bubblebound/shared/tilemap"
)

var (
	ErrNoSuchLevel  = errors.New("leveldata: no such level")
	ErrNoTileLayer  = errors.New("leveldata: map has no solid tile layer")
	ErrNonSquareMap = errors.New("leveldata: tiles must be square")
)

// Point is a world position (top-left of the spawned body).
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Level is everything a simulation needs to start a level.
type Level struct {
	Name        string
	Map         *tilemap.TileMap
	PlayerSpawn Point
	// EnemySpawns are explicit spawn points. When empty the simulation
	// picks from SpawnCandidates.
	EnemySpawns []Point
}

// Campaign is an ordered list of levels.
type Campaign struct {
	Levels []Level
}

// Level returns the level at index or ErrNoSuchLevel.
func (c *Campaign) Level(index int) (*Level, error) {
	if c == nil || index < 0 || index >= len(c.Levels) {
		return nil, ErrNoSuchLevel
	}
	return &c.Levels[index], nil
}

// Len is the number of levels.
func (c *Campaign) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Levels)
}
