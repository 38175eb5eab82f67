package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/bubblebound/shared/tilemap"
)

// TMX layer and object group names.
const (
	SolidLayer       = "wg-tiles"
	PlayerSpawnGroup = "PlayerSpawn"
	EnemySpawnGroup  = "EnemySpawn"
)

// LoadTMX parses a Tiled map into a Level. Any non-empty tile on the solid
// layer is a wall. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("%s: %dx%d: %w", tmxPath, levelMap.TileWidth, levelMap.TileHeight, ErrNonSquareMap)
	}

	var solid *tiled.Layer
	for _, layer := range levelMap.Layers {
		if layer.Name == SolidLayer {
			solid = layer
			break
		}
	}
	if solid == nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoTileLayer)
	}

	cells := make([][]int, levelMap.Height)
	for y := range cells {
		cells[y] = make([]int, levelMap.Width)
		for x := range cells[y] {
			if !solid.Tiles[y*levelMap.Width+x].IsNil() {
				cells[y][x] = 1
			}
		}
	}

	m, err := tilemap.New(cells, float64(levelMap.TileWidth))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}

	lvl := &Level{
		Name:        strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Map:         m,
		PlayerSpawn: DefaultPlayerSpawn(m),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case PlayerSpawnGroup:
			if len(og.Objects) > 0 {
				lvl.PlayerSpawn = Point{X: og.Objects[0].X, Y: og.Objects[0].Y}
			}
		case EnemySpawnGroup:
			for _, o := range og.Objects {
				lvl.EnemySpawns = append(lvl.EnemySpawns, Point{X: o.X, Y: o.Y})
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.SliceStable(lvl.EnemySpawns, func(i, j int) bool {
		return lvl.EnemySpawns[i].X < lvl.EnemySpawns[j].X
	})

	return lvl, nil
}

// LoadTMXDir loads every .tmx file in dir as a campaign ordered by file name.
func LoadTMXDir(fsys fs.FS, dir string) (*Campaign, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s: %w", dir, ErrNoSuchLevel)
	}
	sort.Strings(matches)

	c := &Campaign{}
	for _, p := range matches {
		lvl, err := LoadTMX(fsys, p)
		if err != nil {
			return nil, err
		}
		c.Levels = append(c.Levels, *lvl)
	}
	return c, nil
}
