package leveldata

import (
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/automoto/bubblebound/shared/tilemap"
)

type campaignFile struct {
	Levels []levelEntry `yaml:"levels"`
}

// levelEntry is one level in a campaign file: either an inline ASCII map or
// a TMX file relative to the campaign file.
type levelEntry struct {
	Name    string  `yaml:"name"`
	Map     string  `yaml:"map"`
	TMX     string  `yaml:"tmx"`
	Player  *Point  `yaml:"player"`
	Enemies []Point `yaml:"enemies"`
}

// LoadCampaign reads a YAML campaign from fsys. Inline maps use tileSize.
func LoadCampaign(fsys fs.FS, campaignPath string, tileSize float64) (*Campaign, error) {
	data, err := fs.ReadFile(fsys, campaignPath)
	if err != nil {
		return nil, fmt.Errorf("read campaign %s: %w", campaignPath, err)
	}
	return ParseCampaign(fsys, path.Dir(campaignPath), data, tileSize)
}

// ParseCampaign decodes campaign YAML. TMX references resolve against dir
// inside fsys; fsys may be nil when every level is inline.
func ParseCampaign(fsys fs.FS, dir string, data []byte, tileSize float64) (*Campaign, error) {
	var file campaignFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse campaign: %w", err)
	}
	if len(file.Levels) == 0 {
		return nil, fmt.Errorf("campaign has no levels: %w", ErrNoSuchLevel)
	}

	c := &Campaign{Levels: make([]Level, 0, len(file.Levels))}
	for i, e := range file.Levels {
		lvl, err := e.build(fsys, dir, tileSize)
		if err != nil {
			return nil, fmt.Errorf("level %d (%s): %w", i, e.Name, err)
		}
		if lvl.Name == "" {
			lvl.Name = fmt.Sprintf("level-%d", i+1)
		}
		c.Levels = append(c.Levels, *lvl)
	}
	return c, nil
}

func (e levelEntry) build(fsys fs.FS, dir string, tileSize float64) (*Level, error) {
	var lvl *Level
	switch {
	case e.TMX != "":
		if fsys == nil {
			return nil, fmt.Errorf("tmx %s referenced without a filesystem", e.TMX)
		}
		loaded, err := LoadTMX(fsys, path.Join(dir, e.TMX))
		if err != nil {
			return nil, err
		}
		lvl = loaded
	case e.Map != "":
		m, err := tilemap.Parse(e.Map, tileSize)
		if err != nil {
			return nil, err
		}
		lvl = &Level{Map: m, PlayerSpawn: DefaultPlayerSpawn(m)}
	default:
		return nil, fmt.Errorf("neither map nor tmx given")
	}

	if e.Name != "" {
		lvl.Name = e.Name
	}
	if e.Player != nil {
		lvl.PlayerSpawn = *e.Player
	}
	if len(e.Enemies) > 0 {
		lvl.EnemySpawns = append([]Point(nil), e.Enemies...)
	}
	return lvl, nil
}
