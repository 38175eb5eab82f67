// Package assets embeds the built-in campaign.
package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/bubblebound/shared/leveldata"
)

// CampaignFile is the built-in campaign, relative to Levels.
const CampaignFile = "levels/campaign.yaml"

//go:embed all:levels
var levelFS embed.FS

// Levels exposes the embedded level files.
func Levels() fs.FS {
	return levelFS
}

// LoadCampaign parses the built-in campaign. Inline maps use tileSize;
// TMX levels carry their own.
func LoadCampaign(tileSize float64) (*leveldata.Campaign, error) {
	return leveldata.LoadCampaign(levelFS, CampaignFile, tileSize)
}
