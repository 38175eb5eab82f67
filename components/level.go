package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/bubblebound/config"
	"github.com/automoto/bubblebound/navigation"
	"github.com/automoto/bubblebound/physics"
	"github.com/automoto/bubblebound/shared/leveldata"
)

// LevelData is the singleton describing the level being played.
type LevelData struct {
	Index    int
	Current  *leveldata.Level
	Resolver *physics.Resolver
	Nav      *navigation.Service
	Tier     config.CurveTier
}

var Level = donburi.NewComponentType[LevelData]()
