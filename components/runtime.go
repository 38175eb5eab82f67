package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/automoto/bubblebound/config"
)

// RuntimeData holds the services systems share. Rand is seeded once per
// simulation so a run can be replayed.
type RuntimeData struct {
	Config *config.Config
	Logger *zap.Logger
	Rand   *rand.Rand
}

var Runtime = donburi.NewComponentType[RuntimeData]()
