package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/automoto/bubblebound/physics"
)

// ObjectData mirrors a body into the resolv space for entity-vs-entity
// overlap queries. Tile collision never reads it.
type ObjectData struct {
	*resolv.Object
}

// SyncFrom moves the object onto b and refreshes its broad-phase cells.
func (o ObjectData) SyncFrom(b *physics.Body) {
	o.X, o.Y = b.X, b.Y
	o.W, o.H = b.W, b.H
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
