package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"

	"github.com/automoto/bubblebound/components"
	"github.com/automoto/bubblebound/tags"
)

var (
	colorWall    = color.RGBA{70, 70, 90, 255}
	colorPlayer  = color.RGBA{60, 120, 255, 255}
	colorPatrol  = color.RGBA{220, 60, 60, 255}
	colorChaser  = color.RGBA{255, 150, 40, 255}
	colorTrapped = color.RGBA{200, 80, 220, 255}
	colorBubble  = color.RGBA{120, 230, 255, 255}
	colorPath    = color.RGBA{255, 255, 0, 160}
)

func drawTiles(w donburi.World, screen *ebiten.Image) {
	entry, ok := components.Level.First(w)
	if !ok {
		return
	}
	m := components.Level.Get(entry).Current.Map
	ts := float32(m.TileSize())
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			if m.IsSolid(col, row) {
				vector.FillRect(screen, float32(col)*ts, float32(row)*ts, ts, ts, colorWall, false)
			}
		}
	}
}

func drawEntities(w donburi.World, screen *ebiten.Image) {
	tags.Bubble.Each(w, func(e *donburi.Entry) {
		b := components.Physics.Get(e).Body
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, colorBubble, false)
	})

	tags.Enemy.Each(w, func(e *donburi.Entry) {
		b := components.Physics.Get(e).Body
		c := colorPatrol
		switch {
		case e.HasComponent(components.Trapped):
			c = colorTrapped
		case components.Enemy.Get(e).IsChaser:
			c = colorChaser
		}
		vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c, false)
	})

	tags.Player.Each(w, func(e *donburi.Entry) {
		b := components.Physics.Get(e).Body
		p := components.Player.Get(e)
		// Blink while invulnerable.
		if p.Invulnerable > 0 && int(p.Invulnerable)/6%2 == 0 {
			return
		}
		vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), colorPlayer, false)
	})
}

// drawDebug outlines every resolv object and the route of every chaser.
func drawDebug(w donburi.World, screen *ebiten.Image) {
	if spaceEntry, ok := components.Space.First(w); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255}
			if obj.HasTags(tags.ResolvEnemy) {
				c = color.RGBA{255, 0, 0, 255}
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	tags.Enemy.Each(w, func(e *donburi.Entry) {
		path := components.Path.Get(e)
		if !path.Active() {
			return
		}
		b := components.Physics.Get(e).Body
		x, y := float32(b.CenterX()), float32(b.CenterY())
		for _, wp := range path.Waypoints[path.Index:] {
			vector.StrokeLine(screen, x, y, float32(wp.X), float32(wp.Y), 1, colorPath, false)
			x, y = float32(wp.X), float32(wp.Y)
		}
	})
}
