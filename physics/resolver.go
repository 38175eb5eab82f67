// Package physics resolves axis-aligned boxes against a tile grid one axis at
// a time. Horizontal resolution always runs before vertical resolution for
// the same body in the same tick.
package physics

import (
	"math"

	"github.com/automoto/bubblebound/shared/tilemap"
)

// edgeEpsilon keeps a box whose edge lies exactly on a tile boundary from
// being counted as occupying the next tile.
const edgeEpsilon = 0.01

// wrapInset is how far a wrapped body is pushed away from the side walls.
const wrapInset = 5.0

// Resolver corrects bodies against a single level's tile grid. It holds no
// state besides the grid and is safe to share between all bodies in a tick.
type Resolver struct {
	Map tilemap.Provider
}

func NewResolver(m tilemap.Provider) *Resolver {
	return &Resolver{Map: m}
}

// ResolveAxis corrects b on one axis after the caller has already applied
// that axis' velocity to its position.
func (r *Resolver) ResolveAxis(b *Body, axis Axis) {
	if axis == AxisX {
		r.ResolveX(b)
		return
	}
	r.ResolveY(b)
}

// ResolveX corrects the current horizontal position of b.
func (r *Resolver) ResolveX(b *Body) { r.resolveX(b, b.X) }

// ResolveY corrects the current vertical position of b.
func (r *Resolver) ResolveY(b *Body) { r.resolveY(b, b.Y) }

// MoveX applies dx to b and resolves the move, sweeping every column crossed
// so large steps cannot tunnel through a wall.
func (r *Resolver) MoveX(b *Body, dx float64) {
	from := b.X
	b.X += dx
	r.resolveX(b, from)
}

// MoveY applies dy to b and resolves the move, sweeping every row crossed.
func (r *Resolver) MoveY(b *Body, dy float64) {
	from := b.Y
	b.Y += dy
	r.resolveY(b, from)
}

func (r *Resolver) resolveX(b *Body, from float64) {
	b.BlockedX = 0
	ts := r.Map.TileSize()

	dir := direction(b.X-from, b.SpeedX)
	if dir == 0 {
		r.clampToWorldX(b)
		return
	}

	top, bottom := r.rowSpan(b)
	if dir > 0 {
		c0 := floorDiv(from+b.W-edgeEpsilon, ts)
		c1 := floorDiv(b.X+b.W-edgeEpsilon, ts)
		for c := c0; c <= c1; c++ {
			if r.columnBlocked(c, top, bottom) {
				b.X = float64(c)*ts - b.W
				b.SpeedX = 0
				b.BlockedX = 1
				return
			}
		}
		return
	}

	c0 := floorDiv(from, ts)
	c1 := floorDiv(b.X, ts)
	for c := c0; c >= c1; c-- {
		if r.columnBlocked(c, top, bottom) {
			b.X = float64(c+1) * ts
			b.SpeedX = 0
			b.BlockedX = -1
			return
		}
	}
}

func (r *Resolver) resolveY(b *Body, from float64) {
	b.Grounded = false
	b.HitCeiling = false
	b.Wrapped = false

	if b.Y > r.worldHeight() {
		r.wrap(b)
		return
	}

	ts := r.Map.TileSize()
	dir := direction(b.Y-from, b.SpeedY)
	left, right := r.colSpan(b)

	defer r.settleEntry(b)

	if dir > 0 {
		r0 := floorDiv(from+b.H-edgeEpsilon, ts)
		r1 := floorDiv(b.Y+b.H-edgeEpsilon, ts)
		for row := r0; row <= r1; row++ {
			if row < 0 || r.passable(b, row) {
				continue
			}
			if row >= r.Map.Rows() {
				// Open below the grid: the body keeps falling and wraps.
				return
			}
			if r.rowBlocked(row, left, right) {
				b.Y = float64(row)*ts - b.H
				b.SpeedY = 0
				b.Grounded = true
				return
			}
		}
		return
	}

	if dir < 0 {
		r0 := floorDiv(from, ts)
		r1 := floorDiv(b.Y, ts)
		for row := r0; row >= r1; row-- {
			if row >= r.Map.Rows() {
				continue
			}
			if row < 0 || r.passable(b, row) {
				return
			}
			if r.rowBlocked(row, left, right) {
				b.Y = float64(row+1) * ts
				b.SpeedY = 0
				b.HitCeiling = true
				return
			}
		}
	}
}

// wrap moves a body that fell past the bottom of the world back to the top,
// away from the side walls.
func (r *Resolver) wrap(b *Body) {
	ts := r.Map.TileSize()
	lo := ts
	hi := r.worldWidth() - ts - b.W

	b.Y = -b.H
	if b.X < lo {
		b.X = math.Min(lo+wrapInset, hi)
	}
	if b.X > hi {
		b.X = math.Max(hi-wrapInset, lo)
	}
	b.SpeedX = 0
	b.Wrapped = true
	b.Entering = true
}

// passable reports whether row is open for b regardless of its tiles. A
// wrapped body falls through the top border row it re-enters by.
func (r *Resolver) passable(b *Body, row int) bool {
	return b.Entering && row == 0
}

func (r *Resolver) settleEntry(b *Body) {
	if b.Entering && b.Y >= r.Map.TileSize() {
		b.Entering = false
	}
}

func (r *Resolver) clampToWorldX(b *Body) {
	if b.X < 0 {
		b.X = 0
		b.SpeedX = 0
		b.BlockedX = -1
	}
	if w := r.worldWidth(); b.X+b.W > w {
		b.X = w - b.W
		b.SpeedX = 0
		b.BlockedX = 1
	}
}

// columnBlocked reports whether column c is solid on any in-grid row in
// [top, bottom]. Columns outside the grid are world edges and always solid.
func (r *Resolver) columnBlocked(c, top, bottom int) bool {
	if c < 0 || c >= r.Map.Cols() {
		return true
	}
	for row := top; row <= bottom; row++ {
		if r.Map.TileAt(c, row) == tilemap.Solid {
			return true
		}
	}
	return false
}

func (r *Resolver) rowBlocked(row, left, right int) bool {
	for c := left; c <= right; c++ {
		if r.Map.TileAt(c, row) == tilemap.Solid {
			return true
		}
	}
	return false
}

// rowSpan returns the in-grid rows covered by b. Rows above or below the grid
// are open space so a wrapped body can re-enter from the top, and so is the
// top border row while the body is still entering.
func (r *Resolver) rowSpan(b *Body) (top, bottom int) {
	ts := r.Map.TileSize()
	top = max(floorDiv(b.Y, ts), 0)
	if r.passable(b, top) {
		top = 1
	}
	bottom = min(floorDiv(b.Y+b.H-edgeEpsilon, ts), r.Map.Rows()-1)
	return top, bottom
}

func (r *Resolver) colSpan(b *Body) (left, right int) {
	ts := r.Map.TileSize()
	return floorDiv(b.X, ts), floorDiv(b.X+b.W-edgeEpsilon, ts)
}

func (r *Resolver) worldWidth() float64 {
	return float64(r.Map.Cols()) * r.Map.TileSize()
}

func (r *Resolver) worldHeight() float64 {
	return float64(r.Map.Rows()) * r.Map.TileSize()
}

// OverlapsSolid reports whether b intersects any solid in-grid tile. Used by
// tests and stuck recovery; resolution itself never calls it.
func (r *Resolver) OverlapsSolid(b *Body) bool {
	top, bottom := r.rowSpan(b)
	left, right := r.colSpan(b)
	for row := top; row <= bottom; row++ {
		for c := left; c <= right; c++ {
			if c < 0 || c >= r.Map.Cols() {
				continue
			}
			if r.Map.TileAt(c, row) == tilemap.Solid {
				return true
			}
		}
	}
	return false
}

// direction is the sign of the applied displacement, or of the velocity when
// the caller moved the body before resolving.
func direction(moved, speed float64) int {
	switch {
	case moved > 0:
		return 1
	case moved < 0:
		return -1
	case speed > 0:
		return 1
	case speed < 0:
		return -1
	}
	return 0
}

func floorDiv(v, size float64) int {
	return int(math.Floor(v / size))
}
