// Package tilemap holds the immutable per-level tile grid shared by collision,
// navigation and level loading. It has no dependencies on donburi or resolv.
package tilemap

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Tile is the value of a single grid cell.
type Tile uint8

const (
	Empty Tile = 0
	Solid Tile = 1
)

// DefaultTileSize is the edge length of a tile in world units.
const DefaultTileSize = 40.0

var (
	ErrEmpty          = errors.New("tilemap: no rows")
	ErrNotRectangular = errors.New("tilemap: rows have different lengths")
	ErrBadTileSize    = errors.New("tilemap: tile size must be positive")
)

// Provider is the read-only view of a level grid that the core consumes.
type Provider interface {
	TileAt(col, row int) Tile
	Rows() int
	Cols() int
	TileSize() float64
}

// TileMap is a rows × cols grid of Empty/Solid cells. It is never mutated
// after construction.
type TileMap struct {
	cells    []Tile
	rows     int
	cols     int
	tileSize float64
}

// New copies cells into a TileMap. Any non-zero value is Solid.
func New(cells [][]int, tileSize float64) (*TileMap, error) {
	if tileSize <= 0 {
		return nil, ErrBadTileSize
	}
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmpty
	}

	rows, cols := len(cells), len(cells[0])
	m := &TileMap{
		cells:    make([]Tile, rows*cols),
		rows:     rows,
		cols:     cols,
		tileSize: tileSize,
	}
	for y, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), cols, ErrNotRectangular)
		}
		for x, v := range row {
			if v != 0 {
				m.cells[y*cols+x] = Solid
			}
		}
	}
	return m, nil
}

// Parse builds a TileMap from ASCII rows: '#' or '1' is solid, anything else
// is empty. Leading and trailing blank lines are ignored.
func Parse(src string, tileSize float64) (*TileMap, error) {
	lines := strings.Split(strings.Trim(src, "\n"), "\n")
	cells := make([][]int, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		row := make([]int, 0, len(line))
		for _, ch := range strings.TrimSpace(line) {
			if ch == '#' || ch == '1' {
				row = append(row, 1)
			} else {
				row = append(row, 0)
			}
		}
		cells = append(cells, row)
	}
	return New(cells, tileSize)
}

// MustParse is Parse for fixtures; it panics on malformed input.
func MustParse(src string, tileSize float64) *TileMap {
	m, err := Parse(src, tileSize)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *TileMap) Rows() int         { return m.rows }
func (m *TileMap) Cols() int         { return m.cols }
func (m *TileMap) TileSize() float64 { return m.tileSize }

// WorldWidth and WorldHeight are the grid extents in world units.
func (m *TileMap) WorldWidth() float64  { return float64(m.cols) * m.tileSize }
func (m *TileMap) WorldHeight() float64 { return float64(m.rows) * m.tileSize }

// InBounds reports whether (col, row) addresses a real cell.
func (m *TileMap) InBounds(col, row int) bool {
	return col >= 0 && col < m.cols && row >= 0 && row < m.rows
}

// TileAt returns the cell value. Out-of-bounds cells are Solid.
func (m *TileMap) TileAt(col, row int) Tile {
	if !m.InBounds(col, row) {
		return Solid
	}
	return m.cells[row*m.cols+col]
}

// IsSolid is shorthand for TileAt(col, row) == Solid.
func (m *TileMap) IsSolid(col, row int) bool {
	return m.TileAt(col, row) == Solid
}

// Cells returns a copy of the grid as a row-major int matrix.
func (m *TileMap) Cells() [][]int {
	out := make([][]int, m.rows)
	for y := range out {
		out[y] = make([]int, m.cols)
		for x := range out[y] {
			out[y][x] = int(m.cells[y*m.cols+x])
		}
	}
	return out
}

// String renders the grid in the format accepted by Parse.
func (m *TileMap) String() string {
	var b strings.Builder
	for y := 0; y < m.rows; y++ {
		for x := 0; x < m.cols; x++ {
			if m.cells[y*m.cols+x] == Solid {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WorldToTile floor-divides a world position by the tile size.
func WorldToTile(p Provider, x, y float64) (col, row int) {
	ts := p.TileSize()
	return int(math.Floor(x / ts)), int(math.Floor(y / ts))
}

// TileCenter returns the world position of the center of a cell.
func TileCenter(p Provider, col, row int) (x, y float64) {
	ts := p.TileSize()
	return float64(col)*ts + ts/2, float64(row)*ts + ts/2
}

// HasFloorWithin reports whether one of the depth cells below (col, row) is
// solid. Cells below the bottom row do not count as floor.
func HasFloorWithin(p Provider, col, row, depth int) bool {
	for below := 1; below <= depth && row+below < p.Rows(); below++ {
		if p.TileAt(col, row+below) == Solid {
			return true
		}
	}
	return false
}
