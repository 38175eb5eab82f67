package physics

// Axis selects which component of motion a resolution pass corrects.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Body is an axis-aligned box in world units. X/Y is the top-left corner.
type Body struct {
	X, Y   float64
	W, H   float64
	SpeedX float64
	SpeedY float64

	// Contact flags written by the last resolution of each axis.
	Grounded   bool
	BlockedX   int // -1 blocked on the left, +1 on the right, 0 free
	HitCeiling bool
	Wrapped    bool

	// Entering is set by a wrap and cleared once the box's top has cleared
	// the top border row. While set, row 0 is open space for this body.
	Entering bool
}

// CenterX and CenterY return the midpoint of the box.
func (b *Body) CenterX() float64 { return b.X + b.W/2 }
func (b *Body) CenterY() float64 { return b.Y + b.H/2 }

// Overlaps reports whether two boxes intersect with positive area.
func (b *Body) Overlaps(o *Body) bool {
	return b.X < o.X+o.W && o.X < b.X+b.W &&
		b.Y < o.Y+o.H && o.Y < b.Y+b.H
}
