package march

// Orientation names the neighbouring cell a corner arc is centred on.
type Orientation uint8

const (
	LowerRight Orientation = iota
	LowerLeft
	UpperRight
	UpperLeft
)

func (o Orientation) String() string {
	switch o {
	case LowerRight:
		return "lower-right"
	case LowerLeft:
		return "lower-left"
	case UpperRight:
		return "top-right"
	case UpperLeft:
		return "top-left"
	}
	return "unknown"
}

// Offset returns the direction from the lattice point to the corner's
// centre cell: -1 for left/top, +1 for right/lower.
func (o Orientation) Offset() (dx, dy int) {
	switch o {
	case LowerRight:
		return 1, 1
	case LowerLeft:
		return -1, 1
	case UpperRight:
		return 1, -1
	default:
		return -1, -1
	}
}

// Axis is the direction of a straight segment.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Edge is a set of tile edge midpoints, one bit per side.
type Edge uint8

const (
	North Edge = 1 << iota
	East
	South
	West
)

// Primitive is a single contour piece drawn around a lattice point. The set
// of implementations is closed: Corner and Segment.
type Primitive interface {
	// Edges reports the two tile edge midpoints the primitive joins.
	Edges() Edge
	isPrimitive()
}

// Corner is a quarter-circle arc.
type Corner struct {
	Orientation Orientation
}

// Segment is a straight line through the lattice point.
type Segment struct {
	Axis Axis
}

func (Corner) isPrimitive()  {}
func (Segment) isPrimitive() {}

// Edges implements Primitive. An arc joins the two tile edges that border
// its centre cell.
func (c Corner) Edges() Edge {
	switch c.Orientation {
	case LowerRight:
		return South | East
	case LowerLeft:
		return South | West
	case UpperRight:
		return North | East
	default:
		return North | West
	}
}

// Edges implements Primitive.
func (s Segment) Edges() Edge {
	if s.Axis == Vertical {
		return North | South
	}
	return East | West
}

var table = [16][]Primitive{
	1:  {Corner{LowerRight}},
	14: {Corner{LowerRight}},
	2:  {Corner{LowerLeft}},
	13: {Corner{LowerLeft}},
	4:  {Corner{UpperRight}},
	11: {Corner{UpperRight}},
	8:  {Corner{UpperLeft}},
	7:  {Corner{UpperLeft}},
	10: {Segment{Vertical}},
	5:  {Segment{Vertical}},
	12: {Segment{Horizontal}},
	3:  {Segment{Horizontal}},
	6:  {Corner{LowerRight}, Corner{UpperLeft}},
	9:  {Corner{LowerLeft}, Corner{UpperRight}},
}

// Select returns the primitives drawn for a code. Codes 0 and 15, and any
// value outside [0, 15], draw nothing. The returned slice must not be
// modified.
func Select(code Code) []Primitive {
	if int(code) >= len(table) {
		return nil
	}
	return table[code]
}
