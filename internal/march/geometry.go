package march

import "math"

// Arc is a circular arc in pixel space. Angles are in radians measured from
// +x towards +y, which is clockwise on screen.
type Arc struct {
	CX, CY     float64
	Radius     float64
	Start, End float64
}

// Line is a straight segment in pixel space.
type Line struct {
	X0, Y0, X1, Y1 float64
}

// Stroke is the pixel geometry of one primitive. Exactly one of Arc or Line
// is set.
type Stroke struct {
	Arc  *Arc
	Line *Line
}

// Lattice returns the pixel position of lattice point (i, j).
func Lattice(i, j int, cellSize float64) (x, y float64) {
	return float64(j) * cellSize, float64(i) * cellSize
}

// Layout places primitive p around lattice point (i, j). Primitives span the
// tile of one cell size centred on the lattice point, so they sit between
// the centres of the four neighbouring cells.
func Layout(p Primitive, i, j int, cellSize float64) Stroke {
	x, y := Lattice(i, j, cellSize)
	half := cellSize / 2
	switch v := p.(type) {
	case Corner:
		dx, dy := v.Orientation.Offset()
		start := cornerStart(v.Orientation)
		return Stroke{Arc: &Arc{
			CX:     x + float64(dx)*half,
			CY:     y + float64(dy)*half,
			Radius: half,
			Start:  start,
			End:    start + math.Pi/2,
		}}
	case Segment:
		if v.Axis == Vertical {
			return Stroke{Line: &Line{X0: x, Y0: y - half, X1: x, Y1: y + half}}
		}
		return Stroke{Line: &Line{X0: x - half, Y0: y, X1: x + half, Y1: y}}
	}
	return Stroke{}
}

// cornerStart returns the start angle of the quarter that faces the lattice
// point from the corner's centre cell.
func cornerStart(o Orientation) float64 {
	switch o {
	case UpperLeft:
		return 0
	case UpperRight:
		return math.Pi / 2
	case LowerRight:
		return math.Pi
	default:
		return 3 * math.Pi / 2
	}
}

// Endpoints returns the start and end points of the stroke.
func (s Stroke) Endpoints() (x0, y0, x1, y1 float64) {
	if s.Line != nil {
		return s.Line.X0, s.Line.Y0, s.Line.X1, s.Line.Y1
	}
	if s.Arc != nil {
		a := s.Arc
		return a.CX + a.Radius*math.Cos(a.Start), a.CY + a.Radius*math.Sin(a.Start),
			a.CX + a.Radius*math.Cos(a.End), a.CY + a.Radius*math.Sin(a.End)
	}
	return 0, 0, 0, 0
}
