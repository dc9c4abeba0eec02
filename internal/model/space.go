// Package model defines the geometric primitives and the instance record
// shared by the generators, the importer, and the exporters. All dimensions
// are integer millimeters.
package model

// Axis identifies one of the three container axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// NumAxes is the number of split axes a space can be divided along.
const NumAxes = 3

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Space is an axis-aligned box with explicit integer bounds in mm.
// It represents an item footprint during generation or an empty maximal
// space (EMS) in the consuming environment. Bounds satisfy X1 <= X2 etc.
type Space struct {
	X1 int32 `json:"x1"`
	X2 int32 `json:"x2"`
	Y1 int32 `json:"y1"`
	Y2 int32 `json:"y2"`
	Z1 int32 `json:"z1"`
	Z2 int32 `json:"z2"`
}

// MakeContainer returns a container space anchored at the origin whose
// far corner is given by dims (length, width, height).
func MakeContainer(dims [3]int32) Space {
	return Space{X2: dims[0], Y2: dims[1], Z2: dims[2]}
}

// AxisRange returns the (lower, upper) bounds of the space along the axis.
func (s Space) AxisRange(a Axis) (int32, int32) {
	switch a {
	case AxisX:
		return s.X1, s.X2
	case AxisY:
		return s.Y1, s.Y2
	default:
		return s.Z1, s.Z2
	}
}

// SetAxisRange overwrites the bounds of the space along the axis.
func (s *Space) SetAxisRange(a Axis, lo, hi int32) {
	switch a {
	case AxisX:
		s.X1, s.X2 = lo, hi
	case AxisY:
		s.Y1, s.Y2 = lo, hi
	default:
		s.Z1, s.Z2 = lo, hi
	}
}

// Len returns the extent of the space along the axis.
func (s Space) Len(a Axis) int32 {
	lo, hi := s.AxisRange(a)
	return hi - lo
}

// IsEmpty reports whether any axis interval has zero (or negative) length.
func (s Space) IsEmpty() bool {
	return s.X2 <= s.X1 || s.Y2 <= s.Y1 || s.Z2 <= s.Z1
}

// Volume returns the volume of the space in cubic mm.
func (s Space) Volume() int64 {
	if s.IsEmpty() {
		return 0
	}
	return int64(s.X2-s.X1) * int64(s.Y2-s.Y1) * int64(s.Z2-s.Z1)
}

// Intersects reports whether two spaces share interior volume.
// Touching faces do not count as an intersection.
func (s Space) Intersects(o Space) bool {
	return s.X1 < o.X2 && o.X1 < s.X2 &&
		s.Y1 < o.Y2 && o.Y1 < s.Y2 &&
		s.Z1 < o.Z2 && o.Z1 < s.Z2
}

// Contains reports whether o lies entirely within s.
func (s Space) Contains(o Space) bool {
	return s.X1 <= o.X1 && o.X2 <= s.X2 &&
		s.Y1 <= o.Y1 && o.Y2 <= s.Y2 &&
		s.Z1 <= o.Z1 && o.Z2 <= s.Z2
}
