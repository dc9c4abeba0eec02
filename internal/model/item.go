package model

// Item is a box to be packed, defined only by its three extents in mm.
type Item struct {
	XLen int32 `json:"x_len"`
	YLen int32 `json:"y_len"`
	ZLen int32 `json:"z_len"`
}

// ItemFromSpace derives an item from a space by taking interval lengths.
func ItemFromSpace(s Space) Item {
	return Item{
		XLen: s.X2 - s.X1,
		YLen: s.Y2 - s.Y1,
		ZLen: s.Z2 - s.Z1,
	}
}

// Len returns the item extent along the axis.
func (it Item) Len(a Axis) int32 {
	switch a {
	case AxisX:
		return it.XLen
	case AxisY:
		return it.YLen
	default:
		return it.ZLen
	}
}

// Volume returns the item volume in cubic mm.
func (it Item) Volume() int64 {
	return int64(it.XLen) * int64(it.YLen) * int64(it.ZLen)
}

// IsValid reports whether all three extents are positive. Items split to
// extinction along an axis are invalid and must be masked out.
func (it Item) IsValid() bool {
	return it.XLen > 0 && it.YLen > 0 && it.ZLen > 0
}

// Location is the placement origin of an item within the container.
type Location struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
	Z int32 `json:"z"`
}

// LocationFromSpace derives a location from the min corner of a space.
func LocationFromSpace(s Space) Location {
	return Location{X: s.X1, Y: s.Y1, Z: s.Z1}
}

// SpaceFromItem reconstructs the space occupied by an item placed at loc.
func SpaceFromItem(it Item, loc Location) Space {
	return Space{
		X1: loc.X, X2: loc.X + it.XLen,
		Y1: loc.Y, Y2: loc.Y + it.YLen,
		Z1: loc.Z, Z2: loc.Z + it.ZLen,
	}
}
