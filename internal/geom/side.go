package geom

// Side names the edge or corner of the region a target sits beyond.
type Side string

const (
	SideNone        Side = ""
	SideTop         Side = "top"
	SideRight       Side = "right"
	SideBottom      Side = "bottom"
	SideLeft        Side = "left"
	SideTopLeft     Side = "top-left"
	SideTopRight    Side = "top-right"
	SideBottomRight Side = "bottom-right"
	SideBottomLeft  Side = "bottom-left"
)

// sides is indexed [y+1][x+1].
var sides = [3][3]Side{
	{SideTopLeft, SideTop, SideTopRight},
	{SideLeft, SideNone, SideRight},
	{SideBottomLeft, SideBottom, SideBottomRight},
}

// NameSide maps a position to its side. Diagonals read vertical first
// (top-left, never left-top). A position inside the region on both axes,
// or one holding values outside -1..1, has no side.
func NameSide(p Position) Side {
	x, y := int(p.X)+1, int(p.Y)+1
	if x < 0 || x > 2 || y < 0 || y > 2 {
		return SideNone
	}
	return sides[y][x]
}

func (s Side) String() string {
	if s == SideNone {
		return "none"
	}
	return string(s)
}
