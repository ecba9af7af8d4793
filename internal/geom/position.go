package geom

// Axis selects which pair of edges Classify compares.
type Axis int

const (
	AxisX Axis = iota // left/right/width
	AxisY             // top/bottom/height
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "unknown"
	}
}

// AxisPosition places a target on one axis relative to the region.
type AxisPosition int8

const (
	Before AxisPosition = -1 // entirely above or left of the region
	Within AxisPosition = 0  // overlapping the region on this axis
	After  AxisPosition = 1  // entirely below or right of the region
)

// Position is the per-axis placement of a target.
type Position struct {
	X AxisPosition `json:"x" yaml:"x"`
	Y AxisPosition `json:"y" yaml:"y"`
}

// Inside reports whether the target overlaps the region on both axes.
func (p Position) Inside() bool {
	return p.X == Within && p.Y == Within
}

// edges returns far edge, size and the region's near/far edges for an axis.
func edges(axis Axis, target, root Rect) (targetFar, size, rootNear, rootFar float64) {
	if axis == AxisY {
		return target.Bottom, target.Height, root.Top, root.Bottom
	}
	return target.Right, target.Width, root.Left, root.Right
}

// Classify places target relative to root on one axis. A target edge that
// coincides with a region edge counts as overlapping.
func Classify(axis Axis, target, root Rect) AxisPosition {
	targetFar, size, rootNear, rootFar := edges(axis, target, root)
	if targetFar < rootNear {
		return Before
	}
	targetNear := targetFar - size
	if targetNear > rootFar {
		return After
	}
	return Within
}

// Locate classifies target against root on both axes.
func Locate(target, root Rect) Position {
	return Position{
		X: Classify(AxisX, target, root),
		Y: Classify(AxisY, target, root),
	}
}
