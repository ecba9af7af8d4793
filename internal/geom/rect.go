// Package geom holds the rectangle math used to place an observed element
// relative to a reference region.
package geom

// Rect is an edge snapshot in the reference region's coordinate space.
// Right and Bottom are exclusive edges; Width and Height are carried as
// supplied and are not re-derived.
type Rect struct {
	Top    float64 `json:"top" yaml:"top"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Left   float64 `json:"left" yaml:"left"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// XYWH builds a rect from an origin and a size.
func XYWH(x, y, width, height float64) Rect {
	return Rect{
		Top:    y,
		Right:  x + width,
		Bottom: y + height,
		Left:   x,
		Width:  width,
		Height: height,
	}
}

// CellSpan converts an inclusive span of terminal cells into edges.
// A zone covering columns 2..4 has Left 2 and Right 5.
func CellSpan(startX, startY, endX, endY int) Rect {
	return XYWH(
		float64(startX),
		float64(startY),
		float64(endX-startX+1),
		float64(endY-startY+1),
	)
}

// Expand grows every edge outward by m. A negative m shrinks the rect.
func (r Rect) Expand(m float64) Rect {
	return Rect{
		Top:    r.Top - m,
		Right:  r.Right + m,
		Bottom: r.Bottom + m,
		Left:   r.Left - m,
		Width:  r.Width + 2*m,
		Height: r.Height + 2*m,
	}
}

// Overlaps reports whether r and o share any point, edges included.
// Two rects that only touch along an edge overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left <= o.Right && o.Left <= r.Right &&
		r.Top <= o.Bottom && o.Top <= r.Bottom
}

// Offset moves the rect by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	r.Left += dx
	r.Right += dx
	r.Top += dy
	r.Bottom += dy
	return r
}
