// Package frame provides the cell buffer that panels draw into.
//
// A Buffer is rebuilt every frame. Regions that a terminal graphics protocol
// painted directly can be marked protected so that cell writes never land on
// top of the image; clearing bypasses that protection on purpose.
package frame

// Rect is an axis-aligned rectangle in terminal cell coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Area returns the number of cells covered.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the overlap of two rectangles, or the zero Rect.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Inner shrinks the rectangle by margin cells on every side.
func (r Rect) Inner(margin int) Rect {
	if r.Width < 2*margin || r.Height < 2*margin {
		return Rect{X: r.X + margin, Y: r.Y + margin}
	}
	return Rect{
		X:      r.X + margin,
		Y:      r.Y + margin,
		Width:  r.Width - 2*margin,
		Height: r.Height - 2*margin,
	}
}
